package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"modeler/pkg/types"
)

type planOptions struct {
	modelFile   string
	id          string
	task        string
	sizeBytes   int64
	tgi         bool
	accelerator string
	catalogPath string
	overhead    float64
	output      string
}

func newPlanCmd(rt *runtime) *cobra.Command {
	opts := &planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Select the minimum instance for a model and render its deployment snippet",
		Example: "  modeler plan --id distilbert-base-uncased --task fill-mask --size-bytes 267967963\n" +
			"  modeler plan --model-file model.yaml --accelerator cpu --output json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := opts.descriptor(cmd)
			if err != nil {
				return err
			}
			p, err := rt.planner(opts.catalogPath, opts.overhead)
			if err != nil {
				return err
			}
			acc := opts.accelerator
			if acc == "" {
				acc = rt.cfg.DefaultAccelerator
			}
			plan, err := p.Plan(model, acc)
			if err != nil {
				return err
			}
			return writePlan(rt, opts.output, plan)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.modelFile, "model-file", "", "Model descriptor file (.yaml, .yml or .json); flags override its fields")
	f.StringVar(&opts.id, "id", "", "Model id")
	f.StringVar(&opts.task, "task", "", "Model task, e.g. text-classification")
	f.Int64Var(&opts.sizeBytes, "size-bytes", 0, "Model size in bytes at fp32")
	f.BoolVar(&opts.tgi, "tgi", false, "Model is supported by Text Generation Inference")
	f.StringVar(&opts.accelerator, "accelerator", "", "Accelerator family (defaults to config, gpu)")
	f.StringVar(&opts.catalogPath, "catalog", "", "Catalog overlay file merged over the built-in catalog")
	f.Float64Var(&opts.overhead, "overhead", 0, "Memory overhead factor (defaults to config, 1.2)")
	f.StringVarP(&opts.output, "output", "o", "text", "Output format: text|json")
	return cmd
}

// descriptor builds the model descriptor from --model-file and the explicit flags.
func (o *planOptions) descriptor(cmd *cobra.Command) (types.ModelDescriptor, error) {
	var m types.ModelDescriptor
	if o.modelFile != "" {
		var err error
		if m, err = loadDescriptor(o.modelFile); err != nil {
			return m, err
		}
	}
	f := cmd.Flags()
	if f.Changed("id") { m.ID = o.id }
	if f.Changed("task") { m.Task = o.task }
	if f.Changed("size-bytes") { m.SizeInBytesFP32 = o.sizeBytes }
	if f.Changed("tgi") { m.IsTGISupported = o.tgi }

	if strings.TrimSpace(m.ID) == "" {
		return m, fmt.Errorf("model id is required (--id or --model-file)")
	}
	if m.SizeInBytesFP32 <= 0 {
		return m, fmt.Errorf("model size must be positive (--size-bytes or --model-file)")
	}
	return m, nil
}

func loadDescriptor(path string) (types.ModelDescriptor, error) {
	var m types.ModelDescriptor
	b, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read model file: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &m)
	case ".json":
		err = json.Unmarshal(b, &m)
	default:
		return m, fmt.Errorf("unsupported model file extension: %s", ext)
	}
	if err != nil {
		return m, fmt.Errorf("decode model file %s: %w", path, err)
	}
	return m, nil
}

func writePlan(rt *runtime, format string, plan types.InferencePlan) error {
	switch format {
	case "json":
		enc := json.NewEncoder(rt.out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	case "text", "":
		fmt.Fprintf(rt.out, "Instance: %s\n", plan.MinInstanceType)
		fmt.Fprintf(rt.out, "LLM:      %t\n\n", plan.IsLLM)
		fmt.Fprint(rt.out, plan.CodeSnippet)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
