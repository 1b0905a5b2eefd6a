package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"modeler/internal/planner"
	"modeler/pkg/types"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestPlan_TextOutput(t *testing.T) {
	out, _, err := runCLI(t, "plan", "--id", "distilbert-base-uncased", "--task", "fill-mask", "--size-bytes", "267967963")
	if err != nil { t.Fatalf("plan: %v", err) }
	if !strings.Contains(out, "Instance: ml.g4dn.xlarge") || !strings.Contains(out, "LLM:      false") {
		t.Fatalf("unexpected output: %s", out)
	}
	if !strings.Contains(out, `"HF_MODEL_ID": "distilbert-base-uncased"`) || !strings.Contains(out, `"HF_TASK": "fill-mask"`) {
		t.Fatalf("snippet not rendered: %s", out)
	}
}

func TestPlan_JSONOutputTGI(t *testing.T) {
	out, _, err := runCLI(t, "plan", "--id", "tiiuae/falcon-7b", "--task", "text-generation", "--size-bytes", "28000000000", "--tgi", "-o", "json", "--log-level", "error")
	if err != nil { t.Fatalf("plan: %v", err) }
	var plan types.InferencePlan
	if err := json.Unmarshal([]byte(out), &plan); err != nil { t.Fatalf("json: %v (%s)", err, out) }
	// 28e9 * 1.2 bytes is ~31.3 GB, which needs the 96 GB instance.
	if !plan.IsLLM || plan.MinInstanceType != "ml.g5.12xlarge" { t.Fatalf("unexpected plan: %+v", plan) }
	if !strings.Contains(plan.CodeSnippet, "json.dumps(4)") { t.Fatalf("snippet: %s", plan.CodeSnippet) }
}

func TestPlan_ModelFileWithFlagOverride(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "model.yaml", "id: org/bert\ntask: text-classification\nsize_in_bytes_fp32: 1000\n")
	out, _, err := runCLI(t, "plan", "--model-file", p, "--accelerator", "cpu", "--task", "token-classification", "-o", "json")
	if err != nil { t.Fatalf("plan: %v", err) }
	var plan types.InferencePlan
	if err := json.Unmarshal([]byte(out), &plan); err != nil { t.Fatalf("json: %v", err) }
	if plan.MinInstanceType != "ml.m5.large" || !strings.Contains(plan.CodeSnippet, "token-classification") {
		t.Fatalf("unexpected plan: %+v", plan)
	}

	j := writeTempFile(t, d, "model.json", `{"id":"org/llm","task":"text-generation","size_in_bytes_fp32":1000,"is_tgi_supported":true}`)
	out, _, err = runCLI(t, "plan", "--model-file", j, "-o", "json")
	if err != nil { t.Fatalf("plan json file: %v", err) }
	if !strings.Contains(out, `"is_llm": true`) { t.Fatalf("unexpected output: %s", out) }
}

func TestPlan_Errors(t *testing.T) {
	if _, _, err := runCLI(t, "plan", "--size-bytes", "10"); err == nil || !strings.Contains(err.Error(), "model id") {
		t.Fatalf("expected missing id error, got %v", err)
	}
	if _, _, err := runCLI(t, "plan", "--id", "m"); err == nil || !strings.Contains(err.Error(), "size") {
		t.Fatalf("expected size error, got %v", err)
	}
	_, _, err := runCLI(t, "plan", "--id", "m", "--task", "fill-mask", "--size-bytes", "10", "--accelerator", "tpu")
	if !planner.IsNoSuitableInstance(err) { t.Fatalf("expected NoSuitableInstance, got %v", err) }
	_, _, err = runCLI(t, "plan", "--id", "m", "--task", "depth-estimation", "--size-bytes", "10")
	if !planner.IsUnknownTask(err) { t.Fatalf("expected UnknownTask, got %v", err) }
	if _, _, err := runCLI(t, "plan", "--id", "m", "--task", "fill-mask", "--size-bytes", "10", "-o", "xml"); err == nil {
		t.Fatalf("expected output format error")
	}
	d := t.TempDir()
	bad := writeTempFile(t, d, "model.txt", "id: x")
	if _, _, err := runCLI(t, "plan", "--model-file", bad); err == nil { t.Fatalf("expected extension error") }
}

func TestPlan_ConfigDefaults(t *testing.T) {
	d := t.TempDir()
	over := writeTempFile(t, d, "over.yaml", "instances:\n  cpu:\n    - {name: tiny, memoryInGB: 2}\n")
	cfg := writeTempFile(t, d, "cfg.yaml", "default_accelerator: cpu\nmemory_overhead: 1.0\nlog_level: debug\ncatalog_path: "+over+"\n")
	out, logs, err := runCLI(t, "--config", cfg, "plan", "--id", "m", "--task", "fill-mask", "--size-bytes", "1073741824", "-o", "json")
	if err != nil { t.Fatalf("plan: %v", err) }
	if !strings.Contains(out, `"min_instance_type": "tiny"`) { t.Fatalf("unexpected output: %s", out) }
	if !strings.Contains(logs, "selected instance") { t.Fatalf("debug log missing: %s", logs) }
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	if _, _, err := runCLI(t, "--log-level", "loud", "tasks"); err == nil { t.Fatalf("expected invalid log level error") }
	if _, _, err := runCLI(t, "--config", "/no/such/file.yaml", "tasks"); err == nil { t.Fatalf("expected config error") }
}

func TestInstances(t *testing.T) {
	out, _, err := runCLI(t, "instances", "--accelerator", "gpu")
	if err != nil { t.Fatalf("instances: %v", err) }
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 || !strings.HasPrefix(lines[0], "ACCELERATOR") || !strings.Contains(lines[1], "ml.g4dn.xlarge") {
		t.Fatalf("unexpected output: %s", out)
	}
	if strings.Contains(out, "ml.m5") { t.Fatalf("cpu instances listed: %s", out) }
	if _, _, err := runCLI(t, "instances", "--accelerator", "tpu"); err == nil { t.Fatalf("expected unknown accelerator error") }
}

func TestTasks(t *testing.T) {
	out, _, err := runCLI(t, "tasks")
	if err != nil { t.Fatalf("tasks: %v", err) }
	tasks := strings.Fields(out)
	found := false
	for _, task := range tasks {
		if task == "tgi" { found = true }
	}
	if !found || len(tasks) < 5 { t.Fatalf("unexpected tasks: %v", tasks) }
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	var out, errOut bytes.Buffer
	rt := &runtime{out: &out, errOut: &errOut}
	if err := rt.setup(); err != nil { t.Fatalf("setup: %v", err) }
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, rt, &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}) }()
	cancel()
	select {
	case err := <-done:
		if err != nil { t.Fatalf("serve: %v", err) }
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not return after cancel")
	}
}

func TestSplitCSV(t *testing.T) {
	cases := []struct{ in string; want []string }{
		{"a,b,c", []string{"a","b","c"}},
		{" a , b , c ", []string{"a","b","c"}},
		{"a,,c", []string{"a","c"}},
		{"", nil},
	}
	for _, c := range cases {
		got := splitCSV(c.in)
		if len(got) != len(c.want) { t.Fatalf("%q -> %v, want %v", c.in, got, c.want) }
		for i := range got {
			if got[i] != c.want[i] { t.Fatalf("%q -> %v, want %v", c.in, got, c.want) }
		}
	}
}
