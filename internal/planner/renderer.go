package planner

import (
	"fmt"
	"strings"
	"text/template"

	"modeler/internal/catalog"
	"modeler/pkg/types"
)

// snippetData carries the values substituted into a snippet template.
type snippetData struct {
	ModelID      string
	Task         string
	InstanceType string
	NumGPUs      int
}

// Renderer fills task-specific deployment snippet templates.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every snippet template up front. A template referencing
// an unknown field fails at render time, not here.
func NewRenderer(snippets map[string]string) (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(snippets))}
	for task, src := range snippets {
		tpl, err := template.New(task).Option("missingkey=error").Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parse snippet %q: %w", task, err)
		}
		r.templates[task] = tpl
	}
	return r, nil
}

// Render returns the snippet for task filled with the model and instance.
// When isLLM is set the tgi template is used regardless of task.
func (r *Renderer) Render(modelID, task string, inst types.Instance, isLLM bool) (string, error) {
	if isLLM {
		task = catalog.TGITask
	}
	tpl, ok := r.templates[task]
	if !ok {
		return "", &UnknownTaskError{Task: task}
	}
	var b strings.Builder
	err := tpl.Execute(&b, snippetData{
		ModelID:      modelID,
		Task:         task,
		InstanceType: inst.Name,
		NumGPUs:      inst.NumGPUs,
	})
	if err != nil {
		return "", fmt.Errorf("render snippet %q: %w", task, err)
	}
	return b.String(), nil
}
