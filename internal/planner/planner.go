// Package planner chooses the minimum inference instance for a model and
// renders the snippet that deploys it.
//
// A Planner holds only read-only data after construction and is safe for
// concurrent use.
package planner

import (
	"github.com/rs/zerolog"

	"modeler/internal/catalog"
	"modeler/internal/memory"
	"modeler/pkg/types"
)

// Planner composes memory estimation, instance selection and snippet rendering.
type Planner struct {
	cat      catalog.Catalog
	estimate memory.Estimator
	selector *Selector
	renderer *Renderer
	log      zerolog.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithEstimator overrides the memory estimator (default memory.WithOverhead(memory.DefaultOverhead)).
func WithEstimator(e memory.Estimator) Option {
	return func(p *Planner) {
		if e != nil {
			p.estimate = e
		}
	}
}

// WithLogger installs a structured logger (default zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(p *Planner) { p.log = l }
}

// New builds a Planner over cat.
func New(cat catalog.Catalog, opts ...Option) (*Planner, error) {
	p := &Planner{
		cat:      cat,
		estimate: memory.WithOverhead(memory.DefaultOverhead),
		log:      zerolog.Nop(),
	}
	for _, o := range opts {
		o(p)
	}
	r, err := NewRenderer(cat.Snippets)
	if err != nil {
		return nil, err
	}
	p.renderer = r
	p.selector = NewSelector(cat.Instances, p.log)
	return p, nil
}

// Catalog returns the catalog the planner was built over.
func (p *Planner) Catalog() catalog.Catalog { return p.cat }

// Plan selects the instance for model on accelerator and renders its snippet.
// Errors from selection or rendering are returned unchanged.
func (p *Planner) Plan(model types.ModelDescriptor, accelerator string) (types.InferencePlan, error) {
	required := p.estimate(model.SizeInBytesFP32)
	isLLM := model.IsTGISupported

	inst, err := p.selector.Select(required, accelerator)
	if err != nil {
		return types.InferencePlan{}, err
	}
	snippet, err := p.renderer.Render(model.ID, model.Task, inst, isLLM)
	if err != nil {
		return types.InferencePlan{}, err
	}
	p.log.Info().
		Str("model", model.ID).
		Str("accelerator", accelerator).
		Str("instance", inst.Name).
		Bool("is_llm", isLLM).
		Msg("plan built")
	return types.InferencePlan{MinInstanceType: inst.Name, CodeSnippet: snippet, IsLLM: isLLM}, nil
}
