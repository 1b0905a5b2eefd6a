// Package catalog holds the instance catalog and the deployment snippet
// templates consumed by the planner. A Catalog is read-only once built.
package catalog

import (
	"sort"

	"modeler/pkg/types"
)

// TGITask is the synthetic template key used for LLM serving.
const TGITask = "tgi"

// Catalog maps accelerators to instances and tasks to snippet templates.
// Instances for each accelerator are expected in ascending memory order.
type Catalog struct {
	Instances map[string][]types.Instance `json:"instances" yaml:"instances" toml:"instances"`
	Snippets  map[string]string           `json:"snippets" yaml:"snippets" toml:"snippets"`
}

// InstancesFor returns a copy of the instances cataloged for accelerator.
func (c Catalog) InstancesFor(accelerator string) []types.Instance {
	return append([]types.Instance(nil), c.Instances[accelerator]...)
}

// Accelerators returns the accelerator keys in lexical order.
func (c Catalog) Accelerators() []string {
	return sortedKeys(c.Instances)
}

// Tasks returns the snippet template keys in lexical order.
func (c Catalog) Tasks() []string {
	return sortedKeys(c.Snippets)
}

// Merge returns base with every accelerator and task present in over replaced.
// Neither argument is modified.
func Merge(base, over Catalog) Catalog {
	out := Catalog{
		Instances: make(map[string][]types.Instance, len(base.Instances)+len(over.Instances)),
		Snippets:  make(map[string]string, len(base.Snippets)+len(over.Snippets)),
	}
	for k, v := range base.Instances {
		out.Instances[k] = append([]types.Instance(nil), v...)
	}
	for k, v := range over.Instances {
		out.Instances[k] = append([]types.Instance(nil), v...)
	}
	for k, v := range base.Snippets {
		out.Snippets[k] = v
	}
	for k, v := range over.Snippets {
		out.Snippets[k] = v
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
