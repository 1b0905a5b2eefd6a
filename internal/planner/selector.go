package planner

import (
	"github.com/rs/zerolog"

	"modeler/pkg/types"
)

const bytesPerGB = 1024 * 1024 * 1024

// Selector picks the smallest cataloged instance able to hold a model.
type Selector struct {
	instances map[string][]types.Instance
	log       zerolog.Logger
}

// NewSelector builds a Selector over instances, keyed by accelerator and
// ascending by memory within each key. The map is not copied; callers must
// not mutate it afterwards.
func NewSelector(instances map[string][]types.Instance, log zerolog.Logger) *Selector {
	return &Selector{instances: instances, log: log}
}

// Select returns the first instance, in catalog order, whose memory strictly
// exceeds the requirement. Both sides are compared as whole gigabytes, so the
// fractional part of the requirement is truncated.
func (s *Selector) Select(requiredBytes int64, accelerator string) (types.Instance, error) {
	sizeGB := float64(requiredBytes) / bytesPerGB
	for _, inst := range s.instances[accelerator] {
		if inst.MemoryInGB > int(sizeGB) {
			s.log.Debug().
				Str("instance", inst.Name).
				Float64("size_gb", sizeGB).
				Str("accelerator", accelerator).
				Msg("selected instance")
			return inst, nil
		}
	}
	return types.Instance{}, &NoSuitableInstanceError{SizeGB: sizeGB, Accelerator: accelerator}
}
