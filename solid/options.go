// SPDX-License-Identifier: MIT

package solid

const panicValidatorNil = "solid: WithValidator: validator must be non-nil"

// Option configures polyhedron construction.
type Option func(*Options)

// Options is the resolved construction policy.
type Options struct {
	validator MeshValidator
}

// WithValidator selects the mesh validator run by NewPolyhedron.
// Panics on nil.
func WithValidator(v MeshValidator) Option {
	if v == nil {
		panic(panicValidatorNil)
	}

	return func(o *Options) {
		o.validator = v
	}
}

// DefaultOptions returns the defaults: AcceptAll validation.
func DefaultOptions() Options {
	return Options{validator: AcceptAll{}}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
