package actioncontroller

import (
	"github.com/activegraph/actionpack/activesupport"
	"github.com/activegraph/actionpack/internal"
)

type Parameters map[string]interface{}

func (p Parameters) Get(key string) Parameters {
	val, ok := p[key]
	if !ok {
		return nil
	}
	params, ok := val.(map[string]interface{})
	if !ok {
		return nil
	}
	return params
}

func (p Parameters) ToH() activesupport.Hash {
	return activesupport.Hash(p)
}

func (p Parameters) Copy() Parameters {
	return Parameters(internal.CopyMap(p))
}

// Permit returns a copy of the parameters holding only the keys
// allowed by the given constraints. Unconstrained actions keep the
// parameters as they are.
func (p Parameters) Permit(constraints Constraints) Parameters {
	if len(constraints.Permitted) == 0 {
		return p.Copy()
	}
	return Parameters(p.ToH().Slice(constraints.Permitted...))
}
