// Package score implements the deterministic numeric pipeline: the
// weighted combiners, the label tables, and the credibility tally.
// Everything here is pure computation; identical inputs always yield
// identical outputs.
package score

import (
	"errors"
	"fmt"
	"math"

	"github.com/akoval/mediascope/internal/model"
)

// Methodology weights. Fixed constants, exposed so tests can assert
// them independently of behavior.
const (
	WeightEconomic      = 0.35
	WeightSocial        = 0.35
	WeightNewsReporting = 0.15
	WeightEditorial     = 0.15

	WeightFactCheck    = 0.40
	WeightSourcing     = 0.25
	WeightTransparency = 0.25
	WeightPropaganda   = 0.10
)

// Component names used by the two standard combiners
const (
	ComponentEconomic      = "economic"
	ComponentSocial        = "social"
	ComponentNewsReporting = "news_reporting"
	ComponentEditorial     = "editorial"

	ComponentFactCheck    = "fact_check"
	ComponentSourcing     = "sourcing"
	ComponentTransparency = "transparency"
	ComponentPropaganda   = "propaganda"
)

// ErrInsufficientData means a combiner received no usable components.
// It must propagate as an explicit marker, never silently become 0:
// zero is a valid real score.
var ErrInsufficientData = errors.New("insufficient data: no components present")

// Combiner computes a weighted sum of named sub-scores, clamped to its
// governing range. Weight configuration errors are construction-time
// fatal; nothing at run time can make weights invalid.
type Combiner struct {
	name    string
	order   []string
	weights map[string]float64
	lo, hi  float64
}

// NewCombiner builds a combiner from name+weight pairs. The weights
// must be non-negative and sum to exactly 1.0 (within float epsilon).
func NewCombiner(name string, lo, hi float64, weighted []model.Component) (*Combiner, error) {
	if len(weighted) == 0 {
		return nil, fmt.Errorf("combiner %s: no components configured", name)
	}

	c := &Combiner{
		name:    name,
		weights: make(map[string]float64, len(weighted)),
		lo:      lo,
		hi:      hi,
	}

	sum := 0.0
	for _, w := range weighted {
		if w.Weight < 0 {
			return nil, fmt.Errorf("combiner %s: negative weight %v for %s", name, w.Weight, w.Name)
		}
		if _, dup := c.weights[w.Name]; dup {
			return nil, fmt.Errorf("combiner %s: duplicate component %s", name, w.Name)
		}
		c.order = append(c.order, w.Name)
		c.weights[w.Name] = w.Weight
		sum += w.Weight
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return nil, fmt.Errorf("combiner %s: weights sum to %v, must sum to 1.0", name, sum)
	}

	return c, nil
}

// NewBiasCombiner returns the bias combiner on [-10,+10]
func NewBiasCombiner() (*Combiner, error) {
	return NewCombiner("bias", -10, 10, []model.Component{
		{Name: ComponentEconomic, Weight: WeightEconomic},
		{Name: ComponentSocial, Weight: WeightSocial},
		{Name: ComponentNewsReporting, Weight: WeightNewsReporting},
		{Name: ComponentEditorial, Weight: WeightEditorial},
	})
}

// NewFactualityCombiner returns the factuality combiner on [0,10]
func NewFactualityCombiner() (*Combiner, error) {
	return NewCombiner("factuality", 0, 10, []model.Component{
		{Name: ComponentFactCheck, Weight: WeightFactCheck},
		{Name: ComponentSourcing, Weight: WeightSourcing},
		{Name: ComponentTransparency, Weight: WeightTransparency},
		{Name: ComponentPropaganda, Weight: WeightPropaganda},
	})
}

// Composite is the outcome of one combination with its audit trail.
// Components carry the effective weights actually applied, which equal
// the configured weights when every component was present and the
// renormalized ones otherwise.
type Composite struct {
	Score      float64
	Components []model.Component
	Warnings   []string
}

// Weights returns the configured component weights in order
func (c *Combiner) Weights() []model.Component {
	out := make([]model.Component, len(c.order))
	for i, name := range c.order {
		out[i] = model.Component{Name: name, Weight: c.weights[name]}
	}
	return out
}

// WeightSum returns the total of the configured weights
func (c *Combiner) WeightSum() float64 {
	sum := 0.0
	for _, w := range c.weights {
		sum += w
	}
	return sum
}

// Combine computes the weighted sum over the supplied component
// values. A component absent from values is excluded and the remaining
// weights renormalize across what is present; a missing collaborator
// never counts as zero. Values outside the governing range are clamped
// with a warning, never fatal. With no usable components at all the
// result is ErrInsufficientData.
func (c *Combiner) Combine(values map[string]float64) (Composite, error) {
	var (
		present    []model.Component
		presentSum float64
		composite  Composite
	)

	for _, name := range c.order {
		v, ok := values[name]
		if !ok {
			composite.Warnings = append(composite.Warnings, fmt.Sprintf("%s: component %s missing, weights renormalized", c.name, name))
			continue
		}
		if v < c.lo || v > c.hi {
			clamped := clamp(v, c.lo, c.hi)
			composite.Warnings = append(composite.Warnings, fmt.Sprintf("%s: component %s value %v outside [%v,%v], clamped", c.name, name, v, c.lo, c.hi))
			v = clamped
		}
		present = append(present, model.Component{Name: name, Value: v, Weight: c.weights[name]})
		presentSum += c.weights[name]
	}

	if len(present) == 0 || presentSum == 0 {
		return Composite{}, ErrInsufficientData
	}

	total := 0.0
	for i := range present {
		present[i].Weight = present[i].Weight / presentSum
		total += present[i].Value * present[i].Weight
	}

	composite.Score = clamp(total, c.lo, c.hi)
	composite.Components = present
	return composite, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
