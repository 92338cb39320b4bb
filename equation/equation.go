// Package equation renders the closed forms of a standing wave as text, both
// for display and for external expression evaluators.
package equation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/colinrgodsey/wave-daemon/physics"
)

// Equations holds one expression per field.
type Equations struct {
	Electric string `json:"E"`
	Magnetic string `json:"B"`
}

// Template is the structure of one field's closed form, for consumers that
// would rather not parse strings.
type Template struct {
	Field       physics.Field `json:"field"`
	Coefficient float64       `json:"coefficient"`
	Amplitude   string        `json:"amplitude"`
	Spatial     string        `json:"spatial"`
	Temporal    string        `json:"temporal"`

	// displayed as temporal·spatial
	TemporalFirst bool `json:"temporal_first,omitempty"`
}

// Templates returns the E and B templates for boundary b.
func Templates(b physics.Boundary) (e, m Template, err error) {
	if e, err = template(b, physics.Electric); err != nil {
		return
	}
	m, err = template(b, physics.Magnetic)
	return
}

func template(b physics.Boundary, f physics.Field) (Template, error) {
	form, err := physics.FormFor(b, f)
	if err != nil {
		return Template{}, err
	}
	return Template{
		Field:         f,
		Coefficient:   form.Coefficient,
		Amplitude:     f.String() + "0",
		Spatial:       form.Spatial.String(),
		Temporal:      form.Temporal.String(),
		TemporalFirst: b == physics.ClosedClosed && f == physics.Magnetic,
	}, nil
}

type style struct {
	mul    string
	number func(float64) string
	factor func(fn string, coef float64, v string) string
}

var display = style{
	mul: "·",
	number: func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	},
	factor: func(fn string, coef float64, v string) string {
		return fmt.Sprintf("%v(%v%v)", fn, strconv.FormatFloat(coef, 'g', 3, 64), v)
	},
}

var evaluable = style{
	mul: " * ",
	number: func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	},
	factor: func(fn string, coef float64, v string) string {
		return fmt.Sprintf("%v(%v * %v)", fn, strconv.FormatFloat(coef, 'g', -1, 64), v)
	},
}

func (s style) render(t Template, amplitude, k, ω float64) string {
	var parts []string
	if t.Coefficient != 1 {
		parts = append(parts, s.number(t.Coefficient))
	}
	parts = append(parts, s.number(amplitude))

	spatial := s.factor(t.Spatial, k, "x")
	temporal := s.factor(t.Temporal, ω, "t")
	if t.TemporalFirst {
		parts = append(parts, temporal, spatial)
	} else {
		parts = append(parts, spatial, temporal)
	}
	return strings.Join(parts, s.mul)
}

func check(k, ω, e0, b0 float64) error {
	for _, v := range []float64{k, ω, e0, b0} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite equation parameter %v", physics.ErrInvalidInput, v)
		}
	}
	return nil
}

func build(s style, b physics.Boundary, k, ω, e0, b0 float64) (Equations, error) {
	if err := check(k, ω, e0, b0); err != nil {
		return Equations{}, err
	}
	et, bt, err := Templates(b)
	if err != nil {
		return Equations{}, err
	}
	return Equations{
		Electric: s.render(et, e0, k, ω),
		Magnetic: s.render(bt, b0, k, ω),
	}, nil
}

// Build returns display strings such as "E(x,t) = 2·0.5·sin(3.14x)·cos(9.42t)".
// Wave numbers and frequencies keep three significant digits.
func Build(b physics.Boundary, k, ω, e0, b0 float64) (Equations, error) {
	eqs, err := build(display, b, k, ω, e0, b0)
	if err != nil {
		return eqs, err
	}
	eqs.Electric = "E(x,t) = " + eqs.Electric
	eqs.Magnetic = "B(x,t) = " + eqs.Magnetic
	return eqs, nil
}

// BuildEvaluable returns bare expressions in x and t with explicit
// multiplication and full precision, e.g.
// "2 * 0.5 * sin(3.141592653589793 * x) * cos(9.42 * t)".
func BuildEvaluable(b physics.Boundary, k, ω, e0, b0 float64) (Equations, error) {
	return build(evaluable, b, k, ω, e0, b0)
}
