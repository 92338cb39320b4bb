package physics

import (
	"fmt"
	"math"
	"strings"
)

// Boundary selects which kind of wall terminates each end of the cavity.
type Boundary int

const (
	ClosedClosed Boundary = iota
	OpenOpen
	OpenClosed
)

// Field is one of the two components of the electromagnetic wave.
type Field int

const (
	Electric Field = iota
	Magnetic
)

// Edge is the behavior a field is forced to at a wall.
type Edge int

const (
	Node Edge = iota
	Antinode
)

// Trig is a closed-form factor of a standing wave.
type Trig int

const (
	Sin Trig = iota
	Cos
)

// EdgePolicy details what a field does at x=0 and x=L.
type EdgePolicy struct {
	AtStart Edge
	AtEnd   Edge
}

// Form is the closed-form shape of one field under one boundary:
// Coefficient·Amplitude·Spatial(kx)·Temporal(ωt).
type Form struct {
	Coefficient float64
	Spatial     Trig
	Temporal    Trig
}

type boundaryModel struct {
	name, alias string

	// fundamental wavelength, in cavity lengths
	span float64
	// only odd quarter-wave harmonics fit
	oddOnly bool

	edges [2]EdgePolicy

	// spatial factors are derived from edges
	coefficient float64
	temporal    [2]Trig
}

var boundaryModels = [...]boundaryModel{
	ClosedClosed: {
		name: "closed-closed", alias: "cerrada-cerrada",
		span: 2,
		edges: [2]EdgePolicy{
			Electric: {Node, Node},
			Magnetic: {Antinode, Antinode},
		},
		coefficient: 2,
		temporal:    [2]Trig{Electric: Cos, Magnetic: Sin},
	},

	OpenOpen: {
		name: "open-open", alias: "abierta-abierta",
		span: 2,
		edges: [2]EdgePolicy{
			Electric: {Antinode, Antinode},
			Magnetic: {Node, Node},
		},
		coefficient: 2,
		temporal:    [2]Trig{Electric: Cos, Magnetic: Sin},
	},

	OpenClosed: {
		name: "open-closed", alias: "abierta-cerrada",
		span:    4,
		oddOnly: true,
		edges: [2]EdgePolicy{
			Electric: {Antinode, Node},
			Magnetic: {Node, Antinode},
		},
		coefficient: 1,
		temporal:    [2]Trig{Electric: Cos, Magnetic: Cos},
	},
}

// Boundaries lists every defined boundary condition.
func Boundaries() []Boundary {
	return []Boundary{ClosedClosed, OpenOpen, OpenClosed}
}

// ParseBoundary resolves a boundary by name.
func ParseBoundary(name string) (Boundary, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, m := range boundaryModels {
		if name == m.name || name == m.alias {
			return Boundary(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnhandledBoundary, name)
}

func (b Boundary) model() (*boundaryModel, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnhandledBoundary, int(b))
	}
	return &boundaryModels[b], nil
}

// Valid returns true if b is one of the defined variants.
func (b Boundary) Valid() bool {
	return b >= 0 && int(b) < len(boundaryModels)
}

func (b Boundary) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
	return boundaryModels[b].name
}

func (b Boundary) MarshalText() ([]byte, error) {
	if _, err := b.model(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func (b *Boundary) UnmarshalText(text []byte) (err error) {
	*b, err = ParseBoundary(string(text))
	return
}

// ParseField resolves E/B by name.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "e", "electric":
		return Electric, nil
	case "b", "magnetic":
		return Magnetic, nil
	}
	return 0, fmt.Errorf("%w: unknown field %q", ErrInvalidInput, name)
}

// Other returns the complementary field.
func (f Field) Other() Field {
	if f == Electric {
		return Magnetic
	}
	return Electric
}

func (f Field) String() string {
	switch f {
	case Electric:
		return "E"
	case Magnetic:
		return "B"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f Field) valid() bool {
	return f == Electric || f == Magnetic
}

// Force returns the spatial factor a wall imposes, given the analytic factor
// there. Antinodes keep the analytic sign so their magnitude is exactly 1.
func (e Edge) Force(analytic float64) float64 {
	switch {
	case e == Node:
		return 0
	case analytic < 0:
		return -1
	}
	return 1
}

func (e Edge) String() string {
	if e == Node {
		return "node"
	}
	return "antinode"
}

func (e Edge) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Apply evaluates the factor at phase x.
func (t Trig) Apply(x float64) float64 {
	if t == Sin {
		return math.Sin(x)
	}
	return math.Cos(x)
}

func (t Trig) String() string {
	if t == Sin {
		return "sin"
	}
	return "cos"
}

// FundamentalWavelength is 2L for symmetric cavities, 4L for open-closed.
func FundamentalWavelength(b Boundary, l float64) (float64, error) {
	m, err := b.model()
	if err != nil {
		return 0, err
	}
	if err := checkLength(l); err != nil {
		return 0, err
	}
	return m.span * l, nil
}

// PolicyFor returns which edge field f is forced to at each wall.
func PolicyFor(b Boundary, f Field) (EdgePolicy, error) {
	m, err := b.model()
	if err != nil {
		return EdgePolicy{}, err
	}
	if !f.valid() {
		return EdgePolicy{}, fmt.Errorf("%w: %v", ErrInvalidInput, f)
	}
	return m.edges[f], nil
}

// FormFor returns the closed-form shape of field f. The spatial factor is
// sin when the field has a node at x=0, cos otherwise.
func FormFor(b Boundary, f Field) (Form, error) {
	policy, err := PolicyFor(b, f)
	if err != nil {
		return Form{}, err
	}
	m := &boundaryModels[b]
	form := Form{
		Coefficient: m.coefficient,
		Spatial:     Cos,
		Temporal:    m.temporal[f],
	}
	if policy.AtStart == Node {
		form.Spatial = Sin
	}
	return form, nil
}

// HarmonicIndex returns m such that k_n = m·π/(2L). Symmetric cavities hold
// every half-wave harmonic (m = 2n), open-closed only odd quarter waves
// (m = 2n-1).
func HarmonicIndex(b Boundary, n int) (int, error) {
	m, err := b.model()
	if err != nil {
		return 0, err
	}
	if err := checkMode(n); err != nil {
		return 0, err
	}
	if m.oddOnly {
		return 2*n - 1, nil
	}
	return 2 * n, nil
}

// WaveNumber returns k_n for mode n in a cavity of length l. Open-closed
// cavities use the quarter-wave (2n-1)·π/(2L), not (2n-1)·π/L: only that
// family fits the 4L fundamental and keeps E's node at x=L.
func WaveNumber(b Boundary, n int, l float64) (float64, error) {
	m, err := HarmonicIndex(b, n)
	if err != nil {
		return 0, err
	}
	if err := checkLength(l); err != nil {
		return 0, err
	}
	return float64(m) * math.Pi / (2 * l), nil
}
