package physics

import "math"

// NodePair is one node and its neighboring antinode.
type NodePair struct {
	Node     float64 `json:"node"`
	Antinode float64 `json:"antinode"`
}

// Marker is a single node or antinode position.
type Marker struct {
	Position float64 `json:"x"`
	Kind     Edge    `json:"kind"`
}

// EnumerateNodes lists n node/antinode pairs for field f across a cavity of
// length l. E starts with a node at x=0, B with an antinode there.
func EnumerateNodes(f Field, n int, l float64) ([]NodePair, error) {
	return NodesFor(ClosedClosed, f, n, l)
}

// NodesFor lists n node/antinode pairs for field f under boundary b. The
// marker at x=0 is whatever the edge policy forces there, and markers repeat
// every π/k_n.
func NodesFor(b Boundary, f Field, n int, l float64) ([]NodePair, error) {
	policy, err := PolicyFor(b, f)
	if err != nil {
		return nil, err
	}
	k, err := WaveNumber(b, n, l)
	if err != nil {
		return nil, err
	}

	stride := math.Pi / k
	half := stride / 2

	pairs := make([]NodePair, n)
	for i := range pairs {
		x := float64(i) * stride
		if policy.AtStart == Node {
			pairs[i] = NodePair{Node: x, Antinode: x + half}
		} else {
			pairs[i] = NodePair{Node: x + half, Antinode: x}
		}
	}
	return pairs, nil
}

// Markers flattens pairs into position-ordered markers.
func Markers(pairs []NodePair) []Marker {
	out := make([]Marker, 0, len(pairs)*2)
	for _, p := range pairs {
		node := Marker{p.Node, Node}
		anti := Marker{p.Antinode, Antinode}
		if anti.Position < node.Position {
			node, anti = anti, node
		}
		out = append(out, node, anti)
	}
	return out
}
