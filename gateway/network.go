package gateway

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/burrow/bfs"
	"github.com/katalvlaran/burrow/core"
)

// Network is an undirected node network with a fixed set of gateways.
// A Network is never mutated once built; Without returns a copy.
type Network struct {
	g        *core.Graph
	gateways mapset.Set[string]
}

// IsGateway reports whether id names a gateway: it holds at least one
// upper-case letter and no lower-case ones.
func IsGateway(id string) bool {
	cased := false
	for _, r := range id {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}

	return cased
}

// ParseNetwork reads "u-v" link lines, trimming spaces around each endpoint.
// Blank lines, lines without a dash, links with an empty endpoint, self-links
// and repeated links are skipped.
func ParseNetwork(lines []string) *Network {
	links := make([][2]string, 0, len(lines))
	for _, line := range lines {
		u, v, ok := strings.Cut(strings.TrimSpace(line), "-")
		if !ok {
			continue
		}
		links = append(links, [2]string{strings.TrimSpace(u), strings.TrimSpace(v)})
	}
	n := newNetwork()
	for _, l := range links {
		_ = n.link(l[0], l[1])
	}

	return n
}

// NewNetwork builds a network from explicit links. Unlike ParseNetwork it
// rejects empty endpoints and self-links. Repeated links are merged.
func NewNetwork(links [][2]string) (*Network, error) {
	n := newNetwork()
	for _, l := range links {
		if err := n.link(l[0], l[1]); err != nil {
			return nil, fmt.Errorf("gateway: link %s-%s: %w", l[0], l[1], err)
		}
	}

	return n, nil
}

func newNetwork() *Network {
	return &Network{g: core.NewGraph(), gateways: mapset.New[string]()}
}

func (n *Network) link(u, v string) error {
	_, err := n.g.AddEdge(u, v)
	if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, id := range [2]string{u, v} {
		if IsGateway(id) {
			n.gateways.Put(id)
		}
	}

	return nil
}

// Gateways returns the gateway names, sorted.
func (n *Network) Gateways() []string {
	out := make([]string, 0, n.gateways.Size())
	n.gateways.Each(func(id string) { out = append(out, id) })
	sort.Strings(out)

	return out
}

// Links returns every remaining link as a sorted (low, high) pair, in
// ascending order.
func (n *Network) Links() [][2]string {
	edges := n.g.Edges()
	out := make([][2]string, 0, len(edges))
	for _, e := range edges {
		u, v := e.From, e.To
		if v < u {
			u, v = v, u
		}
		out = append(out, [2]string{u, v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}

// Cuts lists the removable gateway links (a gateway on one end, a plain node
// on the other) sorted by gateway, then node.
func (n *Network) Cuts() []Cut {
	var out []Cut
	for _, l := range n.Links() {
		gu, gv := n.gateways.Has(l[0]), n.gateways.Has(l[1])
		switch {
		case gu && !gv:
			out = append(out, Cut{Gateway: l[0], Node: l[1]})
		case gv && !gu:
			out = append(out, Cut{Gateway: l[1], Node: l[0]})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Gateway != out[j].Gateway {
			return out[i].Gateway < out[j].Gateway
		}
		return out[i].Node < out[j].Node
	})

	return out
}

// Without returns a copy of n with the cut's link removed.
func (n *Network) Without(c Cut) (*Network, error) {
	g := n.g.Clone()
	if err := g.RemoveEdgeBetween(c.Gateway, c.Node); err != nil {
		return nil, fmt.Errorf("gateway: cut %s: %w", c, err)
	}

	return &Network{g: g, gateways: n.gateways}, nil
}

// Target returns the gateway the virus heads for and its distance. ok is
// false when no gateway is reachable from virus.
func (n *Network) Target(virus string) (target string, dist int, ok bool) {
	target, dist, ok, _ = n.target(context.Background(), virus, nil)

	return target, dist, ok
}

// Step returns the node the virus moves to next. ok is false when no gateway
// is reachable or the virus has no neighbor closer to its target.
func (n *Network) Step(virus string) (string, bool) {
	next, ok, _ := n.step(context.Background(), virus, nil)

	return next, ok
}

// target runs Target as if cut were already gone. A nil cut removes nothing.
// The walk stops once it is past the nearest gateway's distance.
func (n *Network) target(ctx context.Context, virus string, cut *Cut) (target string, dist int, ok bool, err error) {
	if !n.g.HasVertex(virus) {
		if IsGateway(virus) {
			return virus, 0, true, nil
		}
		return "", 0, false, nil
	}
	_, err = bfs.BFS(n.g, virus,
		bfs.WithContext(ctx),
		bfs.WithFilterNeighbor(cut.keeps),
		bfs.WithOnVisit(func(id string, d int) bool {
			if ok && d > dist {
				return false
			}
			if n.gateways.Has(id) && (!ok || id < target) {
				target, dist, ok = id, d, true
			}
			return true
		}),
	)
	if err != nil {
		return "", 0, false, err
	}

	return target, dist, ok, nil
}

// step runs Step as if cut were already gone. Distances from the target are
// only needed up to the virus's own distance.
func (n *Network) step(ctx context.Context, virus string, cut *Cut) (string, bool, error) {
	target, dist, ok, err := n.target(ctx, virus, cut)
	if err != nil || !ok {
		return "", false, err
	}
	if dist <= 1 {
		return target, true, nil
	}
	res, err := bfs.BFS(n.g, target,
		bfs.WithContext(ctx),
		bfs.WithFilterNeighbor(cut.keeps),
		bfs.WithMaxDepth(dist),
	)
	if err != nil {
		return "", false, err
	}
	nbrs, err := n.g.NeighborIDs(virus)
	if err != nil {
		return "", false, err
	}
	for _, id := range nbrs {
		if !cut.keeps(virus, id) {
			continue
		}
		if d, ok := res.Reached(id); ok && d == dist-1 {
			return id, true, nil
		}
	}

	return "", false, nil
}

// key identifies the pair (remaining links, virus position).
func (n *Network) key(virus string) string {
	var b strings.Builder
	for _, l := range n.Links() {
		b.WriteString(l[0])
		b.WriteByte('-')
		b.WriteString(l[1])
		b.WriteByte(',')
	}
	b.WriteByte('@')
	b.WriteString(virus)

	return b.String()
}
