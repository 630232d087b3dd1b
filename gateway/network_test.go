package gateway_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/core"
	"github.com/katalvlaran/burrow/gateway"
)

func TestIsGateway(t *testing.T) {
	for id, want := range map[string]bool{
		"A": true, "GW1": true, "Z9": true,
		"a": false, "Ab": false, "1": false, "": false, "-": false,
	} {
		assert.Equal(t, want, gateway.IsGateway(id), id)
	}
}

func TestParseNetwork(t *testing.T) {
	n := gateway.ParseNetwork([]string{
		"a-b",
		"",
		"  b-A \r",
		"garbage",
		"b-a",
		"c-c",
		"-x",
		"b-B",
	})

	assert.Equal(t, [][2]string{{"A", "b"}, {"B", "b"}, {"a", "b"}}, n.Links())
	assert.Equal(t, []string{"A", "B"}, n.Gateways())
	assert.Equal(t, []gateway.Cut{{"A", "b"}, {"B", "b"}}, n.Cuts())
}

func TestNewNetwork_Errors(t *testing.T) {
	_, err := gateway.NewNetwork([][2]string{{"a", ""}})
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = gateway.NewNetwork([][2]string{{"a", "a"}})
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	n, err := gateway.NewNetwork([][2]string{{"a", "A"}, {"A", "a"}})
	require.NoError(t, err)
	assert.Len(t, n.Links(), 1)
}

func TestCuts_SkipGatewayToGateway(t *testing.T) {
	n := gateway.ParseNetwork([]string{"A-B", "B-c", "a-c"})
	assert.Equal(t, []gateway.Cut{{"B", "c"}}, n.Cuts())
}

func TestTarget(t *testing.T) {
	// a-c-B and a-d-A: both gateways at distance 2, A wins by name.
	n := gateway.ParseNetwork([]string{"a-c", "c-B", "a-d", "d-A"})
	tgt, dist, ok := n.Target("a")
	require.True(t, ok)
	assert.Equal(t, "A", tgt)
	assert.Equal(t, 2, dist)

	tgt, dist, ok = n.Target("c")
	require.True(t, ok)
	assert.Equal(t, "B", tgt)
	assert.Equal(t, 1, dist)

	_, _, ok = gateway.ParseNetwork([]string{"b-A"}).Target("a")
	assert.False(t, ok, "virus outside the network")

	_, _, ok = gateway.ParseNetwork([]string{"a-b", "C-d"}).Target("a")
	assert.False(t, ok, "gateway in another component")
}

func TestStep(t *testing.T) {
	// Two shortest routes to A; the virus takes the smaller neighbor.
	n := gateway.ParseNetwork([]string{"a-c", "a-b", "b-A", "c-A"})
	next, ok := n.Step("a")
	require.True(t, ok)
	assert.Equal(t, "b", next)

	next, ok = n.Step("b")
	require.True(t, ok)
	assert.Equal(t, "A", next, "adjacent target is entered")

	n = gateway.ParseNetwork([]string{"a-c", "c-B", "a-d", "d-A"})
	next, ok = n.Step("a")
	require.True(t, ok)
	assert.Equal(t, "d", next, "heads for the tie-broken target")

	_, ok = gateway.ParseNetwork([]string{"a-b"}).Step("a")
	assert.False(t, ok)
}

func TestWithout(t *testing.T) {
	n := gateway.ParseNetwork([]string{"a-A", "a-B"})
	m, err := n.Without(gateway.Cut{Gateway: "A", Node: "a"})
	require.NoError(t, err)

	assert.Len(t, n.Links(), 2, "receiver is untouched")
	assert.Equal(t, [][2]string{{"B", "a"}}, m.Links())
	assert.Equal(t, []string{"A", "B"}, m.Gateways())

	_, err = m.Without(gateway.Cut{Gateway: "A", Node: "a"})
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}
