package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A cut judged through a filtered walk must agree with the network copy
// that actually drops the link.
func TestStepWithCutMatchesWithout(t *testing.T) {
	n := ParseNetwork([]string{
		"a-b", "b-c", "c-A", "b-d", "d-B", "a-e", "e-C", "e-f", "f-A", "c-d",
	})
	ctx := context.Background()
	for _, virus := range []string{"a", "b", "c", "d", "e", "f"} {
		for _, c := range n.Cuts() {
			m, err := n.Without(c)
			require.NoError(t, err)

			wantT, wantD, wantOK := m.Target(virus)
			gotT, gotD, gotOK, err := n.target(ctx, virus, &c)
			require.NoError(t, err)
			assert.Equal(t, []any{wantT, wantD, wantOK}, []any{gotT, gotD, gotOK}, "target from %s without %s", virus, c)

			wantS, wantOK := m.Step(virus)
			gotS, gotOK, err := n.step(ctx, virus, &c)
			require.NoError(t, err)
			assert.Equal(t, wantOK, gotOK, "step from %s without %s", virus, c)
			assert.Equal(t, wantS, gotS, "step from %s without %s", virus, c)
		}
	}
}

func TestCutKeeps(t *testing.T) {
	c := &Cut{Gateway: "A", Node: "b"}
	assert.False(t, c.keeps("A", "b"))
	assert.False(t, c.keeps("b", "A"))
	assert.True(t, c.keeps("A", "c"))

	var none *Cut
	assert.True(t, none.keeps("A", "b"))
}
