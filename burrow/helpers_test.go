package burrow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/burrow"
)

const emptyHall = "..........."

// mustState builds a State from an 11-letter hallway and four door-first rooms,
// e.g. mustState(t, emptyHall, "BA", "CD", "BC", "DA").
func mustState(t testing.TB, hall string, rooms ...string) burrow.State {
	t.Helper()
	require.Len(t, hall, burrow.HallwayLen)
	require.Len(t, rooms, burrow.RoomCount)

	var h [burrow.HallwayLen]burrow.Kind
	for i := 0; i < len(hall); i++ {
		k, ok := burrow.KindFromByte(hall[i])
		require.True(t, ok, "hallway byte %q", hall[i])
		h[i] = k
	}
	var rs [burrow.RoomCount][]burrow.Kind
	for r, room := range rooms {
		for i := 0; i < len(room); i++ {
			k, ok := burrow.KindFromByte(room[i])
			require.True(t, ok, "room byte %q", room[i])
			rs[r] = append(rs[r], k)
		}
	}
	s, err := burrow.NewState(h, rs)
	require.NoError(t, err)

	return s
}

// reachable collects up to limit states reachable from start, breadth first.
func reachable(start burrow.State, limit int) []burrow.State {
	seen := map[burrow.State]bool{start: true}
	queue := []burrow.State{start}
	out := make([]burrow.State, 0, limit)
	for len(queue) > 0 && len(out) < limit {
		s := queue[0]
		queue = queue[1:]
		out = append(out, s)
		for _, m := range s.Moves() {
			if !seen[m.Next] {
				seen[m.Next] = true
				queue = append(queue, m.Next)
			}
		}
	}

	return out
}

// example is the well-known depth-2 puzzle whose optimum is 12521.
func example(t testing.TB) burrow.State {
	return mustState(t, emptyHall, "BA", "CD", "BC", "DA")
}

// exampleUnfolded is the depth-4 variant of example whose optimum is 44169.
func exampleUnfolded(t testing.TB) burrow.State {
	return mustState(t, emptyHall, "BDDA", "CCBD", "BBAC", "DACA")
}
