package burrow

import (
	"fmt"
	"strings"
)

// State is one configuration of the burrow.
//
// State is a comparable value type: == compares the full hallway and room
// content, and a State can be used as a map key as-is. Slots at index ≥ depth
// in a room are always Empty, so two states of the same depth and content are
// always equal. Room slot 0 is next to the door; slot depth-1 is the closed end.
type State struct {
	hall  [HallwayLen]Kind
	rooms [RoomCount][MaxDepth]Kind
	depth uint8
}

// NewState builds a State from a hallway and four rooms listed door-first.
// All rooms must share the same length, which becomes the depth.
func NewState(hall [HallwayLen]Kind, rooms [RoomCount][]Kind) (State, error) {
	var s State
	depth := len(rooms[0])
	if depth < 1 || depth > MaxDepth {
		return s, fmt.Errorf("%w: depth %d outside [1, %d]", ErrInvalidState, depth, MaxDepth)
	}
	s.hall = hall
	s.depth = uint8(depth)
	for r := 0; r < RoomCount; r++ {
		if len(rooms[r]) != depth {
			return State{}, fmt.Errorf("%w: room %d has depth %d, want %d", ErrInvalidState, r, len(rooms[r]), depth)
		}
		copy(s.rooms[r][:], rooms[r])
	}
	if err := s.Validate(); err != nil {
		return State{}, err
	}

	return s, nil
}

// SolvedState returns the organized burrow of the given depth.
// Panics if depth is outside [1, MaxDepth].
func SolvedState(depth int) State {
	if depth < 1 || depth > MaxDepth {
		panic(fmt.Sprintf("burrow: depth %d outside [1, %d]", depth, MaxDepth))
	}
	s := State{depth: uint8(depth)}
	for r := 0; r < RoomCount; r++ {
		for d := 0; d < depth; d++ {
			s.rooms[r][d] = HomeKind(r)
		}
	}

	return s
}

// Validate checks the layout rules a State must satisfy before a search:
// depth in [1, MaxDepth], every slot Empty or a known kind, and nothing
// stored below the room floor.
func (s State) Validate() error {
	if s.depth < 1 || int(s.depth) > MaxDepth {
		return fmt.Errorf("%w: depth %d outside [1, %d]", ErrInvalidState, s.depth, MaxDepth)
	}
	for i, k := range s.hall {
		if !k.Valid() {
			return fmt.Errorf("%w: hallway slot %d holds unknown kind %d", ErrInvalidState, i, k)
		}
	}
	for r := 0; r < RoomCount; r++ {
		for d := 0; d < MaxDepth; d++ {
			k := s.rooms[r][d]
			if !k.Valid() {
				return fmt.Errorf("%w: room %d slot %d holds unknown kind %d", ErrInvalidState, r, d, k)
			}
			if d >= int(s.depth) && k != Empty {
				return fmt.Errorf("%w: room %d slot %d is below depth %d", ErrInvalidState, r, d, s.depth)
			}
		}
	}

	return nil
}

// Depth returns the room depth D.
func (s State) Depth() int { return int(s.depth) }

// Hall returns the content of hallway slot pos.
func (s State) Hall(pos int) Kind { return s.hall[pos] }

// Hallway returns a copy of the hallway.
func (s State) Hallway() [HallwayLen]Kind { return s.hall }

// At returns the content of room slot depth (0 = next to the door).
func (s State) At(room, depth int) Kind { return s.rooms[room][depth] }

// Room returns a copy of the room's slots, door first.
func (s State) Room(room int) []Kind {
	out := make([]Kind, s.depth)
	copy(out, s.rooms[room][:s.depth])

	return out
}

// Top returns the depth of the shallowest occupied slot in room.
// ok is false when the room is empty.
func (s State) Top(room int) (depth int, ok bool) {
	for d := 0; d < int(s.depth); d++ {
		if s.rooms[room][d] != Empty {
			return d, true
		}
	}

	return -1, false
}

// Tokens counts the amphipods of every kind, indexed by Kind.
// Index Empty counts free slots.
func (s State) Tokens() [KindCount + 1]int {
	var n [KindCount + 1]int
	for _, k := range s.hall {
		n[k]++
	}
	for r := 0; r < RoomCount; r++ {
		for d := 0; d < int(s.depth); d++ {
			n[s.rooms[r][d]]++
		}
	}

	return n
}

// IsGoal reports whether the hallway is empty and every room slot holds the
// room's home kind.
func (s State) IsGoal() bool {
	for _, k := range s.hall {
		if k != Empty {
			return false
		}
	}
	for r := 0; r < RoomCount; r++ {
		home := HomeKind(r)
		for d := 0; d < int(s.depth); d++ {
			if s.rooms[r][d] != home {
				return false
			}
		}
	}

	return true
}

// String renders the hallway and rooms compactly, e.g.
// "...........|BA|CD|BC|DA".
func (s State) String() string {
	var sb strings.Builder
	sb.Grow(HallwayLen + RoomCount*(int(s.depth)+1))
	for _, k := range s.hall {
		sb.WriteByte(k.Byte())
	}
	for r := 0; r < RoomCount; r++ {
		sb.WriteByte('|')
		for d := 0; d < int(s.depth); d++ {
			sb.WriteByte(s.rooms[r][d].Byte())
		}
	}

	return sb.String()
}
