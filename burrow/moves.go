package burrow

import "fmt"

// Move is one legal single-amphipod move.
//
// Exactly one hallway slot (Hall) and one room slot (Room, Depth) change.
// Dir tells whether the amphipod walked out of the room or into it.
// Cost is the energy spent: steps × Kind.Energy().
type Move struct {
	Next  State
	Cost  int64
	Kind  Kind
	Room  int
	Depth int
	Hall  int
	Dir   Direction
}

func (m Move) String() string {
	if m.Dir == IntoRoom {
		return fmt.Sprintf("%s hall %d -> room %d slot %d (%d)", m.Kind, m.Hall, m.Room, m.Depth, m.Cost)
	}

	return fmt.Sprintf("%s room %d slot %d -> hall %d (%d)", m.Kind, m.Room, m.Depth, m.Hall, m.Cost)
}

// Moves enumerates every legal move from s.
//
// Hallway → room moves come first, followed by room → hallway moves in room
// order and stop order. The search does not depend on this order.
func (s State) Moves() []Move {
	moves := make([]Move, 0, 16)
	moves = s.appendIntoRoom(moves)
	moves = s.appendOutOfRoom(moves)

	return moves
}

// appendIntoRoom adds every hallway → home room move.
func (s State) appendIntoRoom(moves []Move) []Move {
	for pos, k := range s.hall {
		if k == Empty {
			continue
		}
		room := k.Home()
		if !s.accepts(room, k) {
			continue
		}
		door := roomDoor[room]
		if !corridorClear(&s.hall, pos, door) {
			continue
		}
		depth := s.deepestFree(room)
		if depth < 0 {
			continue // unreachable after accepts, kept as a guard
		}

		steps := int64(absDiff(pos, door) + depth + 1)
		next := s
		next.hall[pos] = Empty
		next.rooms[room][depth] = k
		moves = append(moves, Move{
			Next:  next,
			Cost:  steps * k.Energy(),
			Kind:  k,
			Room:  room,
			Depth: depth,
			Hall:  pos,
			Dir:   IntoRoom,
		})
	}

	return moves
}

// appendOutOfRoom adds every room → hallway stop move.
func (s State) appendOutOfRoom(moves []Move) []Move {
	for room := 0; room < RoomCount; room++ {
		top, ok := s.Top(room)
		if !ok {
			continue
		}
		k := s.rooms[room][top]
		if s.settled(room, top) {
			continue
		}

		door := roomDoor[room]
		for _, stop := range hallwayStops {
			if s.hall[stop] != Empty {
				continue
			}
			if !corridorClear(&s.hall, door, stop) {
				continue
			}

			steps := int64(top + 1 + absDiff(door, stop))
			next := s
			next.rooms[room][top] = Empty
			next.hall[stop] = k
			moves = append(moves, Move{
				Next:  next,
				Cost:  steps * k.Energy(),
				Kind:  k,
				Room:  room,
				Depth: top,
				Hall:  stop,
				Dir:   OutOfRoom,
			})
		}
	}

	return moves
}

// accepts reports whether kind k may enter room: the room holds no foreign
// kind and is not already full of k.
func (s State) accepts(room int, k Kind) bool {
	full := true
	for d := 0; d < int(s.depth); d++ {
		switch s.rooms[room][d] {
		case Empty:
			full = false
		case k:
		default:
			return false
		}
	}

	return !full
}

// settled reports whether room is the home of its top amphipod and every slot
// from top down to the closed end holds that kind. Slots above top are free.
func (s State) settled(room, top int) bool {
	k := s.rooms[room][top]
	if k.Home() != room {
		return false
	}
	for d := top; d < int(s.depth); d++ {
		if s.rooms[room][d] != k {
			return false
		}
	}

	return true
}

// deepestFree returns the deepest Empty slot of room, or -1 if none.
func (s State) deepestFree(room int) int {
	for d := int(s.depth) - 1; d >= 0; d-- {
		if s.rooms[room][d] == Empty {
			return d
		}
	}

	return -1
}

// corridorClear reports whether every hallway slot strictly between from and
// to is Empty. Equal positions are trivially clear.
func corridorClear(hall *[HallwayLen]Kind, from, to int) bool {
	step := 1
	if to < from {
		step = -1
	}
	for p := from + step; p != to && from != to; p += step {
		if hall[p] != Empty {
			return false
		}
	}

	return true
}

func absDiff(a, b int) int {
	if a < b {
		return b - a
	}

	return a - b
}
