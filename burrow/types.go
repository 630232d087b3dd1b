// Package burrow defines amphipod kinds, layout constants, search options
// and sentinel errors.
package burrow

import (
	"errors"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the burrow package.
var (
	// ErrNoSolution indicates that the search exhausted every reachable state
	// without finding an organized burrow.
	ErrNoSolution = errors.New("burrow: no solution")

	// ErrInvalidState indicates a State that violates the layout rules
	// (depth out of range, unknown kind, slot below the room floor in use).
	ErrInvalidState = errors.New("burrow: invalid state")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("burrow: MaxCost must be non-negative")
)

// Kind identifies an amphipod type. Empty marks a free slot.
type Kind uint8

const (
	Empty Kind = iota
	Amber
	Bronze
	Copper
	Desert
)

// KindCount is the number of amphipod kinds (Empty excluded).
const KindCount = 4

// energy is the per-step cost of each Kind, indexed by Kind.
var energy = [KindCount + 1]int64{0, 1, 10, 100, 1000}

// Energy returns the energy one step of this kind costs.
// Empty costs nothing.
func (k Kind) Energy() int64 {
	if k > Desert {
		return 0
	}

	return energy[k]
}

// Home returns the index of the room this kind belongs in, or -1 for Empty.
func (k Kind) Home() int {
	if k == Empty || k > Desert {
		return -1
	}

	return int(k) - 1
}

// Valid reports whether k is Empty or one of the four kinds.
func (k Kind) Valid() bool { return k <= Desert }

// Byte returns the diagram letter of k: '.', 'A', 'B', 'C' or 'D'.
func (k Kind) Byte() byte {
	if k == Empty {
		return '.'
	}
	if k > Desert {
		return '?'
	}

	return 'A' + byte(k) - 1
}

func (k Kind) String() string { return string(k.Byte()) }

// KindFromByte maps a diagram letter back to a Kind.
// '.' yields Empty; any byte other than '.', 'A'..'D' reports false.
func KindFromByte(b byte) (Kind, bool) {
	switch {
	case b == '.':
		return Empty, true
	case b >= 'A' && b <= 'D':
		return Kind(b-'A') + Amber, true
	default:
		return Empty, false
	}
}

// HomeKind returns the kind that belongs in the given room.
func HomeKind(room int) Kind { return Kind(room) + Amber }

// Layout constants.
const (
	// HallwayLen is the number of hallway slots.
	HallwayLen = 11

	// RoomCount is the number of side rooms.
	RoomCount = 4

	// MaxDepth bounds the room depth a State can hold.
	MaxDepth = 8
)

// roomDoor holds the hallway position directly above each room.
var roomDoor = [RoomCount]int{2, 4, 6, 8}

// hallwayStops holds every hallway position an amphipod may stop on.
var hallwayStops = [...]int{0, 1, 3, 5, 7, 9, 10}

// RoomDoor returns the hallway position directly above room.
func RoomDoor(room int) int { return roomDoor[room] }

// HallwayStops returns the seven hallway positions an amphipod may stop on.
func HallwayStops() []int {
	out := make([]int, len(hallwayStops))
	copy(out, hallwayStops[:])

	return out
}

// IsStop reports whether pos is a valid hallway stopping position.
func IsStop(pos int) bool {
	for _, s := range hallwayStops {
		if s == pos {
			return true
		}
	}

	return false
}

// Direction tells which way a Move goes.
type Direction uint8

const (
	// OutOfRoom moves the top amphipod of a room to a hallway stop.
	OutOfRoom Direction = iota
	// IntoRoom moves a hallway amphipod down into its home room.
	IntoRoom
)

func (d Direction) String() string {
	if d == IntoRoom {
		return "into-room"
	}

	return "out-of-room"
}

// Options configures Solve.
//
// ReturnPath – if true, Result.Path holds the optimal move sequence.
// MaxCost    – energy cap (≥ 0, default math.MaxInt64); dearer states are not enqueued.
// Logger     – receives debug-level search diagnostics.
// OnExpand   – called once for every state taken off the frontier and expanded.
type Options struct {
	ReturnPath bool
	MaxCost    int64
	Logger     logrus.FieldLogger
	OnExpand   func(s State, cost int64)
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithReturnPath enables reconstruction of the optimal move sequence.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost caps the accumulated energy the search is willing to explore.
// A search whose optimum lies above the cap reports ErrNoSolution.
// Panics on a negative value.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithLogger routes search diagnostics to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a hook called for every expanded state.
func WithOnExpand(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns the options Solve starts from:
//   - ReturnPath: false
//   - MaxCost:    math.MaxInt64
//   - Logger:     a logrus logger writing to io.Discard
//   - OnExpand:   no-op
func DefaultOptions() Options {
	return Options{
		ReturnPath: false,
		MaxCost:    math.MaxInt64,
		Logger:     discardLogger(),
		OnExpand:   func(State, int64) {},
	}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
