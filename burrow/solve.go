package burrow

import (
	"container/heap"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of a successful Solve.
//
//   - Cost:     minimum total energy to organize the burrow.
//   - Expanded: number of states taken off the frontier and expanded.
//   - Pushed:   number of frontier insertions, stale entries included.
//   - Path:     optimal move sequence from start to goal; nil unless
//     WithReturnPath was given. Empty (non-nil) when start is already solved.
type Result struct {
	Cost     int64
	Expanded int
	Pushed   int
	Path     []Move
}

// Solve finds the minimum total energy needed to organize the burrow from start.
//
// Returns ErrInvalidState (wrapped) if start fails Validate, and ErrNoSolution
// when no goal state is reachable within Options.MaxCost. A start state that is
// already organized costs 0 and is not an error.
//
// Complexity:
//
//   - Time:  O((V + E) log E) where V is the number of reachable states and E
//     the number of generated moves.
//   - Space: O(V + E).
func Solve(start State, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := start.Validate(); err != nil {
		return nil, err
	}

	r := &runner{
		options: cfg,
		log:     cfg.Logger.WithField("depth", start.Depth()),
		best:    make(map[State]int64, 1024),
		pq:      make(frontier, 0, 1024),
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]Move, 1024)
	}

	r.init(start)

	goal, ok := r.process()
	if !ok {
		r.log.WithFields(logrus.Fields{
			"expanded": r.expanded,
			"pushed":   r.pushed,
			"states":   len(r.best),
		}).Debug("burrow: frontier exhausted")

		return nil, ErrNoSolution
	}

	res := &Result{
		Cost:     r.best[goal],
		Expanded: r.expanded,
		Pushed:   r.pushed,
	}
	if cfg.ReturnPath {
		res.Path = r.path(start, goal)
	}
	r.log.WithFields(logrus.Fields{
		"cost":     res.Cost,
		"expanded": r.expanded,
		"pushed":   r.pushed,
		"states":   len(r.best),
	}).Debug("burrow: goal reached")

	return res, nil
}

// runner holds the mutable state of a single Solve call.
type runner struct {
	options Options
	log     logrus.FieldLogger
	best    map[State]int64 // lowest cost a state has been enqueued at
	prev    map[State]Move  // move that produced the best cost; nil unless ReturnPath
	pq      frontier
	seq     uint64 // insertion counter for deterministic tie-breaks

	expanded int
	pushed   int
}

// init seeds the best-cost table and the frontier with the start state.
func (r *runner) init(start State) {
	r.best[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// process pops states in order of accumulated energy until a goal state is
// popped or the frontier runs dry. Returns the goal and true on success.
func (r *runner) process() (State, bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*entry)

		// A cheaper path to this state was recorded after this entry was pushed.
		if item.cost > r.best[item.state] {
			continue
		}
		if item.state.IsGoal() {
			return item.state, true
		}

		r.expanded++
		r.options.OnExpand(item.state, item.cost)
		r.relax(item.state, item.cost)
	}

	return State{}, false
}

// relax pushes every successor of s whose cost strictly improves on the best
// known cost.
func (r *runner) relax(s State, cost int64) {
	for _, m := range s.Moves() {
		cand := cost + m.Cost
		if cand > r.options.MaxCost {
			continue
		}
		if old, seen := r.best[m.Next]; seen && cand >= old {
			continue
		}
		r.best[m.Next] = cand
		if r.prev != nil {
			r.prev[m.Next] = m
		}
		r.push(m.Next, cand)
	}
}

func (r *runner) push(s State, cost int64) {
	r.seq++
	r.pushed++
	heap.Push(&r.pq, &entry{state: s, cost: cost, seq: r.seq})
}

// path walks the predecessor moves back from goal to start.
func (r *runner) path(start, goal State) []Move {
	out := make([]Move, 0, 32)
	for cur := goal; cur != start; {
		m := r.prev[cur]
		out = append(out, m)
		cur = before(m)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// before undoes m, returning the state it was made from.
func before(m Move) State {
	s := m.Next
	if m.Dir == IntoRoom {
		s.rooms[m.Room][m.Depth] = Empty
		s.hall[m.Hall] = m.Kind
	} else {
		s.hall[m.Hall] = Empty
		s.rooms[m.Room][m.Depth] = m.Kind
	}

	return s
}

// entry is one frontier item.
type entry struct {
	state State
	cost  int64
	seq   uint64
}

// frontier is a min-heap of *entry ordered by cost, then insertion order.
// Outdated entries stay in the heap and are skipped when popped.
type frontier []*entry

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
