// Package burrow finds the minimum-energy way to organize amphipods in a burrow.
//
// The burrow is a two-level layout: an 11-slot hallway and four side rooms of a
// uniform depth D that open onto hallway positions 2, 4, 6 and 8. Four kinds of
// amphipod (Amber, Bronze, Copper, Desert) must end up in their own room
// (Amber → room 0, …, Desert → room 3) with the hallway empty. Moving one slot
// costs 1, 10, 100 or 1000 energy depending on the kind.
//
// Overview:
//
//   - State is an immutable, comparable value: it can be used directly as a map
//     key, and every move produces a fresh State.
//   - State.Moves enumerates every legal single-amphipod move together with its
//     energy cost. Only two move classes exist: hallway → home room, and
//     room → hallway stop. There are no hallway → hallway moves.
//   - Solve runs a uniform-cost (Dijkstra) search over the implicit state graph
//     and returns the minimum total energy, or ErrNoSolution.
//
// Legality rules:
//
//   - An amphipod enters only its home room, only when the room holds no
//     foreign kind, and always drops to the deepest free slot.
//   - An amphipod leaves a room only from the top (the slot nearest the door)
//     and never leaves a settled room, i.e. a home room whose slots from the top
//     down already hold the room's kind.
//   - The four hallway slots directly above the rooms are transit-only: nothing
//     ever stops there.
//   - Every hallway slot strictly between the start and the end of a walk must
//     be empty.
//
// Search:
//
//   - The frontier is a container/heap min-heap ordered by accumulated energy,
//     ties broken by insertion order so runs are deterministic.
//   - A best-cost table keyed by State records the cheapest known cost. Stale
//     frontier entries (cost above the table value) are skipped when popped
//     ("lazy decrease-key").
//   - The first goal State popped carries the optimal cost; the search halts.
//
// Complexity:
//
//   - Time:  O((V + E) log E) over the reachable states V and moves E.
//   - Space: O(V + E); the best-cost table is never pruned during a run.
//
// Errors:
//
//   - ErrNoSolution   the frontier was exhausted without reaching the goal.
//   - ErrInvalidState the start state failed Validate.
//
// Parsing the textual diagram lives in package diagram.
package burrow
