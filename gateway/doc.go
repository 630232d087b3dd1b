// Package gateway solves the network-isolation puzzle: a virus walks an
// undirected node network towards the nearest gateway, and the operator cuts
// one gateway link per turn until no gateway is reachable.
//
// Gateways are nodes whose names are upper-case ("A", "GW1"); every other node
// is a plain node. The virus starts at "a" unless WithStart says otherwise.
//
// Virus movement:
//
//   - Target: the reachable gateway with the smallest BFS distance, ties
//     broken by the lexicographically smallest name.
//   - Step: the target itself when the virus is adjacent to it, otherwise the
//     lexicographically smallest neighbor one step closer to the target.
//
// Solve searches ordered cut sequences depth-first, trying candidate cuts in
// "Gateway-node" order and memoising every (remaining links, virus position)
// pair. The first successful sequence is returned, so results are
// deterministic.
//
// Errors:
//
//   - ErrNoCutSequence when every sequence lets the virus onto a gateway.
package gateway
