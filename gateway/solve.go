package gateway

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Solve parses lines with ParseNetwork and returns the first cut sequence
// that isolates the virus. An empty, non-nil slice means the virus already
// cannot reach a gateway.
func Solve(lines []string, opts ...Option) ([]Cut, error) {
	return ParseNetwork(lines).Solve(opts...)
}

// Solve returns the first cut sequence, in candidate order, that keeps the
// virus from ever stepping onto a gateway. ErrNoCutSequence otherwise, or
// the context's error if the search was cancelled.
func (n *Network) Solve(opts ...Option) ([]Cut, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &solver{
		ctx:  o.Ctx,
		log:  o.Logger.WithField("start", o.Start),
		memo: make(map[string][]Cut),
		dead: mapset.New[string](),
	}
	cuts, ok, err := s.search(n, o.Start)
	fields := logrus.Fields{"positions": len(s.memo) + s.dead.Size(), "attempts": s.attempts}
	if err != nil {
		s.log.WithFields(fields).WithError(err).Debug("gateway: search aborted")
		return nil, err
	}
	if !ok {
		s.log.WithFields(fields).Debug("gateway: no cut sequence")
		return nil, ErrNoCutSequence
	}
	s.log.WithFields(fields).WithField("cuts", len(cuts)).Debug("gateway: virus isolated")

	return cuts, nil
}

// solver carries the memo tables of one Solve call.
type solver struct {
	ctx      context.Context
	log      logrus.FieldLogger
	memo     map[string][]Cut
	dead     mapset.Set[string]
	attempts int
}

// search tries each candidate cut against the current network. A cut is
// judged in place through a filtered walk; the network is copied only when
// the virus moves on and the search recurses.
func (s *solver) search(n *Network, virus string) ([]Cut, bool, error) {
	key := n.key(virus)
	if cuts, ok := s.memo[key]; ok {
		return cuts, true, nil
	}
	if s.dead.Has(key) {
		return nil, false, nil
	}
	_, _, ok, err := n.target(s.ctx, virus, nil)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return s.remember(key, []Cut{}), true, nil
	}

	for _, c := range n.Cuts() {
		s.attempts++
		s.log.WithFields(logrus.Fields{"virus": virus, "cut": c.String()}).Debug("gateway: try cut")

		step, ok, err := n.step(s.ctx, virus, &c)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			// No gateway left in reach, or the virus is stuck.
			return s.remember(key, []Cut{c}), true, nil
		}
		if IsGateway(step) {
			continue
		}

		next, err := n.Without(c)
		if err != nil {
			return nil, false, err
		}
		rest, ok, err := s.search(next, step)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return s.remember(key, append([]Cut{c}, rest...)), true, nil
		}
	}
	s.dead.Put(key)

	return nil, false, nil
}

func (s *solver) remember(key string, cuts []Cut) []Cut {
	s.memo[key] = cuts

	return cuts
}
