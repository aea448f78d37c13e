package dkg

import (
	"fmt"

	"github.com/f3rmion/blsdkg/group"
)

// ContributionPoint is the evaluation point of the dealer's combined secret
// contribution. Participant i (0-indexed) receives the evaluation at i+1, so
// no participant is ever handed the constant term f(0).
const ContributionPoint = 1

// Engine holds the group and threshold parameters of one sharing scheme.
// It carries no other state: every method is a pure function of its
// arguments, so an Engine may be used from any number of goroutines.
type Engine struct {
	group     group.Group
	threshold int // t - shares needed to reconstruct
	total     int // n - total participants
}

// New creates an Engine with the given group and threshold parameters.
// threshold is the number of shares required to reconstruct (t).
// total is the number of participants (n).
func New(g group.Group, threshold, total int) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	if threshold < 1 || total < threshold {
		return nil, fmt.Errorf("%w: t=%d n=%d", ErrInvalidThreshold, threshold, total)
	}

	return &Engine{
		group:     g,
		threshold: threshold,
		total:     total,
	}, nil
}

// T returns the threshold.
func (e *Engine) T() int {
	return e.threshold
}

// N returns the number of participants.
func (e *Engine) N() int {
	return e.total
}

// Group returns the group the engine computes in.
func (e *Engine) Group() group.Group {
	return e.group
}

func (e *Engine) scalarFromInt(n uint64) group.Scalar {
	return e.group.NewScalar().SetUint64(n)
}
