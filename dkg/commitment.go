package dkg

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/f3rmion/blsdkg/group"
)

// VerificationVector is the public Feldman commitment to a polynomial:
// element j is coefficient j times the group generator.
type VerificationVector []group.Point

// VerificationVector commits to every coefficient of p. The degree is not
// checked here; p is expected to come from GeneratePolynomial.
func (e *Engine) VerificationVector(p Polynomial) VerificationVector {
	gen := e.group.Generator()
	vv := make(VerificationVector, len(p))
	for j, c := range p {
		vv[j] = e.group.NewPoint().ScalarMult(c, gen)
	}
	return vv
}

// Verification reports whether share is the value participant index must
// have received from the dealer that published vv. A false result is the
// normal signal of a bad share or a bad commitment. An index outside
// [0, n) or a vector without exactly t elements never verifies.
func (e *Engine) Verification(index int, share group.Scalar, vv VerificationVector) bool {
	return e.CheckShare(index, share, vv) == nil
}

// CheckShare is Verification reporting why a share was rejected:
// ErrIndexOutOfRange, ErrInvalidVerificationVector or ErrInvalidShare.
func (e *Engine) CheckShare(index int, share group.Scalar, vv VerificationVector) error {
	if index < 0 || index >= e.total {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, e.total)
	}
	if len(vv) != e.threshold {
		return fmt.Errorf("%w: %d elements, want %d", ErrInvalidVerificationVector, len(vv), e.threshold)
	}
	for _, c := range vv {
		if c == nil {
			return ErrInvalidVerificationVector
		}
	}
	if share == nil {
		return ErrInvalidShare
	}

	// Evaluate the committed polynomial at index+1 in the exponent.
	x := e.scalarFromInt(uint64(index) + 1)
	acc := e.group.NewPoint().Set(vv[len(vv)-1])
	for j := len(vv) - 2; j >= 0; j-- {
		acc = acc.ScalarMult(x, acc)
		acc = acc.Add(acc, vv[j])
	}

	lhs := e.group.NewPoint().ScalarMult(share, e.group.Generator())
	if !lhs.Equal(acc) {
		return ErrInvalidShare
	}
	return nil
}

// VerifyAll checks every share of a full share vector against vv
// concurrently. It returns the first failure, wrapped with the index of
// the participant whose share was rejected.
func (e *Engine) VerifyAll(ctx context.Context, shares Shares, vv VerificationVector) error {
	if len(shares) != e.total {
		return fmt.Errorf("%w: %d shares for %d participants", ErrIndexOutOfRange, len(shares), e.total)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, s := range shares {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := e.CheckShare(i, s, vv); err != nil {
				return fmt.Errorf("participant %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
