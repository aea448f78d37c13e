package dkg

import (
	"github.com/f3rmion/blsdkg/group"
)

// Shares holds one secret share per participant; Shares[i] belongs to
// participant index i and is the polynomial evaluated at i+1.
type Shares []group.Scalar

// Zeroize overwrites every share in place.
func (s Shares) Zeroize() {
	for _, v := range s {
		if v != nil {
			v.Zeroize()
		}
	}
}

// SecretKeyContribution derives the n participant shares of p.
func (e *Engine) SecretKeyContribution(p Polynomial) (Shares, error) {
	shares := make(Shares, e.total)
	for i := 0; i < e.total; i++ {
		v, err := e.PolynomialValue(p, uint64(i)+1)
		if err != nil {
			shares.Zeroize()
			return nil, err
		}
		shares[i] = v
	}
	return shares, nil
}

// SecretKeyShareCreate derives the dealer's combined secret contribution,
// p evaluated at [ContributionPoint]. A zero result is rejected with
// ErrZeroSecretKeyShare; the caller must then discard p and sample again.
func (e *Engine) SecretKeyShareCreate(p Polynomial) (group.Scalar, error) {
	v, err := e.PolynomialValue(p, ContributionPoint)
	if err != nil {
		return nil, err
	}
	if v.IsZero() {
		return nil, ErrZeroSecretKeyShare
	}
	return v, nil
}
