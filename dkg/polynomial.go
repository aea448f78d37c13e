package dkg

import (
	"fmt"
	"io"

	"github.com/f3rmion/blsdkg/group"
)

// MaxLeadingResamples bounds how many times GeneratePolynomial redraws a zero
// leading coefficient before blaming the randomness source.
const MaxLeadingResamples = 128

// Polynomial is a secret polynomial over the scalar field, represented by
// its t coefficients. The constant term is at index 0 and the leading
// coefficient at index t-1.
type Polynomial []group.Scalar

// Zeroize overwrites every coefficient in place.
func (p Polynomial) Zeroize() {
	for _, c := range p {
		if c != nil {
			c.Zeroize()
		}
	}
}

// GeneratePolynomial samples a uniformly random polynomial of degree
// exactly t-1, reading randomness from r. Only the leading coefficient is
// resampled when it comes out zero, which leaves the lower coefficients
// uniform. Errors come from r itself, or ErrBadRandomness when r yields a
// zero leading coefficient MaxLeadingResamples times in a row.
func (e *Engine) GeneratePolynomial(r io.Reader) (Polynomial, error) {
	coeffs := make(Polynomial, e.threshold)
	for i := 0; i < e.threshold; i++ {
		c, err := e.group.RandomScalar(r)
		if err != nil {
			coeffs.Zeroize()
			return nil, err
		}
		coeffs[i] = c
	}

	for attempt := 0; coeffs[e.threshold-1].IsZero(); attempt++ {
		if attempt == MaxLeadingResamples {
			coeffs.Zeroize()
			return nil, fmt.Errorf("%w: %d resamples", ErrBadRandomness, MaxLeadingResamples)
		}
		c, err := e.group.RandomScalar(r)
		if err != nil {
			coeffs.Zeroize()
			return nil, err
		}
		coeffs[e.threshold-1] = c
	}

	return coeffs, nil
}

// WithPolynomial samples a polynomial, passes it to fn, and zeroizes it once
// fn returns, whether fn succeeds, fails or panics. fn must not retain the
// polynomial or any of its coefficients.
func (e *Engine) WithPolynomial(r io.Reader, fn func(Polynomial) error) error {
	p, err := e.GeneratePolynomial(r)
	if err != nil {
		return err
	}
	defer p.Zeroize()

	return fn(p)
}

// PolynomialValue evaluates p at point using Horner's method. The degree is
// checked on every call, not only at sampling time: p must have exactly t
// coefficients and a nonzero leading coefficient.
func (e *Engine) PolynomialValue(p Polynomial, point uint64) (group.Scalar, error) {
	if err := e.checkDegree(p); err != nil {
		return nil, err
	}

	x := e.scalarFromInt(point)
	result := e.group.NewScalar().Set(p[len(p)-1])
	for i := len(p) - 2; i >= 0; i-- {
		result = result.Mul(result, x)
		result = result.Add(result, p[i])
	}
	return result, nil
}

func (e *Engine) checkDegree(p Polynomial) error {
	if len(p) != e.threshold {
		return ErrInvalidPolynomialDegree
	}
	for _, c := range p {
		if c == nil {
			return ErrInvalidPolynomialDegree
		}
	}
	if p[len(p)-1].IsZero() {
		return ErrInvalidPolynomialDegree
	}
	return nil
}
