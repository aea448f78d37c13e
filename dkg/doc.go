// Package dkg implements the dealer and verifier side of Feldman verifiable
// secret sharing, used to bootstrap threshold BLS key material.
//
// An [Engine] is parameterized by a threshold t and a participant count n.
// A dealer uses it to:
//
//  1. Sample a secret polynomial of degree exactly t-1 with
//     [Engine.GeneratePolynomial] (or [Engine.WithPolynomial], which erases
//     the polynomial when done).
//  2. Derive one secret share per participant with
//     [Engine.SecretKeyContribution]; participant i receives f(i+1).
//  3. Publish the verification vector from [Engine.VerificationVector].
//
// Each recipient then checks its share with [Engine.Verification], which
// evaluates the committed polynomial in the group with Horner's method and
// compares the result against share*G.
//
// # Example
//
//	engine, _ := dkg.New(bn254.NewG2(), 2, 3)
//	err := engine.WithPolynomial(rand.Reader, func(p dkg.Polynomial) error {
//	    shares, err := engine.SecretKeyContribution(p)
//	    if err != nil {
//	        return err
//	    }
//	    vv := engine.VerificationVector(p)
//	    ok := engine.Verification(0, shares[0], vv) // true
//	    ...
//	})
//
// # Security Considerations
//
// The polynomial and the shares are secret. Zeroize them once the shares
// have been handed out. The randomness source passed to GeneratePolynomial
// must be cryptographically secure outside of tests.
//
// Combining verified shares into key shares, reconstructing group public
// keys and BLS signing are left to the callers of this package.
package dkg
