package bn254

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"

	"github.com/f3rmion/blsdkg/dkg"
)

// spoilCoord flips one random bit of c.
func spoilCoord(prng *mrand.Rand, c *fp.Element) {
	var v big.Int
	c.BigInt(&v)
	bit := prng.Intn(fp.Bits)
	v.SetBit(&v, bit, v.Bit(bit)^1)
	c.SetBigInt(&v)
}

// spoilVerificationVector returns a copy of vv with a single Jacobian
// coordinate of one element altered.
func spoilVerificationVector(prng *mrand.Rand, vv dkg.VerificationVector) dkg.VerificationVector {
	bad := make(dkg.VerificationVector, len(vv))
	for i, c := range vv {
		bad[i] = (&Point{}).Set(c)
	}

	p := bad[prng.Intn(len(bad))].(*Point)
	coords := []*fp.Element{
		&p.inner.X.A0, &p.inner.X.A1,
		&p.inner.Y.A0, &p.inner.Y.A1,
		&p.inner.Z.A0, &p.inner.Z.A1,
	}
	spoilCoord(prng, coords[prng.Intn(len(coords))])
	return bad
}

func TestVerificationTamper(t *testing.T) {
	g := NewG2()
	prng := mrand.New(mrand.NewSource(7))

	for trial := 0; trial < 10; trial++ {
		n := prng.Intn(16) + 1
		threshold := prng.Intn(n) + 1
		e, err := dkg.New(g, threshold, n)
		if err != nil {
			t.Fatal(err)
		}
		if e.N() != n || e.T() != threshold {
			t.Fatalf("accessors do not match Dkg(%d, %d)", threshold, n)
		}

		p, err := e.GeneratePolynomial(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		shares, err := e.SecretKeyContribution(p)
		if err != nil {
			t.Fatal(err)
		}
		vv := e.VerificationVector(p)

		for i := 0; i < n; i++ {
			if !e.Verification(i, shares[i], vv) {
				t.Fatalf("Dkg(%d, %d): share %d rejected", threshold, n, i)
			}
			if e.Verification(i, shares[i], spoilVerificationVector(prng, vv)) {
				t.Fatalf("Dkg(%d, %d): share %d accepted against a tampered vector", threshold, n, i)
			}
		}
	}
}
