package bn254

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/f3rmion/blsdkg/group"
)

// ErrInvalidEncoding is returned when a scalar or point encoding has the
// wrong length, is not canonical, or does not decode to a G2 subgroup point.
var ErrInvalidEncoding = errors.New("bn254: invalid encoding")

// g2Gen is the fixed G2 generator, in Jacobian coordinates.
var g2Gen curve.G2Jac

func init() {
	_, g2Gen, _, _ = curve.Generators()
}

// Scalar represents an element of the BN254 scalar field Fr.
// It implements [group.Scalar] by wrapping gnark-crypto's fr.Element,
// which keeps the value reduced modulo r in Montgomery form.
type Scalar struct {
	inner fr.Element
}

// Add sets s to a + b (mod r) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b (mod r) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Sub(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Mul sets s to a * b (mod r) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Mul(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Negate sets s to -a (mod r) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Neg(&a.(*Scalar).inner)
	return s
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// SetUint64 sets s to v and returns s.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	s.inner.SetUint64(v)
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// SetBytes sets s from a 32-byte big-endian encoding and returns s.
// Encodings of values >= r are rejected rather than reduced.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != fr.Bytes {
		return nil, fmt.Errorf("%w: scalar length %d", ErrInvalidEncoding, len(data))
	}
	if err := s.inner.SetBytesCanonical(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return s, nil
}

// Equal reports whether s and b represent the same field element.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equal(&b.(*Scalar).inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Zeroize overwrites s with zero.
func (s *Scalar) Zeroize() {
	s.inner.SetZero()
}

// bigInt returns s in regular (non-Montgomery) form. Callers holding secret
// scalars should pass the result to wipe when done.
func (s *Scalar) bigInt() *big.Int {
	return s.inner.BigInt(new(big.Int))
}

func wipe(b *big.Int) {
	words := b.Bits()
	for i := range words {
		words[i] = 0
	}
	b.SetInt64(0)
}

// Point represents an element of the BN254 G2 subgroup.
// It implements [group.Point] by wrapping gnark-crypto's G2Jac.
//
// Points are kept in Jacobian coordinates (X, Y, Z) over Fp2; the
// identity element has Z = 0.
type Point struct {
	inner curve.G2Jac
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	var sum curve.G2Jac
	sum.Set(&a.(*Point).inner)
	sum.AddAssign(&b.(*Point).inner)
	p.inner.Set(&sum)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	var diff curve.G2Jac
	diff.Set(&a.(*Point).inner)
	diff.SubAssign(&b.(*Point).inner)
	p.inner.Set(&diff)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	k := s.(*Scalar).bigInt()
	defer wipe(k)
	var res curve.G2Jac
	res.ScalarMultiplication(&q.(*Point).inner, k)
	p.inner.Set(&res)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Bytes returns the 64-byte compressed encoding of p.
func (p *Point) Bytes() []byte {
	var aff curve.G2Affine
	aff.FromJacobian(&p.inner)
	b := aff.Bytes()
	return b[:]
}

// SetBytes sets p from a compressed G2 encoding and returns p.
// Returns an error if the data is not a point of the prime-order subgroup.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != curve.SizeOfG2AffineCompressed {
		return nil, fmt.Errorf("%w: point length %d", ErrInvalidEncoding, len(data))
	}
	var aff curve.G2Affine
	if _, err := aff.SetBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	p.inner.FromAffine(&aff)
	return p, nil
}

// Equal reports whether p and b represent the same group element.
func (p *Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*Point).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

// G2 implements [group.Group] with scalars in Fr and points in the G2
// subgroup of BN254 (alt_bn128). Verification vectors built over G2 are
// the commitments consumed by BLS public-key reconstruction.
type G2 struct{}

// NewG2 returns the BN254 G2 group.
func NewG2() *G2 {
	return &G2{}
}

// NewScalar returns a new scalar initialized to zero.
func (g *G2) NewScalar() group.Scalar {
	return &Scalar{}
}

// NewPoint returns a new point initialized to the identity element.
func (g *G2) NewPoint() group.Point {
	var p Point
	p.inner.X.SetOne()
	p.inner.Y.SetOne()
	p.inner.Z.SetZero()
	return &p
}

// Generator returns the standard G2 generator of BN254.
func (g *G2) Generator() group.Point {
	var p Point
	p.inner.Set(&g2Gen)
	return &p
}

// RandomScalar reads 64 bytes from r and reduces them modulo r, which
// yields a scalar whose distribution is statistically indistinguishable
// from uniform over Fr.
func (g *G2) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [2 * fr.Bytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	k := new(big.Int).SetBytes(buf[:])
	s := &Scalar{}
	s.inner.SetBigInt(k)
	wipe(k)
	for i := range buf {
		buf[i] = 0
	}
	return s, nil
}

// ScalarSize returns the encoded scalar length, 32 bytes.
func (g *G2) ScalarSize() int {
	return fr.Bytes
}

// PointSize returns the compressed G2 point length, 64 bytes.
func (g *G2) PointSize() int {
	return curve.SizeOfG2AffineCompressed
}
