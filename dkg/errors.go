package dkg

import "errors"

var (
	// ErrInvalidThreshold indicates that the parameters do not satisfy 1 <= t <= n.
	ErrInvalidThreshold = errors.New("invalid threshold")

	// ErrNilGroup indicates that an engine was requested without a group.
	ErrNilGroup = errors.New("nil group")

	// ErrInvalidPolynomialDegree indicates a polynomial that does not have exactly t
	// coefficients or whose leading coefficient is zero.
	ErrInvalidPolynomialDegree = errors.New("polynomial leading coefficient is zero or length is not t")

	// ErrZeroSecretKeyShare indicates that the combined secret derived from a polynomial
	// is zero. The polynomial must be discarded and a new one sampled.
	ErrZeroSecretKeyShare = errors.New("secret key share is zero")

	// ErrBadRandomness indicates a randomness source that kept producing a zero
	// leading coefficient. A healthy source essentially never does.
	ErrBadRandomness = errors.New("randomness source returned zero leading coefficient too often")

	// ErrIndexOutOfRange indicates a participant index outside [0, n).
	ErrIndexOutOfRange = errors.New("participant index out of range")

	// ErrInvalidVerificationVector indicates a verification vector that does not hold
	// exactly t group elements.
	ErrInvalidVerificationVector = errors.New("invalid verification vector")

	// ErrInvalidShare indicates a share that is not consistent with the verification vector.
	ErrInvalidShare = errors.New("share does not match verification vector")
)
