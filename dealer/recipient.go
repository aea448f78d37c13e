package dealer

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/f3rmion/blsdkg/dkg"
	"github.com/f3rmion/blsdkg/group"
)

var (
	// ErrMalformedMessage indicates a nil broadcast, share or share value.
	ErrMalformedMessage = errors.New("malformed message")

	// ErrWrongRecipient indicates a share addressed to another participant.
	ErrWrongRecipient = errors.New("share addressed to another participant")

	// ErrDealerMismatch indicates a share and broadcast from different dealers.
	ErrDealerMismatch = errors.New("share and broadcast from different dealers")

	// ErrDuplicateDeal indicates a second share from a dealer whose share
	// was already accepted.
	ErrDuplicateDeal = errors.New("duplicate share from dealer")
)

// RejectionError reports a share that failed verification against its
// dealer's verification vector. It is the expected outcome for a faulty
// or malicious dealer, not a local failure.
type RejectionError struct {
	DealerID    int
	RecipientID int
	Err         error
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("share from dealer %d to participant %d rejected: %v", e.DealerID, e.RecipientID, e.Err)
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}

// Recipient checks and collects the shares dealt to one participant.
// Create instances using [NewRecipient]. A Recipient is safe for
// concurrent use.
type Recipient struct {
	mu       sync.Mutex
	id       int
	engine   *dkg.Engine
	log      *zap.Logger
	accepted map[int]acceptedShare
}

// acceptedShare is a verified share together with the verification vector
// it was checked against. vv[0] is the dealer's public contribution.
type acceptedShare struct {
	share group.Scalar
	vv    dkg.VerificationVector
}

// NewRecipient creates a recipient for participant id (1 to n).
func NewRecipient(g group.Group, threshold, total, id int, opts ...Option) (*Recipient, error) {
	engine, err := dkg.New(g, threshold, total)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	if id < 1 || id > total {
		return nil, fmt.Errorf("%w: participant ID must be between 1 and %d, got %d", ErrInvalidID, total, id)
	}

	o := buildOptions(opts)
	return &Recipient{
		id:       id,
		engine:   engine,
		log:      o.logger.With(zap.Int("participant", id)),
		accepted: make(map[int]acceptedShare),
	}, nil
}

// ID returns this participant's identifier.
func (r *Recipient) ID() int {
	return r.id
}

// Receive verifies share against the dealer's broadcast and, if it is
// consistent, stores a copy of it together with the verification vector.
// A share inconsistent with the
// verification vector yields a *RejectionError.
func (r *Recipient) Receive(b *Broadcast, share *PrivateShare) error {
	if b == nil || share == nil || share.Share == nil {
		return ErrMalformedMessage
	}
	if share.RecipientID != r.id {
		return fmt.Errorf("%w: got %d, want %d", ErrWrongRecipient, share.RecipientID, r.id)
	}
	if share.DealerID != b.DealerID {
		return fmt.Errorf("%w: share from %d, broadcast from %d", ErrDealerMismatch, share.DealerID, b.DealerID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accepted[share.DealerID]; ok {
		return fmt.Errorf("%w %d", ErrDuplicateDeal, share.DealerID)
	}

	if err := r.engine.CheckShare(r.id-1, share.Share, b.VerificationVector); err != nil {
		r.log.Warn("rejected share", zap.Int("dealer", share.DealerID), zap.Error(err))
		return &RejectionError{
			DealerID:    share.DealerID,
			RecipientID: r.id,
			Err:         err,
		}
	}

	r.accepted[share.DealerID] = acceptedShare{
		share: r.engine.Group().NewScalar().Set(share.Share),
		vv:    r.copyVector(b.VerificationVector),
	}
	r.log.Debug("accepted share", zap.Int("dealer", share.DealerID))
	return nil
}

// Accepted returns copies of the verified shares, keyed by dealer ID.
func (r *Recipient) Accepted() map[int]group.Scalar {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[int]group.Scalar, len(r.accepted))
	for id, a := range r.accepted {
		out[id] = r.engine.Group().NewScalar().Set(a.share)
	}
	return out
}

// VerificationVectors returns copies of the verification vectors the
// accepted shares were checked against, keyed by dealer ID. Element 0 of
// each is that dealer's public contribution to the group public key.
func (r *Recipient) VerificationVectors() map[int]dkg.VerificationVector {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[int]dkg.VerificationVector, len(r.accepted))
	for id, a := range r.accepted {
		out[id] = r.copyVector(a.vv)
	}
	return out
}

func (r *Recipient) copyVector(vv dkg.VerificationVector) dkg.VerificationVector {
	out := make(dkg.VerificationVector, len(vv))
	for i, p := range vv {
		out[i] = r.engine.Group().NewPoint().Set(p)
	}
	return out
}

// Zeroize erases every stored share and forgets the dealers they came from.
func (r *Recipient) Zeroize() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, a := range r.accepted {
		a.share.Zeroize()
		delete(r.accepted, id)
	}
}
