package dealer

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/f3rmion/blsdkg/dkg"
	"github.com/f3rmion/blsdkg/group"
)

var (
	// ErrInvalidID indicates a participant ID outside [1, n].
	ErrInvalidID = errors.New("invalid participant ID")

	// ErrAlreadyDealt indicates a second call to Deal on the same Dealer.
	ErrAlreadyDealt = errors.New("dealer already dealt")

	// ErrTooManyAttempts indicates that every sampled polynomial produced a
	// zero contribution.
	ErrTooManyAttempts = errors.New("too many attempts")
)

// Broadcast is the public part of a deal, sent to every participant.
type Broadcast struct {
	DealerID           int
	VerificationVector dkg.VerificationVector
}

// PrivateShare is the secret share a dealer sends to one recipient.
type PrivateShare struct {
	DealerID    int
	RecipientID int
	Share       group.Scalar
}

// Deal is the output of one dealing round.
type Deal struct {
	// Broadcast must be sent to all participants.
	Broadcast *Broadcast

	// PrivateShares maps recipient ID (1..n) to its share, including the
	// dealer's own. Each share must go to its recipient over a secure,
	// authenticated channel.
	PrivateShares map[int]*PrivateShare

	// Contribution is the dealer's combined secret contribution, the
	// polynomial evaluated at dkg.ContributionPoint. Never zero.
	Contribution group.Scalar
}

// Zeroize erases the contribution and every private share.
func (d *Deal) Zeroize() {
	if d == nil {
		return
	}
	if d.Contribution != nil {
		d.Contribution.Zeroize()
	}
	for _, s := range d.PrivateShares {
		if s != nil && s.Share != nil {
			s.Share.Zeroize()
		}
	}
}

// Dealer runs a single dealing round. Create instances using [New].
type Dealer struct {
	mu     sync.Mutex
	id     int
	engine *dkg.Engine
	opts   options
	dealt  bool
}

// New creates a dealer.
//
// Parameters:
//   - g: The group to share in (e.g., bn254.NewG2())
//   - threshold: Number of shares needed to reconstruct (t)
//   - total: Total number of participants (n)
//   - id: This dealer's own participant identifier (1 to n)
func New(g group.Group, threshold, total, id int, opts ...Option) (*Dealer, error) {
	engine, err := dkg.New(g, threshold, total)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	if id < 1 || id > total {
		return nil, fmt.Errorf("%w: dealer ID must be between 1 and %d, got %d", ErrInvalidID, total, id)
	}

	return &Dealer{
		id:     id,
		engine: engine,
		opts:   buildOptions(opts),
	}, nil
}

// ID returns the dealer's participant identifier.
func (d *Dealer) ID() int {
	return d.id
}

// Engine returns the underlying engine for advanced use cases.
func (d *Dealer) Engine() *dkg.Engine {
	return d.engine
}

// Deal samples a polynomial from rng and derives the round's outputs.
// A Dealer deals once; a second call returns ErrAlreadyDealt.
func (d *Dealer) Deal(rng io.Reader) (*Deal, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.dealt {
		return nil, ErrAlreadyDealt
	}

	log := d.opts.logger.With(zap.Int("dealer", d.id))

	var lastErr error
	for attempt := 1; attempt <= d.opts.maxAttempts; attempt++ {
		deal, err := d.dealOnce(rng)
		if errors.Is(err, dkg.ErrZeroSecretKeyShare) {
			log.Warn("zero contribution, resampling polynomial", zap.Int("attempt", attempt))
			lastErr = err
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to deal: %w", err)
		}

		d.dealt = true
		log.Debug("dealt",
			zap.Int("threshold", d.engine.T()),
			zap.Int("participants", d.engine.N()),
			zap.Int("attempts", attempt),
		)
		return deal, nil
	}

	return nil, fmt.Errorf("%w (%d): %w", ErrTooManyAttempts, d.opts.maxAttempts, lastErr)
}

func (d *Dealer) dealOnce(rng io.Reader) (*Deal, error) {
	var deal *Deal
	err := d.engine.WithPolynomial(rng, func(p dkg.Polynomial) error {
		contribution, err := d.engine.SecretKeyShareCreate(p)
		if err != nil {
			return err
		}

		// Both only read p.
		var (
			vv     dkg.VerificationVector
			shares dkg.Shares
			eg     errgroup.Group
		)
		eg.Go(func() error {
			vv = d.engine.VerificationVector(p)
			return nil
		})
		eg.Go(func() error {
			var err error
			shares, err = d.engine.SecretKeyContribution(p)
			return err
		})
		if err := eg.Wait(); err != nil {
			contribution.Zeroize()
			return err
		}

		private := make(map[int]*PrivateShare, len(shares))
		for i, s := range shares {
			private[i+1] = &PrivateShare{
				DealerID:    d.id,
				RecipientID: i + 1,
				Share:       s,
			}
		}

		deal = &Deal{
			Broadcast: &Broadcast{
				DealerID:           d.id,
				VerificationVector: vv,
			},
			PrivateShares: private,
			Contribution:  contribution,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deal, nil
}
