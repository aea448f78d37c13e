// Package dealer provides a high-level API for one Feldman VSS dealing
// round. It wraps the primitives in the [dkg] package with an interface
// that handles resampling, secret erasure and share bookkeeping.
//
// The dealer package is designed for application developers who need to
// hand out and check shares without wiring every primitive themselves.
// For full control, use the [dkg] package directly.
//
// # Dealing
//
// A dealer samples a polynomial, derives its own combined contribution and
// one private share per participant, and publishes the verification vector:
//
//	d, err := dealer.New(group, threshold, total, myID, dealer.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	deal, err := d.Deal(rand.Reader)
//	if err != nil {
//		return err
//	}
//	defer deal.Zeroize()
//
//	// Broadcast deal.Broadcast to all participants
//	// Send deal.PrivateShares[id] to each participant over a secure channel
//
// The polynomial never leaves Deal: it is erased before Deal returns, on
// success and on failure. If the contribution comes out zero the
// polynomial is discarded and a fresh one sampled.
//
// # Receiving
//
// Each participant checks the shares sent to it:
//
//	r, err := dealer.NewRecipient(group, threshold, total, myID)
//	err = r.Receive(broadcast, share)
//	var rej *dealer.RejectionError
//	if errors.As(err, &rej) {
//		// report rej.DealerID as faulty
//	}
//
// A [RejectionError] is the protocol-level signal that a dealer's share
// and commitment disagree. Deciding what to do about it (complaints,
// disqualification) is left to the orchestration layer.
//
// # Transport Agnostic
//
// This package does not handle network communication. See the wire
// package for encodings of [Broadcast] and [PrivateShare].
package dealer
