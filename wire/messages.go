package wire

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/f3rmion/blsdkg/dealer"
	"github.com/f3rmion/blsdkg/dkg"
	"github.com/f3rmion/blsdkg/group"
)

// ErrInvalidMessage indicates a decoded message whose fields do not hold
// valid scalars or points.
var ErrInvalidMessage = errors.New("invalid message")

// BroadcastMessage is the encoded form of a dealer.Broadcast. Points are
// hex-encoded compressed group elements.
type BroadcastMessage struct {
	DealerID           int      `json:"dealer_id" cbor:"dealer_id" msgpack:"dealer_id" yaml:"dealer_id"`
	VerificationVector []string `json:"verification_vector" cbor:"verification_vector" msgpack:"verification_vector" yaml:"verification_vector"`
}

// PrivateShareMessage is the encoded form of a dealer.PrivateShare. The
// share is a hex-encoded canonical scalar and is secret.
type PrivateShareMessage struct {
	DealerID    int    `json:"dealer_id" cbor:"dealer_id" msgpack:"dealer_id" yaml:"dealer_id"`
	RecipientID int    `json:"recipient_id" cbor:"recipient_id" msgpack:"recipient_id" yaml:"recipient_id"`
	Share       string `json:"share" cbor:"share" msgpack:"share" yaml:"share"`
}

// EncodeBroadcast serializes b.
func (c *Codec) EncodeBroadcast(b *dealer.Broadcast) ([]byte, error) {
	msg := BroadcastMessage{
		DealerID:           b.DealerID,
		VerificationVector: make([]string, len(b.VerificationVector)),
	}
	for i, p := range b.VerificationVector {
		msg.VerificationVector[i] = hex.EncodeToString(p.Bytes())
	}
	return c.Marshal(&msg)
}

// DecodeBroadcast deserializes a broadcast whose points belong to g.
func (c *Codec) DecodeBroadcast(g group.Group, data []byte) (*dealer.Broadcast, error) {
	var msg BroadcastMessage
	if err := c.Unmarshal(data, &msg); err != nil {
		return nil, err
	}

	vv := make(dkg.VerificationVector, len(msg.VerificationVector))
	for i, s := range msg.VerificationVector {
		raw, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: commitment %d: %v", ErrInvalidMessage, i, err)
		}
		p, err := g.NewPoint().SetBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: commitment %d: %v", ErrInvalidMessage, i, err)
		}
		vv[i] = p
	}

	return &dealer.Broadcast{
		DealerID:           msg.DealerID,
		VerificationVector: vv,
	}, nil
}

// EncodePrivateShare serializes s. The output contains secret material.
func (c *Codec) EncodePrivateShare(s *dealer.PrivateShare) ([]byte, error) {
	msg := PrivateShareMessage{
		DealerID:    s.DealerID,
		RecipientID: s.RecipientID,
		Share:       hex.EncodeToString(s.Share.Bytes()),
	}
	return c.Marshal(&msg)
}

// DecodePrivateShare deserializes a private share whose value belongs to g.
func (c *Codec) DecodePrivateShare(g group.Group, data []byte) (*dealer.PrivateShare, error) {
	var msg PrivateShareMessage
	if err := c.Unmarshal(data, &msg); err != nil {
		return nil, err
	}

	raw, err := hex.DecodeString(msg.Share)
	if err != nil {
		return nil, fmt.Errorf("%w: share: %v", ErrInvalidMessage, err)
	}
	share, err := g.NewScalar().SetBytes(raw)
	for i := range raw {
		raw[i] = 0
	}
	if err != nil {
		return nil, fmt.Errorf("%w: share: %v", ErrInvalidMessage, err)
	}

	return &dealer.PrivateShare{
		DealerID:    msg.DealerID,
		RecipientID: msg.RecipientID,
		Share:       share,
	}, nil
}
