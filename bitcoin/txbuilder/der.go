// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/BoostyLabs/txcore/bitcoin"
)

// RawSignatureLen defines length of raw r|s signature.
const RawSignatureLen = 64

// DERSignature converts raw r|s signature into strict DER encoding.
// NOTE: s is normalised to the lower half of the curve order.
func DERSignature(raw []byte) ([]byte, error) {
	if len(raw) != RawSignatureLen {
		return nil, fmt.Errorf("%w: %d", bitcoin.ErrInvalidSignatureLength, len(raw))
	}

	var r, s btcec.ModNScalar
	if overflow := r.SetByteSlice(raw[:32]); overflow || r.IsZero() {
		return nil, fmt.Errorf("%w: r is out of range", bitcoin.ErrDEREncodingFailed)
	}
	if overflow := s.SetByteSlice(raw[32:]); overflow || s.IsZero() {
		return nil, fmt.Errorf("%w: s is out of range", bitcoin.ErrDEREncodingFailed)
	}

	return ecdsa.NewSignature(&r, &s).Serialize(), nil
}
