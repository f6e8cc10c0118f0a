// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"errors"
)

// ErrUnknownInputsHelpingKey defines that inputs help keys is unknown.
var ErrUnknownInputsHelpingKey = errors.New("unknown inputs help keys")

// InputsHelpingKey defines type for additional data in PSBT Unknowns fields
// carried to external signers.
type InputsHelpingKey byte

const (
	// SighashDigestHelpingKey defines per input key holding the digest to sign.
	SighashDigestHelpingKey InputsHelpingKey = 0x40
	// PublicKeyHelpingKey defines global key holding the wallet public key.
	PublicKeyHelpingKey InputsHelpingKey = 0x41
)

// InputsHelpingKeyFromBytes parses bytes array into InputsHelpingKey if any.
func InputsHelpingKeyFromBytes(b []byte) (InputsHelpingKey, error) {
	if len(b) != 1 {
		return 0, ErrUnknownInputsHelpingKey
	}

	switch b[0] {
	case SighashDigestHelpingKey.Byte():
		return SighashDigestHelpingKey, nil
	case PublicKeyHelpingKey.Byte():
		return PublicKeyHelpingKey, nil
	}

	return 0, ErrUnknownInputsHelpingKey
}

// Byte returns InputsHelpingKey as byte.
func (k InputsHelpingKey) Byte() byte {
	return byte(k)
}

// Bytes returns InputsHelpingKey as bytes array.
func (k InputsHelpingKey) Bytes() []byte {
	return []byte{byte(k)}
}
