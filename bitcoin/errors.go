// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"errors"
)

var (
	// ErrInvalidAddress defines that address string failed to decode.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrUnsupportedAddressVersion defines that address decoded, but its version is not supported.
	ErrUnsupportedAddressVersion = errors.New("unsupported address version")
	// ErrSignatureCountMismatch defines that number of signatures differs from number of inputs.
	ErrSignatureCountMismatch = errors.New("signatures count does not match inputs count")
	// ErrInvalidSignatureLength defines that raw signature is not 64 bytes long.
	ErrInvalidSignatureLength = errors.New("invalid raw signature length")
	// ErrDEREncodingFailed defines that raw signature could not be converted to DER.
	ErrDEREncodingFailed = errors.New("der encoding failed")
	// ErrEmptyUTXOSet defines that there are no unspent outputs to spend.
	ErrEmptyUTXOSet = errors.New("empty utxo set")
	// ErrInsufficientFunds defines that computed change would be negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidUTXO defines that unspent output data is malformed.
	ErrInvalidUTXO = errors.New("invalid utxo")
	// ErrInvalidPublicKey defines that public key bytes failed to parse.
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrSignatureVerification defines that signature does not match digest and public key.
	ErrSignatureVerification = errors.New("signature verification failed")
)
