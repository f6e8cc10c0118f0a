// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package signer

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/BoostyLabs/txcore/bitcoin"
	"github.com/BoostyLabs/txcore/bitcoin/txbuilder"
)

// ErrForeignPSBT defines that psbt was built for another public key.
var ErrForeignPSBT = errors.New("psbt public key does not match signer key")

// Signer produces raw r|s signatures of digests, one per digest in the same order.
// Implementations may be backed by hardware wallets or remote key services.
type Signer interface {
	SignDigests(ctx context.Context, digests []chainhash.Hash) ([][]byte, error)
}

// KeySigner signs digests with in memory private key.
type KeySigner struct {
	privateKey *btcec.PrivateKey
}

// ensures that KeySigner implements Signer.
var _ Signer = (*KeySigner)(nil)

// NewKeySigner is a constructor for KeySigner.
func NewKeySigner(privateKey *btcec.PrivateKey) *KeySigner {
	return &KeySigner{
		privateKey: privateKey,
	}
}

// PublicKey returns compressed public key of the signer.
func (signer *KeySigner) PublicKey() []byte {
	return signer.privateKey.PubKey().SerializeCompressed()
}

// SignDigests signs every digest, returns raw 64 bytes signatures.
func (signer *KeySigner) SignDigests(ctx context.Context, digests []chainhash.Hash) ([][]byte, error) {
	signatures := make([][]byte, len(digests))
	for i := range digests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// compact signature is recovery byte followed by r|s.
		compact := ecdsa.SignCompact(signer.privateKey, digests[i][:], true)
		signatures[i] = compact[1:]
	}

	return signatures, nil
}

// SignPSBT signs digests carried by signing psbt, stores partial signatures
// into the packet and returns updated serialized psbt with raw signatures.
func (signer *KeySigner) SignPSBT(ctx context.Context, serializedPSBT []byte) ([]byte, [][]byte, error) {
	digests, publicKey, err := txbuilder.ExtractDigestsFromPSBT(serializedPSBT)
	if err != nil {
		return nil, nil, err
	}
	if !bytes.Equal(publicKey, signer.PublicKey()) {
		return nil, nil, ErrForeignPSBT
	}

	signatures, err := signer.SignDigests(ctx, digests)
	if err != nil {
		return nil, nil, err
	}

	packet, err := psbt.NewFromRawBytes(bytes.NewBuffer(serializedPSBT), false)
	if err != nil {
		return nil, nil, err
	}

	for i := range packet.Inputs {
		der, err := txbuilder.DERSignature(signatures[i])
		if err != nil {
			return nil, nil, err
		}

		packet.Inputs[i].PartialSigs = []*psbt.PartialSig{{
			PubKey:    publicKey,
			Signature: append(der, byte(txbuilder.SigHashAllForkID)),
		}}
	}

	w := bytes.NewBuffer(nil)
	if err = packet.Serialize(w); err != nil {
		return nil, nil, err
	}

	return w.Bytes(), signatures, nil
}

// VerifySignatures checks that every raw signature signs digest with the same index by public key.
func VerifySignatures(digests []chainhash.Hash, signatures [][]byte, publicKey []byte) error {
	if len(digests) != len(signatures) {
		return fmt.Errorf("%w: %d signatures for %d digests", bitcoin.ErrSignatureCountMismatch, len(signatures), len(digests))
	}

	pubKey, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return errors.Join(bitcoin.ErrInvalidPublicKey, err)
	}

	for i, signature := range signatures {
		if len(signature) != txbuilder.RawSignatureLen {
			return fmt.Errorf("%w: signature %d has %d bytes", bitcoin.ErrInvalidSignatureLength, i, len(signature))
		}

		var r, s btcec.ModNScalar
		r.SetByteSlice(signature[:32])
		s.SetByteSlice(signature[32:])
		if !ecdsa.NewSignature(&r, &s).Verify(digests[i][:], pubKey) {
			return fmt.Errorf("%w: input %d", bitcoin.ErrSignatureVerification, i)
		}
	}

	return nil
}
