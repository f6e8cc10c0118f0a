// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/BoostyLabs/txcore/bitcoin"
)

// ErrMissingDigest defines that psbt input does not carry digest to sign.
var ErrMissingDigest = errors.New("psbt input has no digest")

// BuildSigningPSBT returns serialized psbt of unsigned transaction where every input
// carries its digest and the global map carries the wallet public key.
func BuildSigningPSBT(params SpendParams, publicKey []byte) ([]byte, error) {
	pubKey, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return nil, errors.Join(bitcoin.ErrInvalidPublicKey, err)
	}

	digests, err := BuildPreimages(params)
	if err != nil {
		return nil, err
	}

	tx, err := newUnsignedTx(params)
	if err != nil {
		return nil, err
	}

	packet, err := psbt.NewFromUnsignedTx(tx)
	if err != nil {
		return nil, err
	}

	inputBuilder, err := NewPSBTInputBuilder(params.ChangeScript)
	if err != nil {
		return nil, err
	}
	for i := range packet.Inputs {
		inputBuilder.PrepareInput(&packet.Inputs[i], params.UTXOs[i], digests[i])
	}

	packet.Unknowns = append(packet.Unknowns, &psbt.Unknown{
		Key:   PublicKeyHelpingKey.Bytes(),
		Value: pubKey.SerializeCompressed(),
	})

	var buff bytes.Buffer
	if err = packet.Serialize(&buff); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// ExtractDigestsFromPSBT returns digests to sign in input order and wallet public key
// from psbt built by BuildSigningPSBT.
func ExtractDigestsFromPSBT(data []byte) ([]chainhash.Hash, []byte, error) {
	p, err := psbt.NewFromRawBytes(bytes.NewBuffer(data), false)
	if err != nil {
		return nil, nil, err
	}

	var publicKey []byte
	for _, unknown := range p.Unknowns {
		key, err := InputsHelpingKeyFromBytes(unknown.Key)
		if err != nil {
			continue
		}
		if key == PublicKeyHelpingKey {
			publicKey = unknown.Value
		}
	}
	if publicKey == nil {
		return nil, nil, bitcoin.ErrInvalidPublicKey
	}

	digests := make([]chainhash.Hash, len(p.Inputs))
	for i, input := range p.Inputs {
		found := false
		for _, unknown := range input.Unknowns {
			key, err := InputsHelpingKeyFromBytes(unknown.Key)
			if err != nil || key != SighashDigestHelpingKey {
				continue
			}
			if err = digests[i].SetBytes(unknown.Value); err != nil {
				return nil, nil, fmt.Errorf("input %d: %w", i, err)
			}
			found = true
		}
		if !found {
			return nil, nil, fmt.Errorf("%w: input %d", ErrMissingDigest, i)
		}
	}

	return digests, publicKey, nil
}
