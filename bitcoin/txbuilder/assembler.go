// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/wire"

	"github.com/BoostyLabs/txcore/bitcoin"
	"github.com/BoostyLabs/txcore/bitcoin/utils"
	"github.com/BoostyLabs/txcore/internal/sequencereader"
)

var (
	// ErrInvalidAmount defines that amount is out of allowed range.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrSigningInputIndex defines that signing input index is out of inputs range.
	ErrSigningInputIndex = errors.New("signing input index is out of range")
)

// AssembleParams describes data needed to assemble signed transaction.
type AssembleParams struct {
	SpendParams
	Signatures [][]byte // raw r|s signatures, signature[i] signs input[i].
	PublicKey  []byte   // wallet public key, compressed or not.
	// SigningInputIndex, if set, leaves every other input with empty scriptSig.
	// Broadcast transactions are always assembled with nil index.
	SigningInputIndex *int
}

// Assemble returns serialized transaction with signature scripts built from raw signatures.
//
//	inputs:  one per utxo, in utxo order, scriptSig = <DER signature|sigHashType> <public key>.
//	outputs: #0 destination, #1 change (only if change amount is not 0).
//
// High s values are replaced with n-s, so the DER encoded s may differ from the raw signature.
func Assemble(params AssembleParams) ([]byte, error) {
	tx, err := assembleTx(params)
	if err != nil {
		return nil, err
	}

	w := bytes.NewBuffer(make([]byte, 0, tx.SerializeSizeStripped()))
	if err = tx.SerializeNoWitness(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// assembleTx validates parameters and builds transaction with signature scripts.
func assembleTx(params AssembleParams) (*wire.MsgTx, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	if len(params.Signatures) != len(params.UTXOs) {
		return nil, fmt.Errorf("%w: %d signatures for %d inputs",
			bitcoin.ErrSignatureCountMismatch, len(params.Signatures), len(params.UTXOs))
	}
	for i, signature := range params.Signatures {
		if len(signature) != RawSignatureLen {
			return nil, fmt.Errorf("%w: signature %d has %d bytes", bitcoin.ErrInvalidSignatureLength, i, len(signature))
		}
	}
	if idx := params.SigningInputIndex; idx != nil && (*idx < 0 || *idx >= len(params.UTXOs)) {
		return nil, fmt.Errorf("%w: %d", ErrSigningInputIndex, *idx)
	}

	pubKey, err := btcec.ParsePubKey(params.PublicKey)
	if err != nil {
		return nil, errors.Join(bitcoin.ErrInvalidPublicKey, err)
	}
	publicKey := pubKey.SerializeCompressed()

	tx, err := newUnsignedTx(params.SpendParams)
	if err != nil {
		return nil, err
	}

	err = sequencereader.New(params.Signatures).Each(func(idx int, signature []byte) error {
		if params.SigningInputIndex != nil && *params.SigningInputIndex != idx {
			return nil
		}

		der, err := DERSignature(signature)
		if err != nil {
			return fmt.Errorf("input %d: %w", idx, err)
		}

		tx.TxIn[idx].SignatureScript = utils.NewSignatureScript(append(der, byte(SigHashAllForkID)), publicKey)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tx, nil
}

// newUnsignedTx builds transaction with empty signature scripts.
func newUnsignedTx(params SpendParams) (*wire.MsgTx, error) {
	outPoints, err := params.outPoints()
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(txVersion)
	for i := range outPoints {
		txIn := wire.NewTxIn(&outPoints[i], nil, nil)
		txIn.Sequence = txInSequence
		tx.AddTxIn(txIn)
	}
	for _, out := range params.txOuts() {
		tx.AddTxOut(out)
	}
	tx.LockTime = txLockTime

	return tx, nil
}

// TxID returns display hash of serialized transaction.
func TxID(rawTx []byte) (string, error) {
	var tx wire.MsgTx
	if err := tx.DeserializeNoWitness(bytes.NewReader(rawTx)); err != nil {
		return "", err
	}

	return tx.TxHash().String(), nil
}
