// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"errors"

	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/BoostyLabs/txcore/bitcoin"
)

// ErrPSBTInputBuilder defines errors class for psbt input preparing.
var ErrPSBTInputBuilder = errors.New("prepare psbt input")

// PSBTInputBuilder is a helping tool to fill psbt inputs with data external signer needs.
type PSBTInputBuilder struct {
	scriptCode []byte
}

// NewPSBTInputBuilder is a constructor for PSBTInputBuilder.
func NewPSBTInputBuilder(scriptCode []byte) (*PSBTInputBuilder, error) {
	if len(scriptCode) == 0 {
		return nil, errors.Join(ErrPSBTInputBuilder, bitcoin.ErrInvalidAddress)
	}

	return &PSBTInputBuilder{scriptCode: scriptCode}, nil
}

// PrepareInput updates input with spent amount, script code, sighash type and digest to sign.
func (pib *PSBTInputBuilder) PrepareInput(input *psbt.PInput, utxo bitcoin.UTXO, digest chainhash.Hash) {
	script := utxo.Script
	if len(script) == 0 {
		script = pib.scriptCode
	}

	input.WitnessUtxo = wire.NewTxOut(int64(utxo.Amount), script)
	input.SighashType = SigHashAllForkID
	input.Unknowns = append(input.Unknowns, &psbt.Unknown{
		Key:   SighashDigestHelpingKey.Bytes(),
		Value: digest.CloneBytes(),
	})
}
