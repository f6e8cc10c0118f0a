// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/BoostyLabs/txcore/bitcoin"
	"github.com/BoostyLabs/txcore/bitcoin/utils"
)

const (
	// txVersion defines transaction version for this builder.
	txVersion int32 = 2
	// txLockTime defines transaction lock time for this builder.
	txLockTime uint32 = 0
	// txInSequence defines sequence of every transaction input.
	txInSequence uint32 = wire.MaxTxInSequenceNum

	// SigHashForkID defines replay protected signature hash flag.
	SigHashForkID txscript.SigHashType = 0x40
	// SigHashAllForkID defines signature hash type for input signing.
	SigHashAllForkID = txscript.SigHashAll | SigHashForkID
)

// SpendParams describes inputs and outputs shared by preimage building and transaction assembling.
type SpendParams struct {
	UTXOs             []bitcoin.UTXO
	SpendAmount       btcutil.Amount // amount to destination in satoshi.
	ChangeAmount      btcutil.Amount // amount back to wallet in satoshi, output is omitted when 0.
	DestinationScript []byte
	ChangeScript      []byte // wallet own script, used as scriptCode of every input.
}

// Midstate holds input and output commitments shared by preimages of all inputs.
type Midstate struct {
	HashPrevouts chainhash.Hash
	HashSequence chainhash.Hash
	HashOutputs  chainhash.Hash
}

// validate checks spend parameters invariants.
func (p SpendParams) validate() error {
	if len(p.UTXOs) == 0 {
		return bitcoin.ErrEmptyUTXOSet
	}
	if p.ChangeAmount < 0 {
		return fmt.Errorf("%w: change amount %d", bitcoin.ErrInsufficientFunds, p.ChangeAmount)
	}
	if p.SpendAmount < 0 {
		return fmt.Errorf("%w: spend amount %d", ErrInvalidAmount, p.SpendAmount)
	}

	return nil
}

// outPoints returns outpoints of spent utxos in input order.
func (p SpendParams) outPoints() ([]wire.OutPoint, error) {
	outPoints := make([]wire.OutPoint, len(p.UTXOs))
	for i, utxo := range p.UTXOs {
		hash, err := utxo.Hash()
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}

		outPoints[i] = wire.OutPoint{Hash: hash, Index: utxo.Index}
	}

	return outPoints, nil
}

// txOuts returns transaction outputs: destination first, change last and only if not zero.
// Both preimages and assembled transactions take outputs from here.
func (p SpendParams) txOuts() []*wire.TxOut {
	outs := []*wire.TxOut{wire.NewTxOut(int64(p.SpendAmount), p.DestinationScript)}
	if p.ChangeAmount != 0 {
		outs = append(outs, wire.NewTxOut(int64(p.ChangeAmount), p.ChangeScript))
	}

	return outs
}

// NewMidstate computes hashPrevouts, hashSequence and hashOutputs once for all inputs.
func NewMidstate(params SpendParams) (Midstate, error) {
	if err := params.validate(); err != nil {
		return Midstate{}, err
	}

	outPoints, err := params.outPoints()
	if err != nil {
		return Midstate{}, err
	}

	return newMidstate(outPoints, params.txOuts()), nil
}

// newMidstate computes midstate from parsed outpoints and outputs.
func newMidstate(outPoints []wire.OutPoint, outs []*wire.TxOut) Midstate {
	prevouts := make([]byte, 0, len(outPoints)*(chainhash.HashSize+4))
	sequences := make([]byte, 0, len(outPoints)*4)
	for _, outPoint := range outPoints {
		prevouts = append(prevouts, outPoint.Hash[:]...)
		prevouts = binary.LittleEndian.AppendUint32(prevouts, outPoint.Index)
		sequences = binary.LittleEndian.AppendUint32(sequences, txInSequence)
	}

	return Midstate{
		HashPrevouts: chainhash.DoubleHashH(prevouts),
		HashSequence: chainhash.DoubleHashH(sequences),
		HashOutputs:  chainhash.DoubleHashH(serializeTxOuts(outs)),
	}
}

// serializeTxOuts returns concatenated wire encoding of outputs.
func serializeTxOuts(outs []*wire.TxOut) []byte {
	w := bytes.NewBuffer(nil)
	for _, out := range outs {
		// writing into bytes.Buffer never fails.
		_ = wire.WriteTxOut(w, 0, txVersion, out)
	}

	return w.Bytes()
}

// Preimage returns signature hash preimage of one input.
//
//	version(4) | hashPrevouts(32) | hashSequence(32) | outpoint(36) | scriptCode(var) |
//	amount(8) | sequence(4) | hashOutputs(32) | lockTime(4) | sigHashType(4)
func (m Midstate) Preimage(outPoint wire.OutPoint, amount btcutil.Amount, scriptCode []byte) []byte {
	scriptCode = utils.VarBytes(scriptCode)

	preimage := make([]byte, 0, 4+3*chainhash.HashSize+36+len(scriptCode)+8+4+4+4)
	preimage = binary.LittleEndian.AppendUint32(preimage, uint32(txVersion))
	preimage = append(preimage, m.HashPrevouts[:]...)
	preimage = append(preimage, m.HashSequence[:]...)
	preimage = append(preimage, outPoint.Hash[:]...)
	preimage = binary.LittleEndian.AppendUint32(preimage, outPoint.Index)
	preimage = append(preimage, scriptCode...)
	preimage = binary.LittleEndian.AppendUint64(preimage, uint64(amount))
	preimage = binary.LittleEndian.AppendUint32(preimage, txInSequence)
	preimage = append(preimage, m.HashOutputs[:]...)
	preimage = binary.LittleEndian.AppendUint32(preimage, txLockTime)
	preimage = binary.LittleEndian.AppendUint32(preimage, uint32(SigHashAllForkID))

	return preimage
}

// BuildPreimages returns double SHA256 digests of every input preimage in input order.
// These digests are handed to the signer.
func BuildPreimages(params SpendParams) ([]chainhash.Hash, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	outPoints, err := params.outPoints()
	if err != nil {
		return nil, err
	}

	midstate := newMidstate(outPoints, params.txOuts())
	digests := make([]chainhash.Hash, len(outPoints))
	for i, outPoint := range outPoints {
		digests[i] = chainhash.DoubleHashH(midstate.Preimage(outPoint, params.UTXOs[i].Amount, params.ChangeScript))
	}

	return digests, nil
}
