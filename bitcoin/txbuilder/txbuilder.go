// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/BoostyLabs/txcore/bitcoin"
	"github.com/BoostyLabs/txcore/bitcoin/utils"
	"github.com/BoostyLabs/txcore/internal/numbers"
)

// TransferParams describes data needed to build transfer transaction.
type TransferParams struct {
	Intent    bitcoin.TransactionIntent
	UTXOs     []bitcoin.UTXO // all known unspent outputs of the source address, all of them are spent.
	PublicKey []byte         // source address public key.
}

// Transfer is a prepared transfer: fixed inputs, outputs and amounts.
// Digests and the final transaction are derived from the same Transfer, so
// both always commit to the same outputs.
type Transfer struct {
	SpendParams
	PublicKey []byte
}

// TxBuilder provides transaction building related logic.
type TxBuilder struct {
	networkParams *chaincfg.Params
}

// NewTxBuilder is a constructor for TxBuilder.
func NewTxBuilder(networkParams *chaincfg.Params) *TxBuilder {
	return &TxBuilder{
		networkParams: networkParams,
	}
}

// PrepareTransfer builds destination and change scripts and computes change
// as total of utxos minus amount and fee.
//
//	Tx struct
//	outputs:
//	┌─────────┬──────────────┬────────────────────────────────────────┐
//	│  index  │     type     │             description                │
//	├=========┼==============┼========================================┤
//	│       0 │ destination  │ mandatory, transfer amount.            │
//	├─────────┼──────────────┼────────────────────────────────────────┤
//	│       1 │ change       │ optional, omitted if change is 0.      │
//	│         │              │ pays back to the source script.        │
//	└─────────┴──────────────┴────────────────────────────────────────┘
func (b *TxBuilder) PrepareTransfer(params TransferParams) (*Transfer, error) {
	if len(params.UTXOs) == 0 {
		return nil, bitcoin.ErrEmptyUTXOSet
	}
	if !numbers.IsPositive(params.Intent.Amount) || numbers.IsNegative(params.Intent.Fee) {
		return nil, fmt.Errorf("%w: amount %d, fee %d", ErrInvalidAmount, params.Intent.Amount, params.Intent.Fee)
	}

	destinationScript, err := utils.NewOutputScript(params.Intent.DestinationAddress, b.networkParams)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	changeScript, err := b.sourceScript(params.Intent.SourceAddress, params.PublicKey)
	if err != nil {
		return nil, err
	}

	need := numbers.Sum(params.Intent.Amount, params.Intent.Fee)
	have := bitcoin.TotalAmount(params.UTXOs)
	if have < need {
		return nil, NewInsufficientError(need, have)
	}

	return &Transfer{
		SpendParams: SpendParams{
			UTXOs:             params.UTXOs,
			SpendAmount:       params.Intent.Amount,
			ChangeAmount:      have - need,
			DestinationScript: destinationScript,
			ChangeScript:      changeScript,
		},
		PublicKey: params.PublicKey,
	}, nil
}

// EstimateTransferFee returns estimated size of transaction sending amount
// to destination and fee for it with provided fee rate in satoshi per byte.
func (b *TxBuilder) EstimateTransferFee(utxos []bitcoin.UTXO, publicKey []byte, destination string,
	amount, satoshiPerByte btcutil.Amount) (size int, fee btcutil.Amount, err error) {
	destinationScript, err := utils.NewOutputScript(destination, b.networkParams)
	if err != nil {
		return 0, 0, fmt.Errorf("destination: %w", err)
	}

	changeScript, err := utils.NewPublicKeyScript(publicKey)
	if err != nil {
		return 0, 0, err
	}

	size, err = EstimateSize(utxos, publicKey, amount, destinationScript, changeScript)
	if err != nil {
		return 0, 0, err
	}

	return size, EstimateFee(size, satoshiPerByte), nil
}

// BuildPreimagesForAddresses builds locking scripts of destination and change
// addresses and returns digests of every input.
func (b *TxBuilder) BuildPreimagesForAddresses(utxos []bitcoin.UTXO, destination, change string,
	spendAmount, changeAmount btcutil.Amount) ([]chainhash.Hash, error) {
	destinationScript, err := utils.NewOutputScript(destination, b.networkParams)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	changeScript, err := utils.NewOutputScript(change, b.networkParams)
	if err != nil {
		return nil, fmt.Errorf("change: %w", err)
	}

	return BuildPreimages(SpendParams{
		UTXOs:             utxos,
		SpendAmount:       spendAmount,
		ChangeAmount:      changeAmount,
		DestinationScript: destinationScript,
		ChangeScript:      changeScript,
	})
}

// sourceScript returns locking script of the source address and checks that
// it is the P2PKH script of provided public key.
func (b *TxBuilder) sourceScript(source string, publicKey []byte) ([]byte, error) {
	script, err := utils.NewOutputScript(source, b.networkParams)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}

	pubKeyScript, err := utils.NewPublicKeyScript(publicKey)
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(script, pubKeyScript) {
		return nil, fmt.Errorf("%w: source address does not belong to public key", bitcoin.ErrInvalidAddress)
	}

	return script, nil
}

// Digests returns signature hashes to be signed, one per input in input order.
func (t *Transfer) Digests() ([]chainhash.Hash, error) {
	return BuildPreimages(t.SpendParams)
}

// Finalize assembles broadcast ready transaction from raw signatures
// returned by the signer for Digests in the same order.
func (t *Transfer) Finalize(signatures [][]byte) ([]byte, error) {
	return Assemble(AssembleParams{
		SpendParams: t.SpendParams,
		Signatures:  signatures,
		PublicKey:   t.PublicKey,
	})
}

// SigningPSBT returns serialized PSBT of the unsigned transfer for external signers.
func (t *Transfer) SigningPSBT() ([]byte, error) {
	return BuildSigningPSBT(t.SpendParams, t.PublicKey)
}
