// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/BoostyLabs/txcore/internal/reverse"
)

// UTXO describes unspent transaction output data.
type UTXO struct {
	TxHash string         // transaction hash in display (big-endian) hex.
	Index  uint32         // output index in transaction outputs.
	Amount btcutil.Amount // in Satoshi.
	Script []byte         // ScriptPubKey.
}

// Hash returns UTXO transaction hash in little-endian (wire) byte order.
func (u UTXO) Hash() (chainhash.Hash, error) {
	var hash chainhash.Hash

	b, err := reverse.Hex(u.TxHash)
	if err != nil {
		return hash, fmt.Errorf("%w: %w", ErrInvalidUTXO, err)
	}

	if err = hash.SetBytes(b); err != nil {
		return hash, fmt.Errorf("%w: %w", ErrInvalidUTXO, err)
	}

	return hash, nil
}

// TotalAmount returns sum of all utxos amounts.
func TotalAmount(utxos []UTXO) btcutil.Amount {
	var total btcutil.Amount
	for _, utxo := range utxos {
		total += utxo.Amount
	}

	return total
}

// TransactionIntent describes the semantic send request, independent of binary layout.
type TransactionIntent struct {
	SourceAddress      string
	DestinationAddress string
	Amount             btcutil.Amount // in Satoshi.
	Fee                btcutil.Amount // in Satoshi.
}

// NetworkParams returns chain parameters selected by the network flag.
func NetworkParams(isTestnet bool) *chaincfg.Params {
	if isTestnet {
		return &chaincfg.TestNet3Params
	}

	return &chaincfg.MainNetParams
}
