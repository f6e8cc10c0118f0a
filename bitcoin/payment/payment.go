// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package payment

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/BoostyLabs/txcore/bitcoin"
)

// UTXOProvider lists unspent outputs of an address, hashes in display hex.
type UTXOProvider interface {
	ListUnspent(ctx context.Context, address string) ([]bitcoin.UTXO, error)
}

// FeeRateProvider returns current fee rate in satoshi per byte.
type FeeRateProvider interface {
	FeeRate(ctx context.Context) (btcutil.Amount, error)
}

// Broadcaster publishes hex encoded raw transaction and returns its txid.
type Broadcaster interface {
	Broadcast(ctx context.Context, rawTxHex string) (string, error)
}

// SendParams describes a payment from wallet address.
type SendParams struct {
	SourceAddress      string
	DestinationAddress string
	Amount             btcutil.Amount
	PublicKey          []byte // wallet public key the source address is derived from.
}

// Quote describes estimated cost of a payment.
type Quote struct {
	Size    int            // estimated transaction size in bytes.
	FeeRate btcutil.Amount // satoshi per byte.
	Fee     btcutil.Amount
	Change  btcutil.Amount
	Inputs  int
}

// Receipt describes broadcast payment.
type Receipt struct {
	TxID   string
	RawTx  []byte
	Fee    btcutil.Amount
	Change btcutil.Amount
}
