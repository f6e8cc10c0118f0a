// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"bytes"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/BoostyLabs/txcore/bitcoin"
)

// sizeSafetyMargin defines bytes added on top of the measured transaction size.
const sizeSafetyMargin = 1

// placeholderSignature defines stub raw signature used for size estimation only.
var placeholderSignature = bytes.Repeat([]byte{0x01}, RawSignatureLen)

// EstimateSize returns serialized size in bytes of the transaction spending all
// utxos to destination without change output, signed with placeholder signatures.
func EstimateSize(utxos []bitcoin.UTXO, publicKey []byte, spendAmount btcutil.Amount, destinationScript, changeScript []byte) (int, error) {
	signatures := make([][]byte, len(utxos))
	for i := range signatures {
		signatures[i] = placeholderSignature
	}

	rawTx, err := Assemble(AssembleParams{
		SpendParams: SpendParams{
			UTXOs:             utxos,
			SpendAmount:       spendAmount,
			DestinationScript: destinationScript,
			ChangeScript:      changeScript,
		},
		Signatures: signatures,
		PublicKey:  publicKey,
	})
	if err != nil {
		return 0, err
	}

	return len(rawTx) + sizeSafetyMargin, nil
}

// EstimateFee returns fee in satoshi for transaction of provided size and fee rate in satoshi per byte.
func EstimateFee(size int, satoshiPerByte btcutil.Amount) btcutil.Amount {
	return btcutil.Amount(size) * satoshiPerByte
}
