// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/txcore/bitcoin"
	"github.com/BoostyLabs/txcore/bitcoin/address"
	"github.com/BoostyLabs/txcore/bitcoin/txbuilder"
	"github.com/BoostyLabs/txcore/bitcoin/utils"
)

func TestTxBuilder(t *testing.T) {
	txBuilder := txbuilder.NewTxBuilder(networkParams)
	w := newWallet(t, 0x44)

	intent := bitcoin.TransactionIntent{
		SourceAddress:      w.address,
		DestinationAddress: destinationAddress,
		Amount:             40000,
		Fee:                1000,
	}

	t.Run("end to end", func(t *testing.T) {
		transfer, err := txBuilder.PrepareTransfer(txbuilder.TransferParams{
			Intent:    intent,
			UTXOs:     testUTXOs(50000, 30000),
			PublicKey: w.publicKey,
		})
		require.NoError(t, err)
		require.EqualValues(t, 39000, transfer.ChangeAmount)
		require.Equal(t, w.script, transfer.ChangeScript)

		digests, err := transfer.Digests()
		require.NoError(t, err)
		require.Len(t, digests, 2)

		rawTx, err := transfer.Finalize(w.sign(digests))
		require.NoError(t, err)
		require.Equal(t, "02000000", hex.EncodeToString(rawTx[:4]))
		require.Equal(t, "00000000", hex.EncodeToString(rawTx[len(rawTx)-4:]))

		var tx wire.MsgTx
		require.NoError(t, tx.DeserializeNoWitness(bytes.NewReader(rawTx)))
		require.Len(t, tx.TxIn, 2)
		require.Len(t, tx.TxOut, 2)
		require.EqualValues(t, 40000, tx.TxOut[0].Value)
		require.Equal(t, utils.MustOutputScript(destinationAddress, networkParams), tx.TxOut[0].PkScript)
		require.EqualValues(t, 39000, tx.TxOut[1].Value)
		require.Equal(t, w.script, tx.TxOut[1].PkScript)

		for i, utxo := range transfer.UTXOs {
			hash, err := utxo.Hash()
			require.NoError(t, err)
			require.Equal(t, hash, tx.TxIn[i].PreviousOutPoint.Hash)
			require.Equal(t, utxo.Index, tx.TxIn[i].PreviousOutPoint.Index)
		}
	})

	t.Run("legacy source address", func(t *testing.T) {
		legacy, err := address.NewCodec(networkParams).EncodeLegacyFromPublicKey(w.publicKey)
		require.NoError(t, err)

		legacyIntent := intent
		legacyIntent.SourceAddress = legacy
		transfer, err := txBuilder.PrepareTransfer(txbuilder.TransferParams{
			Intent:    legacyIntent,
			UTXOs:     testUTXOs(50000, 30000),
			PublicKey: w.publicKey,
		})
		require.NoError(t, err)
		require.Equal(t, w.script, transfer.ChangeScript)
	})

	t.Run("exact amount leaves no change", func(t *testing.T) {
		transfer, err := txBuilder.PrepareTransfer(txbuilder.TransferParams{
			Intent:    intent,
			UTXOs:     testUTXOs(41000),
			PublicKey: w.publicKey,
		})
		require.NoError(t, err)
		require.Zero(t, transfer.ChangeAmount)

		digests, err := transfer.Digests()
		require.NoError(t, err)

		rawTx, err := transfer.Finalize(w.sign(digests))
		require.NoError(t, err)

		var tx wire.MsgTx
		require.NoError(t, tx.DeserializeNoWitness(bytes.NewReader(rawTx)))
		require.Len(t, tx.TxOut, 1)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		_, err := txBuilder.PrepareTransfer(txbuilder.TransferParams{
			Intent:    intent,
			UTXOs:     testUTXOs(20000, 20000),
			PublicKey: w.publicKey,
		})
		require.ErrorIs(t, err, bitcoin.ErrInsufficientFunds)

		var insufficientErr *txbuilder.InsufficientError
		require.True(t, errors.As(err, &insufficientErr))
		require.Equal(t, btcutil.Amount(41000), insufficientErr.Need)
		require.Equal(t, btcutil.Amount(40000), insufficientErr.Have)
		require.Equal(t, btcutil.Amount(1000), insufficientErr.Shortfall())
		require.True(t, errors.Is(err, txbuilder.NewInsufficientError(41000, 40000)))
		require.False(t, errors.Is(err, txbuilder.NewInsufficientError(41000, 39000)))
	})

	t.Run("errors", func(t *testing.T) {
		other := newWallet(t, 0x55)
		tests := []struct {
			name   string
			params txbuilder.TransferParams
			err    error
		}{
			{"empty utxos", txbuilder.TransferParams{Intent: intent, PublicKey: w.publicKey}, bitcoin.ErrEmptyUTXOSet},
			{"zero amount", txbuilder.TransferParams{
				Intent:    bitcoin.TransactionIntent{SourceAddress: w.address, DestinationAddress: destinationAddress},
				UTXOs:     testUTXOs(1000),
				PublicKey: w.publicKey,
			}, txbuilder.ErrInvalidAmount},
			{"bad destination", txbuilder.TransferParams{
				Intent:    bitcoin.TransactionIntent{SourceAddress: w.address, DestinationAddress: "not-an-address", Amount: 1},
				UTXOs:     testUTXOs(1000),
				PublicKey: w.publicKey,
			}, bitcoin.ErrInvalidAddress},
			{"foreign source", txbuilder.TransferParams{
				Intent:    bitcoin.TransactionIntent{SourceAddress: other.address, DestinationAddress: destinationAddress, Amount: 1},
				UTXOs:     testUTXOs(1000),
				PublicKey: w.publicKey,
			}, bitcoin.ErrInvalidAddress},
			{"bad public key", txbuilder.TransferParams{
				Intent:    bitcoin.TransactionIntent{SourceAddress: w.address, DestinationAddress: destinationAddress, Amount: 1},
				UTXOs:     testUTXOs(1000),
				PublicKey: []byte{0x04},
			}, bitcoin.ErrInvalidPublicKey},
		}
		for _, test := range tests {
			_, err := txBuilder.PrepareTransfer(test.params)
			require.ErrorIs(t, err, test.err, test.name)
		}
	})

	t.Run("BuildPreimagesForAddresses", func(t *testing.T) {
		utxos := testUTXOs(50000, 30000)
		digests, err := txBuilder.BuildPreimagesForAddresses(utxos, destinationAddress, w.address, 40000, 39000)
		require.NoError(t, err)

		expected, err := txbuilder.BuildPreimages(txbuilder.SpendParams{
			UTXOs:             utxos,
			SpendAmount:       40000,
			ChangeAmount:      39000,
			DestinationScript: utils.MustOutputScript(destinationAddress, networkParams),
			ChangeScript:      w.script,
		})
		require.NoError(t, err)
		require.Equal(t, expected, digests)

		_, err = txBuilder.BuildPreimagesForAddresses(utxos, "bc1qqqqq", w.address, 40000, 39000)
		require.ErrorIs(t, err, bitcoin.ErrInvalidAddress)

		_, err = txBuilder.BuildPreimagesForAddresses(utxos, destinationAddress, "1111", 40000, 39000)
		require.ErrorIs(t, err, bitcoin.ErrInvalidAddress)
	})

	t.Run("EstimateTransferFee", func(t *testing.T) {
		size, fee, err := txBuilder.EstimateTransferFee(testUTXOs(50000, 30000), w.publicKey, destinationAddress, 40000, 2)
		require.NoError(t, err)
		require.Equal(t, 339, size)
		require.Equal(t, btcutil.Amount(678), fee)

		_, _, err = txBuilder.EstimateTransferFee(testUTXOs(50000), w.publicKey, "bitcoincash:qqqqqq", 40000, 2)
		require.ErrorIs(t, err, bitcoin.ErrInvalidAddress)
	})
}

func TestSigningPSBT(t *testing.T) {
	txBuilder := txbuilder.NewTxBuilder(networkParams)
	w := newWallet(t, 0x66)

	transfer, err := txBuilder.PrepareTransfer(txbuilder.TransferParams{
		Intent: bitcoin.TransactionIntent{
			SourceAddress:      w.address,
			DestinationAddress: destinationAddress,
			Amount:             40000,
			Fee:                1000,
		},
		UTXOs:     testUTXOs(50000, 30000),
		PublicKey: w.publicKey,
	})
	require.NoError(t, err)

	digests, err := transfer.Digests()
	require.NoError(t, err)

	data, err := transfer.SigningPSBT()
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		extracted, publicKey, err := txbuilder.ExtractDigestsFromPSBT(data)
		require.NoError(t, err)
		require.Equal(t, digests, extracted)
		require.Equal(t, w.publicKey, publicKey)
	})

	t.Run("inputs carry spent outputs", func(t *testing.T) {
		packet, err := psbt.NewFromRawBytes(bytes.NewReader(data), false)
		require.NoError(t, err)
		require.Len(t, packet.Inputs, 2)
		require.Len(t, packet.UnsignedTx.TxOut, 2)

		for i, input := range packet.Inputs {
			require.EqualValues(t, transfer.UTXOs[i].Amount, input.WitnessUtxo.Value)
			require.Equal(t, w.script, input.WitnessUtxo.PkScript)
			require.Equal(t, txbuilder.SigHashAllForkID, input.SighashType)
		}
	})

	t.Run("missing digest", func(t *testing.T) {
		packet, err := psbt.NewFromRawBytes(bytes.NewReader(data), false)
		require.NoError(t, err)
		packet.Inputs[1].Unknowns = nil

		var buff bytes.Buffer
		require.NoError(t, packet.Serialize(&buff))

		_, _, err = txbuilder.ExtractDigestsFromPSBT(buff.Bytes())
		require.ErrorIs(t, err, txbuilder.ErrMissingDigest)
	})

	t.Run("malformed", func(t *testing.T) {
		_, _, err := txbuilder.ExtractDigestsFromPSBT([]byte("psbt"))
		require.Error(t, err)
	})
}
