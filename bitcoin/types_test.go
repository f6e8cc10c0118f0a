// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package bitcoin_test

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/txcore/bitcoin"
)

func TestUTXO(t *testing.T) {
	const txHash = "d78a52d61c43ec43d56e270e8f87ebe952f3bb5fe0a042494ed6ebf753285746"

	t.Run("Hash", func(t *testing.T) {
		hash, err := bitcoin.UTXO{TxHash: txHash}.Hash()
		require.NoError(t, err)

		expected, err := chainhash.NewHashFromStr(txHash)
		require.NoError(t, err)
		require.Equal(t, *expected, hash)
		require.Equal(t, byte(0x46), hash[0])
		require.Equal(t, txHash, hash.String())
	})

	t.Run("invalid hash", func(t *testing.T) {
		for _, txHash := range []string{"", "zz", "d78a52"} {
			_, err := bitcoin.UTXO{TxHash: txHash}.Hash()
			require.ErrorIs(t, err, bitcoin.ErrInvalidUTXO, txHash)
		}
	})

	t.Run("TotalAmount", func(t *testing.T) {
		require.EqualValues(t, 0, bitcoin.TotalAmount(nil))
		require.EqualValues(t, 80000, bitcoin.TotalAmount([]bitcoin.UTXO{{Amount: 50000}, {Amount: 30000}}))
	})
}

func TestNetworkParams(t *testing.T) {
	require.Equal(t, &chaincfg.MainNetParams, bitcoin.NetworkParams(false))
	require.Equal(t, &chaincfg.TestNet3Params, bitcoin.NetworkParams(true))
}
