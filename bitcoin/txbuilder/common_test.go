// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/txcore/bitcoin"
	"github.com/BoostyLabs/txcore/bitcoin/address"
	"github.com/BoostyLabs/txcore/bitcoin/utils"
)

const destinationAddress = "1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggu"

var networkParams = &chaincfg.MainNetParams

type wallet struct {
	privateKey *btcec.PrivateKey
	publicKey  []byte
	address    string
	script     []byte
}

func newWallet(t *testing.T, seed byte) wallet {
	privateKey, _ := btcec.PrivKeyFromBytes(bytes.Repeat([]byte{seed}, 32))
	publicKey := privateKey.PubKey().SerializeCompressed()

	addr, err := address.NewCodec(networkParams).EncodeFromPublicKey(publicKey)
	require.NoError(t, err)

	script, err := utils.NewPublicKeyScript(publicKey)
	require.NoError(t, err)

	return wallet{privateKey: privateKey, publicKey: publicKey, address: addr, script: script}
}

// sign returns raw r|s signatures of digests.
func (w wallet) sign(digests []chainhash.Hash) [][]byte {
	signatures := make([][]byte, len(digests))
	for i, digest := range digests {
		compact := ecdsa.SignCompact(w.privateKey, digest[:], true)
		signatures[i] = compact[1:]
	}

	return signatures
}

func txHash(b byte) string {
	return strings.Repeat(string("0123456789abcdef"[b>>4])+string("0123456789abcdef"[b&0x0f]), chainhash.HashSize)
}

func testUTXOs(amounts ...btcutil.Amount) []bitcoin.UTXO {
	utxos := make([]bitcoin.UTXO, len(amounts))
	for i, amount := range amounts {
		utxos[i] = bitcoin.UTXO{TxHash: txHash(byte(0xa0 + i)), Index: uint32(i), Amount: amount}
	}

	return utxos
}
