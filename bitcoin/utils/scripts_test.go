// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package utils_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/txcore/bitcoin"
	"github.com/BoostyLabs/txcore/bitcoin/utils"
)

func TestNewOutputScript(t *testing.T) {
	hash, err := hex.DecodeString("751e76e8199196d454941c45d1b3a323f1433bd6")
	require.NoError(t, err)

	for _, params := range []*chaincfg.Params{&chaincfg.MainNetParams, &chaincfg.TestNet3Params} {
		p2pkh, err := btcutil.NewAddressPubKeyHash(hash, params)
		require.NoError(t, err)
		p2sh, err := btcutil.NewAddressScriptHashFromHash(hash, params)
		require.NoError(t, err)
		p2wpkh, err := btcutil.NewAddressWitnessPubKeyHash(hash, params)
		require.NoError(t, err)
		p2wsh, err := btcutil.NewAddressWitnessScriptHash(bytes.Repeat(hash[:16], 2), params)
		require.NoError(t, err)
		p2tr, err := btcutil.NewAddressTaproot(bytes.Repeat(hash[:16], 2), params)
		require.NoError(t, err)

		for _, addr := range []btcutil.Address{p2pkh, p2sh, p2wpkh, p2wsh, p2tr} {
			expected, err := txscript.PayToAddrScript(addr)
			require.NoError(t, err)

			script, err := utils.NewOutputScript(addr.EncodeAddress(), params)
			require.NoError(t, err, addr.EncodeAddress())
			require.Equal(t, expected, script, addr.EncodeAddress())
		}
	}

	t.Run("cashaddr", func(t *testing.T) {
		script, err := utils.NewOutputScript("bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a", &chaincfg.MainNetParams)
		require.NoError(t, err)
		require.Equal(t, "76a91476a04053bda0a88bda5177b86a15c3b29f55987388ac", hex.EncodeToString(script))

		script, err = utils.NewOutputScript("bitcoincash:ppm2qsznhks23z7629mms6s4cwef74vcwvn0h829pq", &chaincfg.MainNetParams)
		require.NoError(t, err)
		require.Equal(t, "a91476a04053bda0a88bda5177b86a15c3b29f55987387", hex.EncodeToString(script))
	})

	t.Run("alternative legacy versions", func(t *testing.T) {
		var h [20]byte
		copy(h[:], hash)

		script, err := utils.NewOutputScript(base58.CheckEncode(hash, 48), &chaincfg.MainNetParams)
		require.NoError(t, err)
		require.Equal(t, utils.NewP2PKHScript(h), script)

		script, err = utils.NewOutputScript(base58.CheckEncode(hash, 50), &chaincfg.MainNetParams)
		require.NoError(t, err)
		require.Equal(t, utils.NewP2SHScript(h), script)
	})

	t.Run("invalid", func(t *testing.T) {
		p2wpkh, err := btcutil.NewAddressWitnessPubKeyHash(hash, &chaincfg.MainNetParams)
		require.NoError(t, err)

		addr := p2wpkh.EncodeAddress()
		last := "q"
		if addr[len(addr)-1] == 'q' {
			last = "p"
		}

		script, err := utils.NewOutputScript(addr[:len(addr)-1]+last, &chaincfg.MainNetParams)
		require.ErrorIs(t, err, bitcoin.ErrInvalidAddress)
		require.Nil(t, script)

		script, err = utils.NewOutputScript("bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6b", &chaincfg.MainNetParams)
		require.ErrorIs(t, err, bitcoin.ErrInvalidAddress)
		require.Nil(t, script)

		_, err = utils.NewOutputScript("not an address", &chaincfg.MainNetParams)
		require.ErrorIs(t, err, bitcoin.ErrInvalidAddress)

		_, err = utils.NewOutputScript(base58.CheckEncode(hash, 0x1e), &chaincfg.MainNetParams)
		require.ErrorIs(t, err, bitcoin.ErrUnsupportedAddressVersion)

		require.Panics(t, func() { utils.MustOutputScript("", &chaincfg.MainNetParams) })
	})
}

func TestNewWitnessScript(t *testing.T) {
	program := bytes.Repeat([]byte{0x01}, 32)
	for version := byte(0); version <= 16; version++ {
		script := utils.NewWitnessScript(version, program)
		require.Len(t, script, 34)
		require.Equal(t, byte(32), script[1])

		witnessVersion, witnessProgram, err := txscript.ExtractWitnessProgramInfo(script)
		require.NoError(t, err)
		require.EqualValues(t, version, witnessVersion)
		require.Equal(t, program, witnessProgram)
	}
}

func TestNewSignatureScript(t *testing.T) {
	signature := bytes.Repeat([]byte{0x30}, 71)
	publicKey := bytes.Repeat([]byte{0x02}, 33)

	script := utils.NewSignatureScript(signature, publicKey)
	require.Len(t, script, 1+71+1+33)
	require.Equal(t, byte(71), script[0])
	require.Equal(t, byte(33), script[72])

	pushes, err := txscript.PushedData(script)
	require.NoError(t, err)
	require.Equal(t, [][]byte{signature, publicKey}, pushes)
}

func TestNewPublicKeyScript(t *testing.T) {
	publicKey, err := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	require.NoError(t, err)

	script, err := utils.NewPublicKeyScript(publicKey)
	require.NoError(t, err)
	require.Equal(t, "76a914751e76e8199196d454941c45d1b3a323f1433bd688ac", hex.EncodeToString(script))

	_, err = utils.NewPublicKeyScript(publicKey[1:])
	require.ErrorIs(t, err, bitcoin.ErrInvalidPublicKey)
}
