// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package address

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

const (
	// MainNetCashAddrPrefix defines CashAddr prefix for main network.
	MainNetCashAddrPrefix = "bitcoincash"
	// TestNetCashAddrPrefix defines CashAddr prefix for test network.
	TestNetCashAddrPrefix = "bchtest"
	// RegTestCashAddrPrefix defines CashAddr prefix for regression test network.
	RegTestCashAddrPrefix = "bchreg"
)

// Legacy (base58check) version bytes recognised by script builders.
const (
	// MainNetPubKeyHashVersion defines main network P2PKH version byte.
	MainNetPubKeyHashVersion byte = 0x00
	// TestNetPubKeyHashVersion defines test network P2PKH version byte.
	TestNetPubKeyHashVersion byte = 0x6f
	// AltPubKeyHashVersion defines alternative (L-prefixed) P2PKH version byte.
	AltPubKeyHashVersion byte = 0x30
	// MainNetScriptHashVersion defines main network P2SH version byte.
	MainNetScriptHashVersion byte = 0x05
	// TestNetScriptHashVersion defines test network P2SH version byte.
	TestNetScriptHashVersion byte = 0xc4
	// AltScriptHashVersion defines alternative (M-prefixed) P2SH version byte.
	AltScriptHashVersion byte = 0x32
)

// CashAddrPrefix returns CashAddr human-readable prefix for provided network.
func CashAddrPrefix(params *chaincfg.Params) string {
	switch params.Net {
	case wire.MainNet:
		return MainNetCashAddrPrefix
	case wire.TestNet:
		return RegTestCashAddrPrefix
	default:
		return TestNetCashAddrPrefix
	}
}

// IsPubKeyHashVersion returns true if legacy version byte describes P2PKH address.
func IsPubKeyHashVersion(version byte) bool {
	switch version {
	case MainNetPubKeyHashVersion, TestNetPubKeyHashVersion, AltPubKeyHashVersion:
		return true
	}

	return false
}

// IsScriptHashVersion returns true if legacy version byte describes P2SH address.
func IsScriptHashVersion(version byte) bool {
	switch version {
	case MainNetScriptHashVersion, TestNetScriptHashVersion, AltScriptHashVersion:
		return true
	}

	return false
}

// isNetworkLegacyVersion returns true if legacy version byte belongs to provided network.
func isNetworkLegacyVersion(version byte, params *chaincfg.Params) bool {
	if version == params.PubKeyHashAddrID || version == params.ScriptHashAddrID {
		return true
	}

	return params.Net == wire.MainNet && (version == AltPubKeyHashVersion || version == AltScriptHashVersion)
}
