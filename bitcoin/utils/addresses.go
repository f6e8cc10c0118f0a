// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package utils

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/BoostyLabs/txcore/bitcoin"
	"github.com/BoostyLabs/txcore/bitcoin/address"
)

// NewOutputScript builds locking script paying to provided address.
// Segwit addresses produce witness scripts, CashAddr and base58check
// addresses produce P2PKH or P2SH scripts depending on their type.
func NewOutputScript(addr string, networkParams *chaincfg.Params) ([]byte, error) {
	decoded, err := address.NewCodec(networkParams).Decode(addr)
	if err != nil {
		return nil, err
	}

	switch decoded.Format {
	case address.FormatSegwit:
		return NewWitnessScript(decoded.Segwit.Version, decoded.Segwit.Program), nil
	case address.FormatCashAddr:
		if len(decoded.CashAddr.Hash) != hash160Len {
			return nil, fmt.Errorf("%w: cashaddr hash size %d", bitcoin.ErrUnsupportedAddressVersion, len(decoded.CashAddr.Hash))
		}

		var hash [hash160Len]byte
		copy(hash[:], decoded.CashAddr.Hash)
		if decoded.CashAddr.Type == address.CashAddrP2SH {
			return NewP2SHScript(hash), nil
		}

		return NewP2PKHScript(hash), nil
	case address.FormatLegacy:
		switch version := decoded.Legacy.Version; {
		case address.IsPubKeyHashVersion(version):
			return NewP2PKHScript(decoded.Legacy.Hash), nil
		case address.IsScriptHashVersion(version):
			return NewP2SHScript(decoded.Legacy.Hash), nil
		default:
			return nil, fmt.Errorf("%w: legacy version byte %#x", bitcoin.ErrUnsupportedAddressVersion, version)
		}
	}

	return nil, fmt.Errorf("%w: %q", bitcoin.ErrInvalidAddress, addr)
}

// MustOutputScript uses NewOutputScript, panics in case of error.
func MustOutputScript(addr string, networkParams *chaincfg.Params) []byte {
	script, err := NewOutputScript(addr, networkParams)
	if err != nil {
		panic(err)
	}

	return script
}

// NewPublicKeyScript builds P2PKH locking script of provided public key.
func NewPublicKeyScript(publicKey []byte) ([]byte, error) {
	hash, err := address.PublicKeyHash(publicKey)
	if err != nil {
		return nil, err
	}

	return NewP2PKHScript(hash), nil
}
