// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/BoostyLabs/txcore/bitcoin"
)

// Format defines textual address encoding.
type Format byte

const (
	// FormatCashAddr defines CashAddr encoded address.
	FormatCashAddr Format = iota + 1
	// FormatLegacy defines base58check encoded address.
	FormatLegacy
	// FormatSegwit defines bech32/bech32m encoded witness address.
	FormatSegwit
)

// String returns format name.
func (f Format) String() string {
	switch f {
	case FormatCashAddr:
		return "cashaddr"
	case FormatLegacy:
		return "legacy"
	case FormatSegwit:
		return "segwit"
	}

	return "unknown"
}

// Decoded describes address decoded by Codec, only the field matching Format is set.
type Decoded struct {
	Format   Format
	CashAddr CashAddr
	Legacy   Legacy
	Segwit   Segwit
}

// Codec provides address encoding, decoding and validation for one network.
type Codec struct {
	networkParams  *chaincfg.Params
	cashAddrPrefix string
}

// NewCodec is a constructor for Codec.
func NewCodec(networkParams *chaincfg.Params) *Codec {
	return &Codec{
		networkParams:  networkParams,
		cashAddrPrefix: CashAddrPrefix(networkParams),
	}
}

// CashAddrPrefix returns CashAddr prefix used by the codec.
func (c *Codec) CashAddrPrefix() string {
	return c.cashAddrPrefix
}

// PublicKeyHash compresses public key if needed and returns its RIPEMD160(SHA256(pubKey)).
func PublicKeyHash(publicKey []byte) ([hash160Len]byte, error) {
	var hash [hash160Len]byte

	pubKey, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return hash, errors.Join(bitcoin.ErrInvalidPublicKey, err)
	}

	copy(hash[:], btcutil.Hash160(pubKey.SerializeCompressed()))

	return hash, nil
}

// EncodeFromPublicKey returns P2PKH CashAddr address of provided public key.
func (c *Codec) EncodeFromPublicKey(publicKey []byte) (string, error) {
	hash, err := PublicKeyHash(publicKey)
	if err != nil {
		return "", err
	}

	return EncodeCashAddr(c.cashAddrPrefix, CashAddrP2PKH, hash[:])
}

// EncodeLegacyFromPublicKey returns P2PKH base58check address of provided public key.
func (c *Codec) EncodeLegacyFromPublicKey(publicKey []byte) (string, error) {
	hash, err := PublicKeyHash(publicKey)
	if err != nil {
		return "", err
	}

	return EncodeLegacy(c.networkParams.PubKeyHashAddrID, hash), nil
}

// Decode detects address format and decodes it.
// Segwit and prefixed CashAddr addresses are recognised by their prefix,
// otherwise base58check and then bare CashAddr are tried.
func (c *Codec) Decode(address string) (Decoded, error) {
	lower := strings.ToLower(address)

	switch {
	case strings.HasPrefix(lower, c.networkParams.Bech32HRPSegwit+"1"):
		segwit, err := DecodeSegwit(address, c.networkParams.Bech32HRPSegwit)
		if err != nil {
			return Decoded{}, err
		}

		return Decoded{Format: FormatSegwit, Segwit: segwit}, nil
	case strings.HasPrefix(lower, c.cashAddrPrefix+":"):
		cashAddr, err := DecodeCashAddr(address, c.cashAddrPrefix)
		if err != nil {
			return Decoded{}, err
		}

		return Decoded{Format: FormatCashAddr, CashAddr: cashAddr}, nil
	}

	legacy, legacyErr := DecodeLegacy(address)
	if legacyErr == nil {
		return Decoded{Format: FormatLegacy, Legacy: legacy}, nil
	}

	cashAddr, err := DecodeCashAddr(address, c.cashAddrPrefix)
	if err == nil {
		return Decoded{Format: FormatCashAddr, CashAddr: cashAddr}, nil
	}
	if errors.Is(err, bitcoin.ErrUnsupportedAddressVersion) {
		return Decoded{}, err
	}

	return Decoded{}, fmt.Errorf("%w: %q", bitcoin.ErrInvalidAddress, address)
}

// Encode encodes decoded address back into its textual form.
// CashAddr is always encoded with prefix, bech32 forms in lower case.
func (c *Codec) Encode(decoded Decoded) (string, error) {
	switch decoded.Format {
	case FormatCashAddr:
		return EncodeCashAddr(c.cashAddrPrefix, decoded.CashAddr.Type, decoded.CashAddr.Hash)
	case FormatLegacy:
		return decoded.Legacy.String(), nil
	case FormatSegwit:
		return EncodeSegwit(c.networkParams.Bech32HRPSegwit, decoded.Segwit.Version, decoded.Segwit.Program)
	}

	return "", fmt.Errorf("%w: unknown address format %d", bitcoin.ErrInvalidAddress, decoded.Format)
}

// Validate returns true if address decodes for the codec network.
func (c *Codec) Validate(address string) bool {
	decoded, err := c.Decode(address)
	if err != nil {
		return false
	}

	if decoded.Format == FormatLegacy {
		return isNetworkLegacyVersion(decoded.Legacy.Version, c.networkParams)
	}

	return true
}
