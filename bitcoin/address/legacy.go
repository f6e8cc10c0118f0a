// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/BoostyLabs/txcore/bitcoin"
)

// hash160Len defines length of RIPEMD160(SHA256(x)) hash.
const hash160Len = 20

// Legacy describes decoded base58check address.
type Legacy struct {
	Version byte
	Hash    [hash160Len]byte
}

// DecodeLegacy decodes base58check address, payload must be 1 version byte followed by 20 bytes hash.
func DecodeLegacy(address string) (Legacy, error) {
	payload, version, err := base58.CheckDecode(address)
	if err != nil {
		return Legacy{}, fmt.Errorf("%w: %w", bitcoin.ErrInvalidAddress, err)
	}
	if len(payload) != hash160Len {
		return Legacy{}, fmt.Errorf("%w: payload length %d", bitcoin.ErrInvalidAddress, len(payload)+1)
	}

	decoded := Legacy{Version: version}
	copy(decoded.Hash[:], payload)

	return decoded, nil
}

// EncodeLegacy encodes hash with version byte into base58check address.
func EncodeLegacy(version byte, hash [hash160Len]byte) string {
	return base58.CheckEncode(hash[:], version)
}

// String returns base58check form of the address.
func (l Legacy) String() string {
	return EncodeLegacy(l.Version, l.Hash)
}
