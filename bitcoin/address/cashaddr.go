// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package address

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/BoostyLabs/txcore/bitcoin"
)

// charset defines base32 alphabet shared by CashAddr and bech32.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// cashAddrChecksumLen defines CashAddr checksum length in 5-bit groups.
const cashAddrChecksumLen = 8

const (
	// CashAddrP2PKH defines CashAddr type of pay to public key hash address.
	CashAddrP2PKH byte = 0
	// CashAddrP2SH defines CashAddr type of pay to script hash address.
	CashAddrP2SH byte = 1
)

// cashAddrHashSizes maps version byte size bits to hash length in bytes.
var cashAddrHashSizes = [8]int{20, 24, 28, 32, 40, 48, 56, 64}

// charsetRev maps charset symbol to its 5-bit value, -1 for symbols outside of charset.
var charsetRev = func() (rev [128]int8) {
	for i := range rev {
		rev[i] = -1
	}
	for i, c := range charset {
		rev[c] = int8(i)
	}

	return rev
}()

// CashAddr describes decoded CashAddr address.
type CashAddr struct {
	Type byte // CashAddrP2PKH or CashAddrP2SH.
	Hash []byte
}

// EncodeCashAddr encodes hash of provided type into CashAddr string with prefix.
func EncodeCashAddr(prefix string, addrType byte, hash []byte) (string, error) {
	sizeBits := -1
	for bits, size := range cashAddrHashSizes {
		if size == len(hash) {
			sizeBits = bits
			break
		}
	}
	if sizeBits < 0 || addrType > 0x0f {
		return "", fmt.Errorf("%w: unsupported cashaddr hash size %d or type %d", bitcoin.ErrInvalidAddress, len(hash), addrType)
	}

	payload := make([]byte, 0, len(hash)+1)
	payload = append(payload, addrType<<3|byte(sizeBits))
	payload = append(payload, hash...)

	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}

	prefix = strings.ToLower(prefix)
	checksum := cashAddrChecksum(prefix, data)

	var sb strings.Builder
	sb.Grow(len(prefix) + 1 + len(data) + cashAddrChecksumLen)
	sb.WriteString(prefix)
	sb.WriteByte(':')
	for _, d := range append(data, checksum...) {
		sb.WriteByte(charset[d])
	}

	return sb.String(), nil
}

// DecodeCashAddr decodes CashAddr string. Prefix in the address is optional,
// when present it must match expectedPrefix.
func DecodeCashAddr(address, expectedPrefix string) (CashAddr, error) {
	if strings.ToLower(address) != address && strings.ToUpper(address) != address {
		return CashAddr{}, fmt.Errorf("%w: mixed case", bitcoin.ErrInvalidAddress)
	}

	address = strings.ToLower(address)
	prefix := strings.ToLower(expectedPrefix)
	body := address
	if idx := strings.LastIndexByte(address, ':'); idx >= 0 {
		if address[:idx] != prefix {
			return CashAddr{}, fmt.Errorf("%w: unexpected prefix %q", bitcoin.ErrInvalidAddress, address[:idx])
		}

		body = address[idx+1:]
	}
	if len(body) <= cashAddrChecksumLen {
		return CashAddr{}, fmt.Errorf("%w: too short", bitcoin.ErrInvalidAddress)
	}

	data := make([]byte, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c >= 128 || charsetRev[c] < 0 {
			return CashAddr{}, fmt.Errorf("%w: invalid character %q", bitcoin.ErrInvalidAddress, c)
		}

		data[i] = byte(charsetRev[c])
	}

	if cashAddrPolyMod(prefix, data) != 0 {
		return CashAddr{}, fmt.Errorf("%w: invalid checksum", bitcoin.ErrInvalidAddress)
	}

	payload, err := bech32.ConvertBits(data[:len(data)-cashAddrChecksumLen], 5, 8, false)
	if err != nil || len(payload) == 0 {
		return CashAddr{}, fmt.Errorf("%w: invalid payload", bitcoin.ErrInvalidAddress)
	}

	version := payload[0]
	hash := payload[1:]
	if version&0x80 != 0 || cashAddrHashSizes[version&0x07] != len(hash) {
		return CashAddr{}, fmt.Errorf("%w: invalid version byte %#x", bitcoin.ErrInvalidAddress, version)
	}

	addrType := version >> 3
	if addrType != CashAddrP2PKH && addrType != CashAddrP2SH {
		return CashAddr{}, fmt.Errorf("%w: cashaddr type %d", bitcoin.ErrUnsupportedAddressVersion, addrType)
	}

	return CashAddr{Type: addrType, Hash: hash}, nil
}

// cashAddrChecksum computes 8 groups of checksum for prefix and 5-bit data.
func cashAddrChecksum(prefix string, data []byte) []byte {
	values := make([]byte, 0, len(data)+cashAddrChecksumLen)
	values = append(values, data...)
	values = append(values, make([]byte, cashAddrChecksumLen)...)

	mod := cashAddrPolyMod(prefix, values)
	checksum := make([]byte, cashAddrChecksumLen)
	for i := range checksum {
		checksum[i] = byte(mod>>(5*(cashAddrChecksumLen-1-i))) & 0x1f
	}

	return checksum
}

// cashAddrPolyMod computes BCH code checksum over lower 5 bits of prefix,
// zero separator and the data.
func cashAddrPolyMod(prefix string, data []byte) uint64 {
	c := uint64(1)
	step := func(d byte) {
		c0 := byte(c >> 35)
		c = ((c & 0x07ffffffff) << 5) ^ uint64(d)
		if c0&0x01 != 0 {
			c ^= 0x98f2bc8e61
		}
		if c0&0x02 != 0 {
			c ^= 0x79b76d99e2
		}
		if c0&0x04 != 0 {
			c ^= 0xf33e5fb3c4
		}
		if c0&0x08 != 0 {
			c ^= 0xae2eabe2a8
		}
		if c0&0x10 != 0 {
			c ^= 0x1e4f43e470
		}
	}

	for i := 0; i < len(prefix); i++ {
		step(prefix[i] & 0x1f)
	}
	step(0)
	for _, d := range data {
		step(d)
	}

	return c ^ 1
}
