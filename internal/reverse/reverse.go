// Copyright (C) 2022 Creditor Corp. Group.
// See LICENSE for copying information.

package reverse

import (
	"encoding/hex"
)

// Bytes returns a reversed copy of value, the source slice stays untouched.
func Bytes(value []byte) []byte {
	reversed := make([]byte, len(value))
	for i, j := 0, len(value)-1; j >= 0; i, j = i+1, j-1 {
		reversed[i] = value[j]
	}

	return reversed
}

// InPlace reverses value in place and returns it.
func InPlace(value []byte) []byte {
	for i, j := 0, len(value)-1; i < j; i, j = i+1, j-1 {
		value[i], value[j] = value[j], value[i]
	}

	return value
}

// Hex decodes display (big-endian) hex string and returns its bytes in
// little-endian (wire) order.
func Hex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}

	return InPlace(b), nil
}

// ToHex encodes little-endian (wire) bytes as display (big-endian) hex string.
func ToHex(b []byte) string {
	return hex.EncodeToString(Bytes(b))
}
