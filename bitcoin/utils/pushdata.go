// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package utils

import (
	"bytes"
	"encoding/binary"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

const (
	// maxDirectPushLen defines the largest payload pushed with a single length byte.
	maxDirectPushLen = 74
	// maxPushData1Len defines the largest payload pushed with OP_PUSHDATA1.
	maxPushData1Len = 254
	// maxPushData2Len defines the largest payload pushed with OP_PUSHDATA2.
	maxPushData2Len = 65534
)

// PushPrefix returns script push prefix for payload of provided length.
// INFO: 0-74 -> direct length byte, 75-254 -> OP_PUSHDATA1 + 1 byte,
// 255-65534 -> OP_PUSHDATA2 + 2 bytes LE, larger -> OP_PUSHDATA4 + 4 bytes LE.
func PushPrefix(length int) []byte {
	switch {
	case length <= maxDirectPushLen:
		return []byte{byte(length)}
	case length <= maxPushData1Len:
		return []byte{txscript.OP_PUSHDATA1, byte(length)}
	case length <= maxPushData2Len:
		prefix := []byte{txscript.OP_PUSHDATA2, 0, 0}
		binary.LittleEndian.PutUint16(prefix[1:], uint16(length))

		return prefix
	default:
		prefix := []byte{txscript.OP_PUSHDATA4, 0, 0, 0, 0}
		binary.LittleEndian.PutUint32(prefix[1:], uint32(length))

		return prefix
	}
}

// PushData returns payload prefixed with its push prefix.
func PushData(data []byte) []byte {
	prefix := PushPrefix(len(data))
	pushed := make([]byte, 0, len(prefix)+len(data))
	pushed = append(pushed, prefix...)

	return append(pushed, data...)
}

// VarInt returns variable length integer (compact size) encoding of n.
func VarInt(n uint64) []byte {
	w := bytes.NewBuffer(make([]byte, 0, wire.VarIntSerializeSize(n)))
	// writing into bytes.Buffer never fails.
	_ = wire.WriteVarInt(w, 0, n)

	return w.Bytes()
}

// LittleEndian returns minimal little-endian bytes of n, zero encodes as empty slice.
func LittleEndian(n uint64) []byte {
	var b []byte
	for ; n > 0; n >>= 8 {
		b = append(b, byte(n))
	}

	return b
}

// VarBytes returns data prefixed with its compact size length.
func VarBytes(data []byte) []byte {
	return append(VarInt(uint64(len(data))), data...)
}
