// Copyright (C) 2025 Creditor Corp. Group.
// See LICENSE for copying information.

package utils

import (
	"github.com/btcsuite/btcd/txscript"
)

// hash160Len defines length of RIPEMD160(SHA256(x)) hash.
const hash160Len = 20

// NewP2PKHScript builds pay to public key hash locking script.
// INFO: Script will have the next format: {OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY OP_CHECKSIG}.
func NewP2PKHScript(hash [hash160Len]byte) []byte {
	script := make([]byte, 0, 25)
	script = append(script, txscript.OP_DUP, txscript.OP_HASH160)
	script = append(script, PushData(hash[:])...)

	return append(script, txscript.OP_EQUALVERIFY, txscript.OP_CHECKSIG)
}

// NewP2SHScript builds pay to script hash locking script.
// INFO: Script will have the next format: {OP_HASH160 <hash> OP_EQUAL}.
func NewP2SHScript(hash [hash160Len]byte) []byte {
	script := make([]byte, 0, 23)
	script = append(script, txscript.OP_HASH160)
	script = append(script, PushData(hash[:])...)

	return append(script, txscript.OP_EQUAL)
}

// NewWitnessScript builds segwit locking script.
// INFO: Script will have the next format: {OP_0|OP_1..OP_16 <program>}.
func NewWitnessScript(version byte, program []byte) []byte {
	versionOp := byte(txscript.OP_0)
	if version > 0 {
		versionOp = txscript.OP_1 + version - 1
	}

	return append([]byte{versionOp}, PushData(program)...)
}

// NewSignatureScript builds P2PKH unlocking script from signature
// (DER with sighash type byte appended) and compressed public key.
func NewSignatureScript(signature, publicKey []byte) []byte {
	script := PushData(signature)

	return append(script, PushData(publicKey)...)
}
