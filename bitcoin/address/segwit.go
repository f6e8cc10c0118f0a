// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package address

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/BoostyLabs/txcore/bitcoin"
)

const (
	// MaxWitnessVersion defines the highest witness version.
	MaxWitnessVersion byte = 16
	// minWitnessProgramLen defines minimal witness program length.
	minWitnessProgramLen = 2
	// maxWitnessProgramLen defines maximal witness program length.
	maxWitnessProgramLen = 40
)

// Segwit describes decoded segregated witness address.
type Segwit struct {
	Version byte // 0..16.
	Program []byte
}

// DecodeSegwit decodes bech32 (version 0) or bech32m (version 1+) address
// with expected human-readable part.
func DecodeSegwit(address, expectedHRP string) (Segwit, error) {
	hrp, data, encoding, err := bech32.DecodeGeneric(address)
	if err != nil {
		return Segwit{}, fmt.Errorf("%w: %w", bitcoin.ErrInvalidAddress, err)
	}
	if hrp != strings.ToLower(expectedHRP) {
		return Segwit{}, fmt.Errorf("%w: unexpected hrp %q", bitcoin.ErrInvalidAddress, hrp)
	}
	if len(data) < 1 {
		return Segwit{}, fmt.Errorf("%w: no witness version", bitcoin.ErrInvalidAddress)
	}

	version := data[0]
	if version > MaxWitnessVersion {
		return Segwit{}, fmt.Errorf("%w: witness version %d", bitcoin.ErrUnsupportedAddressVersion, version)
	}

	switch {
	case version == 0 && encoding != bech32.Version0:
		return Segwit{}, fmt.Errorf("%w: witness version 0 requires bech32", bitcoin.ErrInvalidAddress)
	case version != 0 && encoding != bech32.VersionM:
		return Segwit{}, fmt.Errorf("%w: witness version %d requires bech32m", bitcoin.ErrInvalidAddress, version)
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return Segwit{}, fmt.Errorf("%w: %w", bitcoin.ErrInvalidAddress, err)
	}
	if err = checkWitnessProgram(version, program); err != nil {
		return Segwit{}, err
	}

	return Segwit{Version: version, Program: program}, nil
}

// EncodeSegwit encodes witness program into bech32 (version 0) or bech32m (version 1+) address.
func EncodeSegwit(hrp string, version byte, program []byte) (string, error) {
	if version > MaxWitnessVersion {
		return "", fmt.Errorf("%w: witness version %d", bitcoin.ErrUnsupportedAddressVersion, version)
	}
	if err := checkWitnessProgram(version, program); err != nil {
		return "", err
	}

	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}

	data := append([]byte{version}, converted...)
	if version == 0 {
		return bech32.Encode(hrp, data)
	}

	return bech32.EncodeM(hrp, data)
}

// checkWitnessProgram validates witness program length for provided version.
func checkWitnessProgram(version byte, program []byte) error {
	if len(program) < minWitnessProgramLen || len(program) > maxWitnessProgramLen {
		return fmt.Errorf("%w: witness program length %d", bitcoin.ErrInvalidAddress, len(program))
	}
	if version == 0 && len(program) != 20 && len(program) != 32 {
		return fmt.Errorf("%w: witness v0 program length %d", bitcoin.ErrInvalidAddress, len(program))
	}

	return nil
}
