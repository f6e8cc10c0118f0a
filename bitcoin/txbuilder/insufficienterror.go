// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package txbuilder

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/BoostyLabs/txcore/bitcoin"
)

// InsufficientError is the error type to describe insufficient balance errors with details.
type InsufficientError struct {
	Need btcutil.Amount // amount plus fee in satoshi.
	Have btcutil.Amount // total of spendable utxos in satoshi.
}

// NewInsufficientError is a constructor for InsufficientError.
func NewInsufficientError(need, have btcutil.Amount) *InsufficientError {
	return &InsufficientError{Need: need, Have: have}
}

// Error returns error description.
func (e *InsufficientError) Error() string {
	return fmt.Sprintf("%s: Need - %d, Have - %d", bitcoin.ErrInsufficientFunds, int64(e.Need), int64(e.Have))
}

// Is implements comparator method for [errors] package.
func (e *InsufficientError) Is(target error) bool {
	return target == bitcoin.ErrInsufficientFunds || e.Error() == target.Error()
}

// Shortfall returns how many satoshi are missing.
func (e *InsufficientError) Shortfall() btcutil.Amount {
	return e.Need - e.Have
}
