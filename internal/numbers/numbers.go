// Copyright (C) 2022 Creditor Corp. Group.
// See LICENSE for copying information.

package numbers

import (
	"errors"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

// CoinDecimals defines number of fractional digits of one coin expressed in satoshi.
const CoinDecimals int32 = 8

var (
	// ErrNegativeAmount defines that amount is below zero.
	ErrNegativeAmount = errors.New("amount is negative")
	// ErrAmountPrecision defines that amount has more fractional digits than satoshi allows.
	ErrAmountPrecision = errors.New("amount is more precise than 1 satoshi")
	// ErrAmountOverflow defines that amount exceeds total coin supply.
	ErrAmountOverflow = errors.New("amount exceeds max satoshi supply")
)

// maxSatoshi defines btcutil.MaxSatoshi as decimal type.
var maxSatoshi = decimal.NewFromInt(btcutil.MaxSatoshi)

// ToSatoshi converts display coin amount (e.g. 0.0004) into integer satoshi amount.
// Amounts with sub-satoshi precision are rejected rather than rounded.
func ToSatoshi(amount decimal.Decimal) (btcutil.Amount, error) {
	if amount.IsNegative() {
		return 0, ErrNegativeAmount
	}

	sat := amount.Shift(CoinDecimals)
	if !sat.Equal(sat.Truncate(0)) {
		return 0, ErrAmountPrecision
	}
	if sat.GreaterThan(maxSatoshi) {
		return 0, ErrAmountOverflow
	}

	return btcutil.Amount(sat.IntPart()), nil
}

// ParseAmount parses display coin amount string into satoshi amount.
func ParseAmount(s string) (btcutil.Amount, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}

	return ToSatoshi(amount)
}

// FromSatoshi converts satoshi amount into display coin amount.
func FromSatoshi(amount btcutil.Amount) decimal.Decimal {
	return decimal.New(int64(amount), -CoinDecimals)
}

// Sum returns total of provided amounts.
func Sum(amounts ...btcutil.Amount) btcutil.Amount {
	var total btcutil.Amount
	for _, amount := range amounts {
		total += amount
	}

	return total
}

// IsNegative returns true if the amount is less than zero.
func IsNegative(amount btcutil.Amount) bool {
	return amount < 0
}

// IsPositive returns true if the amount is grater than zero.
func IsPositive(amount btcutil.Amount) bool {
	return amount > 0
}
