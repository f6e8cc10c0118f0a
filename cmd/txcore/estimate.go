// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/BoostyLabs/txcore/bitcoin/txbuilder"
	"github.com/BoostyLabs/txcore/internal/numbers"
)

func newEstimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "estimates size and fee of transaction spending all utxos",
		Flags: []cli.Flag{
			newPubKeyFlag(),
			newToFlag(),
			newAmountFlag(),
			newUTXOFlag(),
			&cli.Int64Flag{
				Name:  "fee-rate",
				Usage: "fee rate in satoshi per byte, TXCORE_FEE_RATE when omitted",
				Value: -1,
			},
		},
		Action: estimateAction,
	}
}

func estimateAction(ctx *cli.Context) error {
	publicKey, err := hex.DecodeString(ctx.String(pubKeyFlagName))
	if err != nil {
		return fmt.Errorf("pubkey: %w", err)
	}

	amount, err := numbers.ParseAmount(ctx.String(amountFlagName))
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	utxos, err := parseUTXOs(ctx.StringSlice(utxoFlagName))
	if err != nil {
		return err
	}

	feeRate := cfg.FeeRate
	if rate := ctx.Int64("fee-rate"); rate >= 0 {
		feeRate = btcutil.Amount(rate)
	}

	size, fee, err := txbuilder.NewTxBuilder(cfg.NetworkParams).EstimateTransferFee(
		utxos, publicKey, ctx.String(toFlagName), amount, feeRate)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"inputs": len(utxos), "size": size, "fee_rate": int64(feeRate)}).Debug("estimated")

	return printJSON(ctx, map[string]interface{}{
		"size":    size,
		"feeRate": int64(feeRate),
		"fee":     int64(fee),
		"feeCoin": numbers.FromSatoshi(fee).String(),
	})
}
