// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/BoostyLabs/txcore/bitcoin/address"
)

func newAddressCommand() *cli.Command {
	return &cli.Command{
		Name:  "address",
		Usage: "derives P2PKH address of a public key",
		Flags: []cli.Flag{
			newPubKeyFlag(),
			&cli.BoolFlag{
				Name:  "legacy",
				Usage: "print base58check address instead of cashaddr",
			},
		},
		Action: addressAction,
	}
}

func addressAction(ctx *cli.Context) error {
	publicKey, err := hex.DecodeString(ctx.String(pubKeyFlagName))
	if err != nil {
		return fmt.Errorf("pubkey: %w", err)
	}

	codec := address.NewCodec(cfg.NetworkParams)
	cashAddr, err := codec.EncodeFromPublicKey(publicKey)
	if err != nil {
		return err
	}

	legacy, err := codec.EncodeLegacyFromPublicKey(publicKey)
	if err != nil {
		return err
	}

	if ctx.Bool("legacy") {
		return printJSON(ctx, map[string]string{"address": legacy})
	}

	return printJSON(ctx, map[string]string{"address": cashAddr, "legacy": legacy})
}

func newValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "checks that address is valid for the configured network",
		ArgsUsage: "<address>",
		Action:    validateAction,
	}
}

func validateAction(ctx *cli.Context) error {
	addr := ctx.Args().First()
	if addr == "" {
		return fmt.Errorf("missing address")
	}

	codec := address.NewCodec(cfg.NetworkParams)
	resp := map[string]interface{}{"address": addr, "valid": codec.Validate(addr)}
	if decoded, err := codec.Decode(addr); err == nil {
		resp["format"] = decoded.Format.String()
	}

	return printJSON(ctx, resp)
}
