// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"encoding/base64"

	"github.com/urfave/cli/v2"
)

func newDigestsCommand() *cli.Command {
	return &cli.Command{
		Name:  "digests",
		Usage: "prints signature digests of every input in input order",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "psbt",
				Usage: "also print base64 signing psbt for external signers",
			},
		}, transferFlags()...),
		Action: digestsAction,
	}
}

func digestsAction(ctx *cli.Context) error {
	transfer, err := parseTransfer(ctx)
	if err != nil {
		return err
	}

	digests, err := transfer.Digests()
	if err != nil {
		return err
	}

	resp := map[string]interface{}{
		"digests": hexDigests(digests),
		"change":  int64(transfer.ChangeAmount),
	}
	if ctx.Bool("psbt") {
		packet, err := transfer.SigningPSBT()
		if err != nil {
			return err
		}

		resp["psbt"] = base64.StdEncoding.EncodeToString(packet)
	}

	return printJSON(ctx, resp)
}
