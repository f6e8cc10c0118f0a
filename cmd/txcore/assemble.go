// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"encoding/hex"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/BoostyLabs/txcore/bitcoin/signer"
	"github.com/BoostyLabs/txcore/bitcoin/txbuilder"
)

const sigFlagName = "sig"

func newAssembleCommand() *cli.Command {
	return &cli.Command{
		Name:  "assemble",
		Usage: "assembles broadcast ready transaction from raw signatures",
		Flags: append([]cli.Flag{
			&cli.StringSliceFlag{
				Name:     sigFlagName,
				Usage:    "raw 64 bytes r|s signature in hex; repeat in input order",
				Required: true,
			},
		}, transferFlags()...),
		Action: assembleAction,
	}
}

func assembleAction(ctx *cli.Context) error {
	transfer, err := parseTransfer(ctx)
	if err != nil {
		return err
	}

	sigValues := ctx.StringSlice(sigFlagName)
	signatures := make([][]byte, len(sigValues))
	for i, value := range sigValues {
		if signatures[i], err = hex.DecodeString(value); err != nil {
			return fmt.Errorf("sig %d: %w", i, err)
		}
	}

	digests, err := transfer.Digests()
	if err != nil {
		return err
	}
	if err = signer.VerifySignatures(digests, signatures, transfer.PublicKey); err != nil {
		return err
	}

	rawTx, err := transfer.Finalize(signatures)
	if err != nil {
		return err
	}

	txID, err := txbuilder.TxID(rawTx)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"txid": txID, "size": len(rawTx)}).Debug("assembled")

	return printJSON(ctx, map[string]string{"txid": txID, "rawTx": hex.EncodeToString(rawTx)})
}
