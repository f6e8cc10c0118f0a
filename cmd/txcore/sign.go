// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/BoostyLabs/txcore/bitcoin/signer"
	"github.com/BoostyLabs/txcore/internal/config"
)

func newSignCommand() *cli.Command {
	return &cli.Command{
		Name:  "sign",
		Usage: "signs digests or signing psbt with local private key, for testing networks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Usage:    "private key in hex",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "digest",
				Usage: "digest in hex as printed by digests command; repeat in input order",
			},
			&cli.StringFlag{
				Name:  "psbt",
				Usage: "base64 signing psbt as printed by digests --psbt",
			},
		},
		Action: signAction,
	}
}

func signAction(ctx *cli.Context) error {
	if cfg.Network == config.NetworkMainnet {
		log.Warn("signing with plain private key on mainnet")
	}

	keyBytes, err := hex.DecodeString(ctx.String("key"))
	if err != nil || len(keyBytes) != btcec.PrivKeyBytesLen {
		return fmt.Errorf("key: expected %d bytes hex", btcec.PrivKeyBytesLen)
	}
	privateKey, _ := btcec.PrivKeyFromBytes(keyBytes)
	keySigner := signer.NewKeySigner(privateKey)

	if encoded := ctx.String("psbt"); encoded != "" {
		packet, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return fmt.Errorf("psbt: %w", err)
		}

		signed, signatures, err := keySigner.SignPSBT(ctx.Context, packet)
		if err != nil {
			return err
		}

		return printJSON(ctx, map[string]interface{}{
			"psbt":       base64.StdEncoding.EncodeToString(signed),
			"signatures": hexSlice(signatures),
		})
	}

	digests, err := parseDigests(ctx.StringSlice("digest"))
	if err != nil {
		return err
	}
	if len(digests) == 0 {
		return fmt.Errorf("nothing to sign: provide --digest or --psbt")
	}

	signatures, err := keySigner.SignDigests(ctx.Context, digests)
	if err != nil {
		return err
	}

	return printJSON(ctx, map[string]interface{}{"signatures": hexSlice(signatures)})
}
