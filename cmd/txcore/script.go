// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/BoostyLabs/txcore/bitcoin/utils"
)

func newScriptCommand() *cli.Command {
	return &cli.Command{
		Name:      "script",
		Usage:     "prints locking script paying to address",
		ArgsUsage: "<address>",
		Action:    scriptAction,
	}
}

func scriptAction(ctx *cli.Context) error {
	addr := ctx.Args().First()
	if addr == "" {
		return fmt.Errorf("missing address")
	}

	script, err := utils.NewOutputScript(addr, cfg.NetworkParams)
	if err != nil {
		return err
	}

	return printJSON(ctx, map[string]string{"address": addr, "script": hex.EncodeToString(script)})
}
