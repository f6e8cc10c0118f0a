// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/BoostyLabs/txcore/internal/config"
)

// cfg is resolved before any command runs.
var cfg config.Config

func main() {
	app := newApp()

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("txcore")
	}
}

// newApp returns txcore cli application with all commands registered.
func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "txcore"
	app.Usage = "offline builder of replay protected P2PKH transactions"
	app.Before = loadConfig
	app.Commands = append(
		app.Commands,
		newAddressCommand(),
		newValidateCommand(),
		newScriptCommand(),
		newEstimateCommand(),
		newDigestsCommand(),
		newAssembleCommand(),
		newSignCommand(),
	)

	return app
}

// loadConfig reads configuration and configures logging.
func loadConfig(*cli.Context) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	log.SetLevel(cfg.LogLevel)
	log.WithField("network", cfg.Network).Debug("config loaded")

	return nil
}
