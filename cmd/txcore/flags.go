// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/urfave/cli/v2"

	"github.com/BoostyLabs/txcore/bitcoin"
	"github.com/BoostyLabs/txcore/bitcoin/txbuilder"
	"github.com/BoostyLabs/txcore/internal/numbers"
)

const (
	pubKeyFlagName = "pubkey"
	fromFlagName   = "from"
	toFlagName     = "to"
	amountFlagName = "amount"
	feeFlagName    = "fee"
	utxoFlagName   = "utxo"
)

func newPubKeyFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     pubKeyFlagName,
		Usage:    "wallet public key in hex, compressed or not",
		Required: true,
	}
}

func newToFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     toFlagName,
		Usage:    "destination address",
		Required: true,
	}
}

func newAmountFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     amountFlagName,
		Usage:    "amount to send in coins, e.g. 0.0004",
		Required: true,
	}
}

// newUTXOFlag returns fresh flag; slice flags keep parsed values between app runs.
func newUTXOFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:     utxoFlagName,
		Usage:    "unspent output as txhash:index:amount, amount in coins; repeat for every output",
		Required: true,
	}
}

// transferFlags returns flags describing a transfer.
func transferFlags() []cli.Flag {
	return []cli.Flag{
		newPubKeyFlag(),
		&cli.StringFlag{
			Name:     fromFlagName,
			Usage:    "source address, must belong to the public key",
			Required: true,
		},
		newToFlag(),
		newAmountFlag(),
		&cli.StringFlag{
			Name:     feeFlagName,
			Usage:    "fee in coins",
			Required: true,
		},
		newUTXOFlag(),
	}
}

// parseTransfer builds prepared transfer from transferFlags.
func parseTransfer(ctx *cli.Context) (*txbuilder.Transfer, error) {
	publicKey, err := hex.DecodeString(ctx.String(pubKeyFlagName))
	if err != nil {
		return nil, fmt.Errorf("pubkey: %w", err)
	}

	amount, err := numbers.ParseAmount(ctx.String(amountFlagName))
	if err != nil {
		return nil, fmt.Errorf("amount: %w", err)
	}

	fee, err := numbers.ParseAmount(ctx.String(feeFlagName))
	if err != nil {
		return nil, fmt.Errorf("fee: %w", err)
	}

	utxos, err := parseUTXOs(ctx.StringSlice(utxoFlagName))
	if err != nil {
		return nil, err
	}

	return txbuilder.NewTxBuilder(cfg.NetworkParams).PrepareTransfer(txbuilder.TransferParams{
		Intent: bitcoin.TransactionIntent{
			SourceAddress:      ctx.String(fromFlagName),
			DestinationAddress: ctx.String(toFlagName),
			Amount:             amount,
			Fee:                fee,
		},
		UTXOs:     utxos,
		PublicKey: publicKey,
	})
}

// parseUTXOs parses txhash:index:amount values.
func parseUTXOs(values []string) ([]bitcoin.UTXO, error) {
	utxos := make([]bitcoin.UTXO, 0, len(values))
	for _, value := range values {
		parts := strings.Split(value, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q, expected txhash:index:amount", bitcoin.ErrInvalidUTXO, value)
		}

		index, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: index %q", bitcoin.ErrInvalidUTXO, parts[1])
		}

		amount, err := numbers.ParseAmount(parts[2])
		if err != nil {
			return nil, fmt.Errorf("%w: amount %q: %w", bitcoin.ErrInvalidUTXO, parts[2], err)
		}

		utxos = append(utxos, bitcoin.UTXO{TxHash: parts[0], Index: uint32(index), Amount: amount})
	}

	return utxos, nil
}

// parseDigests parses hex encoded digests in wire byte order.
func parseDigests(values []string) ([]chainhash.Hash, error) {
	digests := make([]chainhash.Hash, len(values))
	for i, value := range values {
		b, err := hex.DecodeString(value)
		if err != nil {
			return nil, fmt.Errorf("digest %d: %w", i, err)
		}
		if err = digests[i].SetBytes(b); err != nil {
			return nil, fmt.Errorf("digest %d: %w", i, err)
		}
	}

	return digests, nil
}

// hexDigests returns digests in wire byte order, as signers consume them.
func hexDigests(digests []chainhash.Hash) []string {
	values := make([]string, len(digests))
	for i := range digests {
		values[i] = hex.EncodeToString(digests[i][:])
	}

	return values
}

// hexSlice returns hex encoding of every element.
func hexSlice(values [][]byte) []string {
	encoded := make([]string, len(values))
	for i, value := range values {
		encoded[i] = hex.EncodeToString(value)
	}

	return encoded
}

// printJSON writes indented json of resp to command output.
func printJSON(ctx *cli.Context, resp interface{}) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, string(data))

	return err
}
