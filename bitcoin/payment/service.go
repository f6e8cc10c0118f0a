// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package payment

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/sirupsen/logrus"

	"github.com/BoostyLabs/txcore/bitcoin"
	"github.com/BoostyLabs/txcore/bitcoin/signer"
	"github.com/BoostyLabs/txcore/bitcoin/txbuilder"
	"github.com/BoostyLabs/txcore/internal/numbers"
)

// ErrPayment defines errors class of payment service.
var ErrPayment = errors.New("payment")

// Service orchestrates payment: utxo snapshot, fee estimation, signing and broadcast.
type Service struct {
	txBuilder   *txbuilder.TxBuilder
	utxos       UTXOProvider
	feeRates    FeeRateProvider
	signer      signer.Signer
	broadcaster Broadcaster
	log         logrus.FieldLogger
}

// NewService is a constructor for Service.
func NewService(networkParams *chaincfg.Params, utxos UTXOProvider, feeRates FeeRateProvider,
	signer signer.Signer, broadcaster Broadcaster, log logrus.FieldLogger) *Service {
	return &Service{
		txBuilder:   txbuilder.NewTxBuilder(networkParams),
		utxos:       utxos,
		feeRates:    feeRates,
		signer:      signer,
		broadcaster: broadcaster,
		log:         log,
	}
}

// Quote estimates size and fee of the payment over current utxo snapshot.
func (s *Service) Quote(ctx context.Context, params SendParams) (quote Quote, err error) {
	defer wrapErr(&err)

	utxos, err := s.listUnspent(ctx, params.SourceAddress)
	if err != nil {
		return Quote{}, err
	}

	return s.quote(ctx, params, utxos)
}

// Send builds, signs and broadcasts the payment. Digests are built from fresh
// utxo snapshot on every call.
func (s *Service) Send(ctx context.Context, params SendParams) (receipt Receipt, err error) {
	defer wrapErr(&err)

	log := s.log.WithFields(logrus.Fields{
		"source":      params.SourceAddress,
		"destination": params.DestinationAddress,
		"amount":      int64(params.Amount),
	})

	utxos, err := s.listUnspent(ctx, params.SourceAddress)
	if err != nil {
		log.WithError(err).Error("could not list unspent outputs")
		return Receipt{}, err
	}

	quote, err := s.quote(ctx, params, utxos)
	if err != nil {
		log.WithError(err).Error("could not estimate fee")
		return Receipt{}, err
	}
	log = log.WithFields(logrus.Fields{"inputs": quote.Inputs, "fee": int64(quote.Fee), "size": quote.Size})

	transfer, err := s.txBuilder.PrepareTransfer(txbuilder.TransferParams{
		Intent: bitcoin.TransactionIntent{
			SourceAddress:      params.SourceAddress,
			DestinationAddress: params.DestinationAddress,
			Amount:             params.Amount,
			Fee:                quote.Fee,
		},
		UTXOs:     utxos,
		PublicKey: params.PublicKey,
	})
	if err != nil {
		log.WithError(err).Error("could not prepare transfer")
		return Receipt{}, err
	}

	digests, err := transfer.Digests()
	if err != nil {
		return Receipt{}, err
	}
	log.Debug("requesting signatures")

	signatures, err := s.signer.SignDigests(ctx, digests)
	if err != nil {
		log.WithError(err).Error("signer failed")
		return Receipt{}, err
	}
	// digests are discarded when caller gave up while signer was working.
	if err = ctx.Err(); err != nil {
		log.WithError(err).Warn("payment canceled after signing")
		return Receipt{}, err
	}

	if err = signer.VerifySignatures(digests, signatures, params.PublicKey); err != nil {
		log.WithError(err).Error("signatures rejected")
		return Receipt{}, err
	}

	rawTx, err := transfer.Finalize(signatures)
	if err != nil {
		return Receipt{}, err
	}

	txID, err := txbuilder.TxID(rawTx)
	if err != nil {
		return Receipt{}, err
	}

	broadcastTxID, err := s.broadcaster.Broadcast(ctx, hex.EncodeToString(rawTx))
	if err != nil {
		log.WithError(err).WithField("txid", txID).Error("broadcast failed")
		return Receipt{}, err
	}
	if broadcastTxID != txID {
		log.WithFields(logrus.Fields{"txid": txID, "broadcast_txid": broadcastTxID}).Warn("broadcaster returned unexpected txid")
	}

	log.WithFields(logrus.Fields{"txid": txID, "change": int64(transfer.ChangeAmount)}).Info("payment sent")

	return Receipt{
		TxID:   txID,
		RawTx:  rawTx,
		Fee:    quote.Fee,
		Change: transfer.ChangeAmount,
	}, nil
}

// listUnspent returns non empty utxo snapshot of address.
func (s *Service) listUnspent(ctx context.Context, address string) ([]bitcoin.UTXO, error) {
	utxos, err := s.utxos.ListUnspent(ctx, address)
	if err != nil {
		return nil, err
	}
	if len(utxos) == 0 {
		return nil, bitcoin.ErrEmptyUTXOSet
	}

	return utxos, nil
}

// quote estimates fee of spending all utxos.
func (s *Service) quote(ctx context.Context, params SendParams, utxos []bitcoin.UTXO) (Quote, error) {
	feeRate, err := s.feeRates.FeeRate(ctx)
	if err != nil {
		return Quote{}, err
	}
	if feeRate < 0 {
		return Quote{}, fmt.Errorf("%w: fee rate %d", txbuilder.ErrInvalidAmount, feeRate)
	}

	size, fee, err := s.txBuilder.EstimateTransferFee(utxos, params.PublicKey, params.DestinationAddress, params.Amount, feeRate)
	if err != nil {
		return Quote{}, err
	}

	need, have := numbers.Sum(params.Amount, fee), bitcoin.TotalAmount(utxos)
	quote := Quote{
		Size:    size,
		FeeRate: feeRate,
		Fee:     fee,
		Change:  have - need,
		Inputs:  len(utxos),
	}
	if numbers.IsNegative(quote.Change) {
		return quote, txbuilder.NewInsufficientError(need, have)
	}

	return quote, nil
}

// wrapErr tags error with payment errors class.
func wrapErr(err *error) {
	if err != nil && *err != nil {
		*err = errors.Join(ErrPayment, *err)
	}
}
