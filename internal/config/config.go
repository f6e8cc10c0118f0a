// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix defines prefix of environment variables read by the config.
	EnvPrefix = "TXCORE"

	// NetworkKey is the network transactions are built for: mainnet, testnet or regtest.
	NetworkKey = "NETWORK"
	// LogLevelKey is the logrus level name, for reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// FeeRateKey is the fee rate in satoshi per byte used when no rate is given explicitly.
	FeeRateKey = "FEE_RATE"
	// ConfigFileKey is the optional path to a config file with the same keys.
	ConfigFileKey = "CONFIG"

	// NetworkMainnet defines main network name.
	NetworkMainnet = "mainnet"
	// NetworkTestnet defines test network name.
	NetworkTestnet = "testnet"
	// NetworkRegtest defines regression test network name.
	NetworkRegtest = "regtest"
)

// ErrConfig defines errors class for configuration errors.
var ErrConfig = errors.New("config")

// Config holds resolved configuration values.
type Config struct {
	Network       string
	NetworkParams *chaincfg.Params
	LogLevel      logrus.Level
	FeeRate       btcutil.Amount // satoshi per byte.
}

// Load reads configuration from TXCORE_ prefixed environment and optional config file.
func Load() (Config, error) {
	vip := viper.New()
	vip.SetEnvPrefix(EnvPrefix)
	vip.AutomaticEnv()

	vip.SetDefault(NetworkKey, NetworkMainnet)
	vip.SetDefault(LogLevelKey, logrus.InfoLevel.String())
	vip.SetDefault(FeeRateKey, 1)

	if path := vip.GetString(ConfigFileKey); path != "" {
		vip.SetConfigFile(path)
		if err := vip.ReadInConfig(); err != nil {
			return Config{}, errors.Join(ErrConfig, err)
		}
	}

	return resolve(vip)
}

// resolve validates raw values and converts them into Config.
func resolve(vip *viper.Viper) (Config, error) {
	network := strings.ToLower(vip.GetString(NetworkKey))
	params, err := NetworkParams(network)
	if err != nil {
		return Config{}, err
	}

	level, err := logrus.ParseLevel(vip.GetString(LogLevelKey))
	if err != nil {
		return Config{}, errors.Join(ErrConfig, err)
	}

	feeRate := vip.GetInt64(FeeRateKey)
	if feeRate < 0 {
		return Config{}, fmt.Errorf("%w: %s must not be negative", ErrConfig, FeeRateKey)
	}

	return Config{
		Network:       network,
		NetworkParams: params,
		LogLevel:      level,
		FeeRate:       btcutil.Amount(feeRate),
	}, nil
}

// NetworkParams returns chain parameters by network name.
func NetworkParams(network string) (*chaincfg.Params, error) {
	switch network {
	case NetworkMainnet:
		return &chaincfg.MainNetParams, nil
	case NetworkTestnet:
		return &chaincfg.TestNet3Params, nil
	case NetworkRegtest:
		return &chaincfg.RegressionNetParams, nil
	}

	return nil, fmt.Errorf("%w: unknown network %q", ErrConfig, network)
}
