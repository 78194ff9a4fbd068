// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"io/ioutil"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

type config struct {
	UnlockScript  string `long:"unlockscript" description:"Unlocking script as hex"`
	LockScript    string `long:"lockscript" description:"Locking script as hex"`
	Tx            string `long:"tx" description:"Wire-encoded spending transaction as hex"`
	AuthPubKey    string `long:"authpubkey" description:"Optional authorization public key as hex"`
	PrevStateHash string `long:"prevstatehash" description:"Previous state hash as hex (32 bytes, zero when omitted)"`

	FtState          string `long:"ftstate" description:"Path to the FT balances CBOR document"`
	FtStateIncoming  string `long:"ftstateincoming" description:"Path to the incoming FT CBOR document"`
	NftState         string `long:"nftstate" description:"Path to the NFT table CBOR document"`
	NftStateIncoming string `long:"nftstateincoming" description:"Path to the incoming NFT CBOR document"`
	ContractState    string `long:"contractstate" description:"Path to the contract KV CBOR document"`
	ExternalState    string `long:"externalstate" description:"Path to the external block info CBOR document"`

	LogLevel string `long:"loglevel" short:"d" default:"info" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile  string `long:"logfile" description:"Write logs to this file as well"`
	Version  bool   `long:"version" short:"V" description:"Print version and exit"`
}

func loadConfig() (*config, error) {
	cfg := &config{}
	parser := flags.NewParser(cfg, flags.HelpFlag)
	if _, err := parser.Parse(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *config) hexField(name, value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, errors.Wrapf(err, "--%s is not valid hex", name)
	}
	return b, nil
}

func (cfg *config) fileField(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return b, nil
}
