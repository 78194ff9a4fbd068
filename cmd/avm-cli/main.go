// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avm-cli runs one AVM contract invocation from the command line: it loads
// the scripts, the spending transaction and the CBOR state documents, runs
// the verifier and prints the outcome together with the output documents.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/atomicals/avmd/domain/avm/consensus"
	"github.com/atomicals/avmd/domain/avm/statecontext"
	"github.com/atomicals/avmd/infrastructure/logger"
	"github.com/atomicals/avmd/version"
)

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintf(os.Stderr, "avm-cli: %+v\n", err)
		os.Exit(1)
	}
}

func realMain() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Version {
		fmt.Println("avm-cli version", version.Version())
		return nil
	}

	level, _ := logger.LevelFromString(cfg.LogLevel)
	if err := logger.InitLog(cfg.LogFile, level); err != nil {
		return err
	}
	defer logger.Close()
	logger.SetLogLevels(level)

	req, err := buildRequest(cfg)
	if err != nil {
		return err
	}

	log.Debugf("Verifying invocation: unlock %d bytes, lock %d bytes, tx %d bytes",
		len(req.UnlockScript), len(req.LockScript), len(req.TxBytes))

	result, err := consensus.VerifyScriptAVM(req)
	if err != nil {
		if cerr, ok := err.(consensus.Error); ok {
			fmt.Printf("error: %s\n", cerr.ErrorCode)
			fmt.Printf("detail: %s\n", cerr.Description)
			os.Exit(2)
		}
		return err
	}

	if !result.Success {
		fmt.Println("result: script failed")
		fmt.Printf("script_error: %s\n", result.ScriptError)
		fmt.Printf("script_error_op_num: %d\n", result.ScriptErrorOpNum)
		os.Exit(3)
	}

	fmt.Println("result: ok")
	fmt.Printf("state_hash: %x\n", result.StateHash)
	printDoc("state_final", result.StateFinal)
	printDoc("state_updates", result.StateUpdates)
	printDoc("state_deletes", result.StateDeletes)
	printDoc("ft_balances", result.FtBalances)
	printDoc("ft_balances_updates", result.FtBalancesUpdates)
	printDoc("nft_balances", result.NftBalances)
	printDoc("nft_balances_updates", result.NftBalancesUpdates)
	printDoc("ft_withdraws", result.FtWithdraws)
	printDoc("nft_withdraws", result.NftWithdraws)
	printDoc("ft_balances_added", result.FtBalancesAdded)
	printDoc("nft_puts", result.NftPuts)
	return nil
}

func buildRequest(cfg *config) (*consensus.Request, error) {
	req := &consensus.Request{}

	var err error
	if req.UnlockScript, err = cfg.hexField("unlockscript", cfg.UnlockScript); err != nil {
		return nil, err
	}
	if req.LockScript, err = cfg.hexField("lockscript", cfg.LockScript); err != nil {
		return nil, err
	}
	if req.TxBytes, err = cfg.hexField("tx", cfg.Tx); err != nil {
		return nil, err
	}
	if req.AuthPubKey, err = cfg.hexField("authpubkey", cfg.AuthPubKey); err != nil {
		return nil, err
	}

	prev, err := cfg.hexField("prevstatehash", cfg.PrevStateHash)
	if err != nil {
		return nil, err
	}
	if len(prev) == statecontext.HashSize {
		copy(req.PrevStateHash[:], prev)
	}

	if req.FtState, err = cfg.fileField(cfg.FtState); err != nil {
		return nil, err
	}
	if req.FtStateIncoming, err = cfg.fileField(cfg.FtStateIncoming); err != nil {
		return nil, err
	}
	if req.NftState, err = cfg.fileField(cfg.NftState); err != nil {
		return nil, err
	}
	if req.NftStateIncoming, err = cfg.fileField(cfg.NftStateIncoming); err != nil {
		return nil, err
	}
	if req.ContractState, err = cfg.fileField(cfg.ContractState); err != nil {
		return nil, err
	}
	if req.ContractExternalState, err = cfg.fileField(cfg.ExternalState); err != nil {
		return nil, err
	}
	return req, nil
}

func printDoc(name string, doc []byte) {
	fmt.Printf("%s: %s\n", name, hex.EncodeToString(doc))
}
