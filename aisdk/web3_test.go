package aisdk

import (
	"strings"
	"testing"
)

func TestNewWeb3Config(t *testing.T) {
	t.Run("defaults with empty environment", func(t *testing.T) {
		cfg := NewWeb3Config(Web3Options{}, WithEnv(MapEnv(nil)))

		if cfg.Chain != "ethereum" {
			t.Errorf("Chain = %q, want %q", cfg.Chain, "ethereum")
		}
		if cfg.Network != "mainnet" {
			t.Errorf("Network = %q, want %q", cfg.Network, "mainnet")
		}
		if cfg.RPCURL != "" || cfg.PrivateKey != "" {
			t.Errorf("RPCURL/PrivateKey = %q/%q, want empty", cfg.RPCURL, cfg.PrivateKey)
		}
	})

	t.Run("resolution order per field", func(t *testing.T) {
		env := MapEnv(map[string]string{
			"WEB3_RPC_URL":     "https://rpc.example/env",
			"WEB3_PRIVATE_KEY": "0xenv",
		})
		cfg := NewWeb3Config(Web3Options{
			Chain:  "solana",
			RPCURL: "https://rpc.example/explicit",
		}, WithEnv(env))

		if cfg.RPCURL != "https://rpc.example/explicit" {
			t.Errorf("RPCURL = %q, want override", cfg.RPCURL)
		}
		if cfg.PrivateKey != "0xenv" {
			t.Errorf("PrivateKey = %q, want env value", cfg.PrivateKey)
		}
		if cfg.Chain != "solana" {
			t.Errorf("Chain = %q, want %q", cfg.Chain, "solana")
		}
	})
}

func TestWeb3ConfigValidate(t *testing.T) {
	cfg := NewWeb3Config(Web3Options{}, WithEnv(MapEnv(nil)))

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !strings.Contains(err.Error(), "WEB3_RPC_URL") {
		t.Errorf("Validate() error = %q, want mention of WEB3_RPC_URL", err)
	}

	ok := NewWeb3Config(Web3Options{RPCURL: "https://rpc.example"}, WithEnv(MapEnv(nil)))
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}
