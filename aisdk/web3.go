package aisdk

import "errors"

// Environment variables consulted by Web3Config.
const (
	EnvWeb3RPCURL     = "WEB3_RPC_URL"
	EnvWeb3PrivateKey = "WEB3_PRIVATE_KEY"
)

// Defaults for fields that are not credentials.
const (
	DefaultWeb3Chain   = "ethereum"
	DefaultWeb3Network = "mainnet"
)

// Web3Config holds resolved blockchain RPC settings.
// Supports Ethereum (EVM) and Solana chains.
type Web3Config struct {
	Chain      string // "ethereum" | "solana" | "polygon" | etc
	RPCURL     string
	PrivateKey string
	Network    string // "mainnet" | "testnet" | "devnet"
}

// Web3Options carries explicit overrides for NewWeb3Config.
type Web3Options struct {
	Chain      string
	RPCURL     string
	PrivateKey string
	Network    string
}

// NewWeb3Config builds a web3 configuration.
func NewWeb3Config(opts Web3Options, o ...Option) *Web3Config {
	s := newSettings(o)
	return &Web3Config{
		Chain:      orDefault(opts.Chain, DefaultWeb3Chain),
		RPCURL:     resolve(opts.RPCURL, s.env, EnvWeb3RPCURL, ""),
		PrivateKey: resolve(opts.PrivateKey, s.env, EnvWeb3PrivateKey, ""),
		Network:    orDefault(opts.Network, DefaultWeb3Network),
	}
}

// Validate reports whether the configuration carries an RPC endpoint.
func (c *Web3Config) Validate() error {
	if c.RPCURL == "" {
		return errors.New("WEB3_RPC_URL not configured; set via environment or constructor")
	}
	return nil
}
