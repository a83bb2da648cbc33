package aisdk

import "errors"

// Environment variables consulted by VectorStoreConfig.
const (
	EnvVectorStoreAPIKey = "VECTOR_STORE_API_KEY"
	EnvVectorStoreEnv    = "VECTOR_STORE_ENV"
)

// Defaults for fields that are not credentials.
const (
	DefaultVectorStoreProvider = "pinecone"
	DefaultVectorStoreIndex    = "default-index"
)

// VectorStoreConfig holds resolved vector database settings.
// Supports Pinecone, Weaviate, and Chroma.
type VectorStoreConfig struct {
	Provider    string // "pinecone" | "weaviate" | "chroma"
	APIKey      string
	Environment string
	IndexName   string
}

// VectorStoreOptions carries explicit overrides for NewVectorStoreConfig.
type VectorStoreOptions struct {
	Provider    string
	APIKey      string
	Environment string
	IndexName   string
}

// NewVectorStoreConfig builds a vector store configuration.
func NewVectorStoreConfig(opts VectorStoreOptions, o ...Option) *VectorStoreConfig {
	s := newSettings(o)
	return &VectorStoreConfig{
		Provider:    orDefault(opts.Provider, DefaultVectorStoreProvider),
		APIKey:      resolve(opts.APIKey, s.env, EnvVectorStoreAPIKey, ""),
		Environment: resolve(opts.Environment, s.env, EnvVectorStoreEnv, ""),
		IndexName:   orDefault(opts.IndexName, DefaultVectorStoreIndex),
	}
}

// Validate reports whether the configuration carries a usable API key.
func (c *VectorStoreConfig) Validate() error {
	if c.APIKey == "" {
		return errors.New("VECTOR_STORE_API_KEY not configured; set via environment or constructor")
	}
	return nil
}
