// Package config loads and saves the ai-sdk YAML configuration file and maps
// it onto aisdk.Options. Values in the file act as constructor overrides;
// anything left empty still resolves from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lippytm/ai-sdk-go/aisdk"
)

func init() {
	// Load .env file if it exists
	_ = godotenv.Load()
}

// Config is the YAML document shape.
type Config struct {
	AI          AIConfig          `yaml:"ai,omitempty"`
	VectorStore VectorStoreConfig `yaml:"vector_store,omitempty"`
	Web3        Web3Config        `yaml:"web3,omitempty"`
	Messaging   MessagingConfig   `yaml:"messaging,omitempty"`
	DataStorage DataStorageConfig `yaml:"data_storage,omitempty"`
}

// AIConfig overrides AI provider fields.
type AIConfig struct {
	Provider string `yaml:"provider,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model,omitempty"`
}

// VectorStoreConfig overrides vector store fields.
type VectorStoreConfig struct {
	Provider    string `yaml:"provider,omitempty"`
	APIKey      string `yaml:"api_key,omitempty"`
	Environment string `yaml:"environment,omitempty"`
	IndexName   string `yaml:"index_name,omitempty"`
}

// Web3Config overrides web3 fields.
type Web3Config struct {
	Chain      string `yaml:"chain,omitempty"`
	RPCURL     string `yaml:"rpc_url,omitempty"`
	PrivateKey string `yaml:"private_key,omitempty"`
	Network    string `yaml:"network,omitempty"`
}

// MessagingConfig overrides messaging fields.
type MessagingConfig struct {
	Provider string `yaml:"provider,omitempty"`
	Token    string `yaml:"token,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// DataStorageConfig overrides data storage fields.
type DataStorageConfig struct {
	Type             string `yaml:"type,omitempty"`
	ConnectionString string `yaml:"connection_string,omitempty"`
	Bucket           string `yaml:"bucket,omitempty"`
	Region           string `yaml:"region,omitempty"`
}

// DefaultConfigPath returns the default config path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./ai-sdk.yaml"
	}
	return filepath.Join(home, ".lippytm", "ai-sdk", "config.yaml")
}

// Load reads the configuration file. A missing file yields an empty config
// (everything resolves from the environment).
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to file, creating parent directories.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Options maps the file contents onto SDK constructor overrides.
func (c *Config) Options() aisdk.Options {
	return aisdk.Options{
		AI: aisdk.AIProviderOptions{
			Provider: c.AI.Provider,
			APIKey:   c.AI.APIKey,
			Model:    c.AI.Model,
		},
		VectorStore: aisdk.VectorStoreOptions{
			Provider:    c.VectorStore.Provider,
			APIKey:      c.VectorStore.APIKey,
			Environment: c.VectorStore.Environment,
			IndexName:   c.VectorStore.IndexName,
		},
		Web3: aisdk.Web3Options{
			Chain:      c.Web3.Chain,
			RPCURL:     c.Web3.RPCURL,
			PrivateKey: c.Web3.PrivateKey,
			Network:    c.Web3.Network,
		},
		Messaging: aisdk.MessagingOptions{
			Provider: c.Messaging.Provider,
			Token:    c.Messaging.Token,
			Channel:  c.Messaging.Channel,
		},
		DataStorage: aisdk.DataStorageOptions{
			Type:             c.DataStorage.Type,
			ConnectionString: c.DataStorage.ConnectionString,
			Bucket:           c.DataStorage.Bucket,
			Region:           c.DataStorage.Region,
		},
	}
}
