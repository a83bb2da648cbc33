package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if !strings.Contains(path, ".lippytm") || !strings.Contains(path, "ai-sdk") {
		t.Errorf("DefaultConfigPath() = %q, expected to contain .lippytm/ai-sdk", path)
	}
}

func TestLoad(t *testing.T) {
	t.Run("returns empty config when file not found", func(t *testing.T) {
		cfg, err := Load("/nonexistent/path/config.yaml")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.AI.APIKey != "" || cfg.DataStorage.Type != "" {
			t.Error("expected empty config for missing file")
		}
	})

	t.Run("loads valid config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.yaml")

		configContent := `
ai:
  provider: "openai"
  api_key: "sk-file"
web3:
  chain: "polygon"
  rpc_url: "https://rpc.example"
data_storage:
  type: "s3"
  bucket: "my-bucket"
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.AI.APIKey != "sk-file" {
			t.Errorf("AI.APIKey = %q, want %q", cfg.AI.APIKey, "sk-file")
		}
		if cfg.Web3.Chain != "polygon" {
			t.Errorf("Web3.Chain = %q, want %q", cfg.Web3.Chain, "polygon")
		}
		if cfg.DataStorage.Bucket != "my-bucket" {
			t.Errorf("DataStorage.Bucket = %q, want %q", cfg.DataStorage.Bucket, "my-bucket")
		}
	})

	t.Run("returns error on invalid YAML", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.yaml")

		invalidContent := `
ai:
  - this is invalid yaml
  api_key: [should be string]
`
		if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		if _, err := Load(configPath); err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := &Config{}
	cfg.Messaging.Token = "xoxb-saved"

	if err := Save(cfg, configPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Messaging.Token != "xoxb-saved" {
		t.Errorf("Loaded Messaging.Token = %q, want %q", loaded.Messaging.Token, "xoxb-saved")
	}
}

func TestOptions(t *testing.T) {
	cfg := &Config{}
	cfg.AI.Provider = "huggingface"
	cfg.AI.Model = "llama-3"
	cfg.VectorStore.APIKey = "pc-key"
	cfg.Web3.Network = "testnet"
	cfg.DataStorage.Type = "s3"
	cfg.DataStorage.Region = "eu-west-1"

	opts := cfg.Options()

	if opts.AI.Provider != "huggingface" || opts.AI.Model != "llama-3" {
		t.Errorf("AI options = %+v, want provider/model carried over", opts.AI)
	}
	if opts.VectorStore.APIKey != "pc-key" {
		t.Errorf("VectorStore.APIKey = %q, want %q", opts.VectorStore.APIKey, "pc-key")
	}
	if opts.Web3.Network != "testnet" {
		t.Errorf("Web3.Network = %q, want %q", opts.Web3.Network, "testnet")
	}
	if opts.DataStorage.Type != "s3" || opts.DataStorage.Region != "eu-west-1" {
		t.Errorf("DataStorage options = %+v, want type/region carried over", opts.DataStorage)
	}
}
