package aisdk

import "errors"

// Environment variables consulted by DataStorageConfig.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvS3Bucket    = "S3_BUCKET"
	EnvAWSRegion   = "AWS_REGION"
)

// Supported storage backend identities.
const (
	StorageTypePostgres = "postgres"
	StorageTypeRedis    = "redis"
	StorageTypeS3       = "s3"
	StorageTypeIPFS     = "ipfs"
)

// DefaultStorageType is used when no backend is supplied.
const DefaultStorageType = StorageTypePostgres

// DataStorageConfig holds resolved data storage settings.
// Supports Postgres, Redis, S3, and IPFS.
type DataStorageConfig struct {
	Type             string // "postgres" | "redis" | "s3" | "ipfs"
	ConnectionString string
	Bucket           string
	Region           string
}

// DataStorageOptions carries explicit overrides for NewDataStorageConfig.
type DataStorageOptions struct {
	Type             string
	ConnectionString string
	Bucket           string
	Region           string
}

// NewDataStorageConfig builds a data storage configuration.
func NewDataStorageConfig(opts DataStorageOptions, o ...Option) *DataStorageConfig {
	s := newSettings(o)
	return &DataStorageConfig{
		Type:             orDefault(opts.Type, DefaultStorageType),
		ConnectionString: resolve(opts.ConnectionString, s.env, EnvDatabaseURL, ""),
		Bucket:           resolve(opts.Bucket, s.env, EnvS3Bucket, ""),
		Region:           resolve(opts.Region, s.env, EnvAWSRegion, ""),
	}
}

// Validate reports whether the required field for the resolved backend is
// present. Postgres requires a connection string, S3 a bucket name; other
// backends carry no required field.
func (c *DataStorageConfig) Validate() error {
	switch c.Type {
	case StorageTypePostgres:
		if c.ConnectionString == "" {
			return errors.New("DATABASE_URL not configured for Postgres; set via environment or constructor")
		}
	case StorageTypeS3:
		if c.Bucket == "" {
			return errors.New("S3_BUCKET not configured for S3 storage; set via environment or constructor")
		}
	}
	return nil
}
