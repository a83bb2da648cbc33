package aisdk

// Options carries per-component overrides for NewWithOptions. Zero-valued
// fields resolve from the environment and the documented defaults.
type Options struct {
	AI          AIProviderOptions
	VectorStore VectorStoreOptions
	Web3        Web3Options
	Messaging   MessagingOptions
	DataStorage DataStorageOptions
}

// SDK aggregates the five provider configurations. It owns one instance of
// each; construction resolves everything eagerly and nothing is mutated
// afterwards, so an SDK may be read concurrently.
type SDK struct {
	AI          *AIProviderConfig
	VectorStore *VectorStoreConfig
	Web3        *Web3Config
	Messaging   *MessagingConfig
	DataStorage *DataStorageConfig
}

// New builds an SDK with fully defaulted resolution: every field comes from
// the environment or its documented default.
func New(o ...Option) *SDK {
	return NewWithOptions(Options{}, o...)
}

// NewWithOptions builds an SDK threading per-component overrides through to
// each constructor.
func NewWithOptions(opts Options, o ...Option) *SDK {
	return &SDK{
		AI:          NewAIProviderConfig(opts.AI, o...),
		VectorStore: NewVectorStoreConfig(opts.VectorStore, o...),
		Web3:        NewWeb3Config(opts.Web3, o...),
		Messaging:   NewMessagingConfig(opts.Messaging, o...),
		DataStorage: NewDataStorageConfig(opts.DataStorage, o...),
	}
}

// Validate checks every component and returns a ValidationErrors naming each
// failing one, or nil when all pass. It is pure and may be called any number
// of times.
func (s *SDK) Validate() error {
	components := []struct {
		name string
		v    interface{ Validate() error }
	}{
		{"AI", s.AI},
		{"VectorStore", s.VectorStore},
		{"Web3", s.Web3},
		{"Messaging", s.Messaging},
		{"DataStorage", s.DataStorage},
	}

	var errs ValidationErrors
	for _, c := range components {
		if err := c.v.Validate(); err != nil {
			errs = append(errs, ValidationError{Component: c.name, Err: err})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateAll reports whether every component validates. Use Validate to
// learn which components failed.
func (s *SDK) ValidateAll() bool {
	return s.Validate() == nil
}
