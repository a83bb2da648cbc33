package aisdk

import "os"

// Env looks up a configuration variable by name, reporting whether it is set.
// Constructors take an Env instead of reading the process environment
// directly, so configs stay testable without mutating real variables.
type Env func(key string) (string, bool)

// OSEnv returns an Env backed by the process environment.
func OSEnv() Env { return os.LookupEnv }

// MapEnv returns an Env backed by a fixed map.
func MapEnv(vars map[string]string) Env {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

// Option adjusts construction behavior shared by all config records.
type Option func(*settings)

type settings struct {
	env Env
}

// WithEnv overrides the environment lookup used to resolve unset fields.
// The default is OSEnv.
func WithEnv(env Env) Option {
	return func(s *settings) { s.env = env }
}

func newSettings(opts []Option) settings {
	s := settings{env: OSEnv()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// resolve applies the fixed field priority: explicit override, then the named
// environment variable, then the literal fallback. Secret and connection
// fields pass an empty fallback; credentials are never defaulted.
func resolve(override string, env Env, key, fallback string) string {
	if override != "" {
		return override
	}
	if v, ok := env(key); ok && v != "" {
		return v
	}
	return fallback
}

// orDefault picks the override when present, else the literal default. Used
// for fields that have no environment variable.
func orDefault(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}
