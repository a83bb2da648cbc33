package aisdk

import (
	"errors"
	"fmt"

	"github.com/slack-go/slack"
)

// Environment variables consulted by MessagingConfig.
const (
	EnvMessagingToken   = "MESSAGING_TOKEN"
	EnvMessagingChannel = "MESSAGING_CHANNEL"
)

// DefaultMessagingProvider is used when no provider is supplied.
const DefaultMessagingProvider = "slack"

// MessagingConfig holds resolved messaging webhook settings.
// Supports Slack and Discord.
type MessagingConfig struct {
	Provider string // "slack" | "discord"
	Token    string
	Channel  string
}

// MessagingOptions carries explicit overrides for NewMessagingConfig.
type MessagingOptions struct {
	Provider string
	Token    string
	Channel  string
}

// NewMessagingConfig builds a messaging configuration.
func NewMessagingConfig(opts MessagingOptions, o ...Option) *MessagingConfig {
	s := newSettings(o)
	return &MessagingConfig{
		Provider: orDefault(opts.Provider, DefaultMessagingProvider),
		Token:    resolve(opts.Token, s.env, EnvMessagingToken, ""),
		Channel:  resolve(opts.Channel, s.env, EnvMessagingChannel, ""),
	}
}

// Validate reports whether the configuration carries an auth token.
func (c *MessagingConfig) Validate() error {
	if c.Token == "" {
		return errors.New("MESSAGING_TOKEN not configured; set via environment or constructor")
	}
	return nil
}

// SlackClient constructs a slack-go client from the resolved token. The
// client is configured only; no request is made. Errors when the provider
// is not slack or the token is missing.
func (c *MessagingConfig) SlackClient() (*slack.Client, error) {
	if c.Provider != "slack" {
		return nil, fmt.Errorf("messaging provider %q is not slack", c.Provider)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return slack.New(c.Token), nil
}
