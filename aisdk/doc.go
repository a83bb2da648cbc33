// Package aisdk gathers provider credentials and connection parameters for
// the AI Time Machines integrations (AI model provider, vector store, web3
// RPC, messaging, data storage) from explicit overrides or environment
// variables, and exposes a validation check for each.
//
// Construction resolves every field eagerly, in fixed priority: explicit
// override, then the documented environment variable, then a literal default.
// Credentials are never defaulted. Validation is a pure presence check over
// the resolved fields; nothing in this package performs network I/O.
//
// Basic usage:
//
//	sdk := aisdk.New()
//	if err := sdk.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	client, _ := sdk.AI.NewClient()
package aisdk

// Version is the current SDK version.
const Version = "0.3.0"
