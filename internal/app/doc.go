// Package app wires application dependencies for the CLI.
//
// It builds the keyring store, the unlock gate and the keychain service from
// Config, exposing them via the Wire struct for commands to use.
package app
