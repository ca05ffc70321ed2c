// Package commands defines the seedring CLI and wires dependencies for subcommands.
//
// Commands
//
//   - generate    Create a fresh 24-word mnemonic and store its key
//   - import      Store a key from an existing mnemonic
//   - list        Print the fingerprint of every stored key
//   - first       Print the first stored key's fingerprint
//   - delete      Remove keys by fingerprint
//   - wipe        Remove every key in the namespace
//   - passphrase  Set or remove the keyring master passphrase
//   - mnemonic    Print a fresh mnemonic without storing anything
//
// # Implementation
//
// The root command builds the dependency graph (keyring store, unlock gate,
// keychain) before any subcommand runs, so handlers share one app context.
package commands
