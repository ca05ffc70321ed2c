// Package unlock guards keychain operations behind the master passphrase.
//
// A Gate must be acquired (Unlock) before any secret-store access. It tries
// the session cache first, then validates an unvalidated cached passphrase,
// and only then prompts interactively, a bounded number of times with a fixed
// delay between failures. Exhausting the attempts surfaces ErrMaxAttempts to
// the caller; the gate never retries indefinitely.
package unlock
