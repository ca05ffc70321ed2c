package app

import "seedring/internal/unlock"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string            // keyring directory, e.g. $HOME/.seedring
	User    string            // key namespace; empty selects the default user
	Testing bool              // use the isolated test namespace
	Verbose bool              // debug-level logging
	Prompt  unlock.PromptFunc // optional; defaults to a terminal prompt
}
