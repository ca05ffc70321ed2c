package unlock

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// PromptLabel is the text shown when asking for the master passphrase.
const PromptLabel = "(Unlock Keyring) Passphrase:"

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

// TerminalPrompt reads a passphrase from the controlling terminal without
// echoing it.
func TerminalPrompt(label string) (string, error) {
	fmt.Fprint(os.Stderr, promptStyle.Render(label)+" ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
