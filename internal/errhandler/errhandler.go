package errhandler

import (
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// Cancelled reports whether err comes from the user aborting a prompt.
func Cancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted)
}

// HandleError prints err and exits. A cancelled prompt exits cleanly.
func HandleError(err error) {
	if Cancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(Capitalize(err.Error()))
	os.Exit(1)
}

func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
