package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...any) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	style.Println(fmt.Sprintf(" %s   ", fmt.Sprintf(format, a...)))
}

func PrintL2Title(format string, a ...any) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	style.Println(fmt.Sprintf("# %s   ", fmt.Sprintf(format, a...)))
}

// Outcome colors a success flag for tables.
func Outcome(success bool) string {
	if success {
		return pterm.Green("ok")
	}
	return pterm.Red("error")
}
