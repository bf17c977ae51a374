package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath    string
	JournalPath   string
	JournalExists bool
	JournalOn     bool
	Slug          string
	BaseURL       string
	Transport     string
	Address       string
	AppDataDir    string
	Version       string
}

func RenderSystemInfo(data SystemInfoItem) error {
	journalStatus := pterm.Green("Found")
	switch {
	case !data.JournalOn:
		journalStatus = pterm.Gray("Disabled")
	case !data.JournalExists:
		journalStatus = pterm.Yellow("Not Found (Will be created)")
	}

	slug := data.Slug
	if slug == "" {
		slug = pterm.Red("(not set, run 'fakturoid-mcp init')")
	}

	transport := data.Transport
	if data.Address != "" {
		transport = fmt.Sprintf("%s on %s", data.Transport, data.Address)
	}

	tableData := pterm.TableData{
		{"Version", data.Version},
		{"Configuration File", data.ConfigPath},
		{"Account Slug", slug},
		{"API Base URL", data.BaseURL},
		{"Transport", transport},
		{"Journal Path", data.JournalPath},
		{"Journal Status", journalStatus},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
