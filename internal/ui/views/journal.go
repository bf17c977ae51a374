package views

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/hance08/fakturoid-mcp/internal/store"
	"github.com/hance08/fakturoid-mcp/internal/ui"
)

const timeLayout = "2006-01-02 15:04:05"

type JournalListView struct{}

func NewJournalListView() *JournalListView {
	return &JournalListView{}
}

func (v *JournalListView) Render(calls []*store.ToolCall) error {
	if len(calls) == 0 {
		pterm.Info.Println("The journal is empty.")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Time", "Tool", "Result", "Duration"}}
	for _, call := range calls {
		tableData = append(tableData, []string{
			call.ID,
			time.Unix(call.CreatedAt, 0).Format(timeLayout),
			call.Tool,
			ui.Outcome(call.Success),
			fmt.Sprintf("%d ms", call.DurationMS),
		})
	}

	pterm.DefaultSection.Println("Journal")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Showing %d entries\n", len(calls))
	return nil
}

func RenderJournalEntry(call *store.ToolCall) error {
	ui.PrintL1Title("Tool call %s", call.ID)

	tableData := pterm.TableData{
		{"Tool", call.Tool},
		{"Time", time.Unix(call.CreatedAt, 0).Format(timeLayout)},
		{"Result", ui.Outcome(call.Success)},
		{"Duration", fmt.Sprintf("%d ms", call.DurationMS)},
	}
	if call.Error != "" {
		tableData = append(tableData, []string{"Error", pterm.Red(call.Error)})
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	ui.PrintL2Title("Arguments")
	fmt.Println(Indent(call.Arguments))
	return nil
}

// Indent pretty-prints a JSON document, returning it unchanged when it is
// not valid JSON.
func Indent(text string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", "  "); err != nil {
		return text
	}
	return buf.String()
}
