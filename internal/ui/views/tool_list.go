package views

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/hance08/fakturoid-mcp/internal/tools"
)

type ToolListView struct{}

func NewToolListView() *ToolListView {
	return &ToolListView{}
}

func (v *ToolListView) Render(ops []tools.Operation) error {
	tableData := pterm.TableData{{"Tool", "Entity", "Access", "Parameters"}}

	for _, op := range ops {
		access := pterm.Green("read")
		if op.Destructive {
			access = pterm.Red("destructive")
		} else if !op.ReadOnly {
			access = pterm.Yellow("write")
		}

		params := make([]string, 0, len(op.Params))
		for _, p := range op.Params {
			name := p.Name
			if p.Required {
				name += "*"
			}
			params = append(params, name)
		}
		tableData = append(tableData, []string{op.Name, op.Entity, access, strings.Join(params, ", ")})
	}

	pterm.DefaultSection.Println("Tools")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d tools (* marks required parameters)\n", len(ops))
	return nil
}
