package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewActionsCommand creates the actions command.
func NewActionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List the registered actions and their steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}

			a, err := newApp(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.close()

			a.out.say("ActionsHeader", nil)
			fmt.Fprintln(a.out.out, a.actionsTable())
			return nil
		},
	}
}

func (a *app) actionsTable() string {
	engine := a.router.Engine()

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = false

	tbl.AppendHeader(table.Row{"Action", "Steps"})
	for _, name := range engine.Actions() {
		action, _ := engine.Action(name)

		steps := make([]string, 0, action.Len())
		for _, step := range action.Steps() {
			steps = append(steps, step.String())
		}
		tbl.AppendRow(table.Row{name, strings.Join(steps, ", ")})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d", len(engine.Actions()))})

	return tbl.Render()
}
