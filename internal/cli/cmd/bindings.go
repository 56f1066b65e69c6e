package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/synapse/internal/cli/styles"
	"github.com/bnema/synapse/internal/domain/entity"
)

var bindingsJSON bool

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "List deck slots with their key and script",
	RunE:  runBindings,
}

var bindingsClearCmd = &cobra.Command{
	Use:   "clear <slot>",
	Short: "Remove the key bound to a slot",
	Long: `Remove the key bound to a slot, e.g. 'synapse bindings clear K5'.

The action stays attached to the key code, so binding the same key again
restores it.`,
	Args: cobra.ExactArgs(1),
	RunE: runBindingsClear,
}

func init() {
	rootCmd.AddCommand(bindingsCmd)
	bindingsCmd.AddCommand(bindingsClearCmd)
	bindingsCmd.Flags().BoolVar(&bindingsJSON, "json", false, "output as JSON")
}

// slotJSON is the JSON shape of one slot.
type slotJSON struct {
	Key    entity.BindingKey `json:"key"`
	Code   *entity.EventCode `json:"code,omitempty"`
	Script string            `json:"script,omitempty"`
}

func runBindings(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	slots := app.Deck.Slots()
	if !bindingsJSON {
		fmt.Println(styles.NewCLIRenderer(app.Theme).RenderBindings(slots))
		return nil
	}

	out := make([]slotJSON, 0, len(slots))
	for _, s := range slots {
		row := slotJSON{Key: s.Key}
		if s.Bound {
			code := s.Code
			row.Code = &code
		}
		if s.Action != nil {
			row.Script = s.Action.Path
		}
		out = append(out, row)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runBindingsClear(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	key := entity.BindingKey(args[0])
	if err := app.Controller.ClearBinding(app.Ctx(), key); err != nil {
		return err
	}
	fmt.Println(styles.NewCLIRenderer(app.Theme).RenderResult(true, "cleared "+string(key)))
	return nil
}
