package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/synapse/internal/application/usecase"
	"github.com/bnema/synapse/internal/cli/styles"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/infrastructure/filesystem"
	xdgadapter "github.com/bnema/synapse/internal/infrastructure/xdg"
)

// PurgeFlags holds all the purge command flags.
type PurgeFlags struct {
	Config   bool
	Scripts  bool
	Data     bool
	State    bool
	ManPages bool
	All      bool
	Force    bool
	List     bool
}

var purgeFlags PurgeFlags

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove synapse settings, data and logs",
	Long: `Remove files synapse created. By default, purges everything.

Available purge targets:
  --config, -c    settings.json
  --scripts, -s   generated action scripts
  --data, -d      bindings, actions and the activity log (includes scripts)
  --state, -S     log files
  --man, -m       man pages installed by gen-docs
  --all, -a       everything (default if no target flag is given)

Stop a running engine first. Use --force to skip the confirmation prompt.

Examples:
  synapse purge --list        # Show what would be removed
  synapse purge -s -f         # Drop generated scripts without asking
  synapse purge               # Remove everything (with confirmation)`,
	RunE: runPurge,
}

func init() {
	rootCmd.AddCommand(purgeCmd)

	f := purgeCmd.Flags()
	f.BoolVarP(&purgeFlags.Config, "config", "c", false, "purge settings")
	f.BoolVarP(&purgeFlags.Scripts, "scripts", "s", false, "purge generated action scripts")
	f.BoolVarP(&purgeFlags.Data, "data", "d", false, "purge bindings, actions and activity log")
	f.BoolVarP(&purgeFlags.State, "state", "S", false, "purge log files")
	f.BoolVarP(&purgeFlags.ManPages, "man", "m", false, "purge installed man pages")
	f.BoolVarP(&purgeFlags.All, "all", "a", false, "purge everything")
	f.BoolVarP(&purgeFlags.Force, "force", "f", false, "skip confirmation prompt")
	f.BoolVarP(&purgeFlags.List, "list", "l", false, "only list purge targets")
}

func runPurge(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	renderer := styles.NewCLIRenderer(app.Theme)
	uc := usecase.NewPurgeDataUseCase(filesystem.NewDisk(), xdgadapter.New())

	targets, err := uc.GetPurgeTargets(ctx)
	if err != nil {
		return fmt.Errorf("discover purge targets: %w", err)
	}
	if purgeFlags.List {
		fmt.Println(renderer.RenderPurgeTargets(targets))
		return nil
	}

	types := determinePurgeTypes(purgeFlags)
	pending := selectExisting(targets, types)
	if len(pending) == 0 {
		fmt.Println("Nothing to purge.")
		return nil
	}

	if !purgeFlags.Force {
		fmt.Println(renderer.RenderPurgeTargets(pending))
		if !confirm("Remove these files?") {
			fmt.Println("Purge cancelled.")
			return nil
		}
	}

	out, err := uc.Execute(ctx, usecase.PurgeInput{TargetTypes: types})
	if out != nil {
		for _, res := range out.Results {
			msg := fmt.Sprintf("%s (%s)", res.Target.Type, styles.FormatSize(res.Target.Size))
			if res.Error != nil {
				msg += ": " + res.Error.Error()
			}
			fmt.Println(renderer.RenderResult(res.Success, msg))
		}
		fmt.Printf("Freed %s\n", styles.FormatSize(out.TotalSize))
	}
	return err
}

// determinePurgeTypes maps flags to target types, in removal order.
func determinePurgeTypes(flags PurgeFlags) []entity.PurgeTargetType {
	chosen := map[entity.PurgeTargetType]bool{
		entity.PurgeTargetConfig:   flags.Config,
		entity.PurgeTargetScripts:  flags.Scripts || flags.Data,
		entity.PurgeTargetData:     flags.Data,
		entity.PurgeTargetState:    flags.State,
		entity.PurgeTargetManPages: flags.ManPages,
	}
	picked := false
	for _, v := range chosen {
		picked = picked || v
	}

	var types []entity.PurgeTargetType
	for _, t := range entity.AllPurgeTargetTypes() {
		if flags.All || !picked || chosen[t] {
			types = append(types, t)
		}
	}
	return types
}

func selectExisting(targets []entity.PurgeTarget, types []entity.PurgeTargetType) []entity.PurgeTarget {
	want := make(map[entity.PurgeTargetType]struct{}, len(types))
	for _, t := range types {
		want[t] = struct{}{}
	}
	var out []entity.PurgeTarget
	for _, t := range targets {
		if _, ok := want[t.Type]; ok && t.Exists {
			out = append(out, t)
		}
	}
	return out
}

func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
