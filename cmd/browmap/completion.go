package main

import (
	"fmt"

	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for browmap.

Bash:

  $ source <(browmap completion bash)

Zsh:

  $ browmap completion zsh > "${fpath[1]}/_browmap"

Fish:

  $ browmap completion fish > ~/.config/fish/completions/browmap.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
		return fmt.Errorf("unsupported shell %q", args[0])
	},
}

// settingKeys are the keys accepted by "config set"
func settingKeys() []string {
	return append([]string{"targetSide", "color", "mirror", "showGuides", "showVisagismGrid"}, overlay.FieldNames()...)
}

func completeSetting(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return settingKeys(), cobra.ShellCompDirectiveNoFileComp
	case 1:
		switch args[0] {
		case "targetSide":
			return []string{"left", "right", "both"}, cobra.ShellCompDirectiveNoFileComp
		case "color":
			return overlay.Palette, cobra.ShellCompDirectiveNoFileComp
		case "mirror", "showGuides", "showVisagismGrid":
			return []string{"true", "false"}, cobra.ShellCompDirectiveNoFileComp
		}
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
