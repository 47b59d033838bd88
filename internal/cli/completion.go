package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openblocks/blocklink/pkg/scene"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for blocklink.

To load completions:

Bash:
  $ source <(blocklink completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ blocklink completion bash > /etc/bash_completion.d/blocklink
  # macOS:
  $ blocklink completion bash > $(brew --prefix)/etc/bash_completion.d/blocklink

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ blocklink completion zsh > "${fpath[1]}/_blocklink"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ blocklink completion fish | source

  # To load completions for each session, execute once:
  $ blocklink completion fish > ~/.config/fish/completions/blocklink.fish

PowerShell:
  PS> blocklink completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> blocklink completion powershell > blocklink.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(w)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}

// completeSceneArgs completes the scene file first, then block IDs read from
// that scene. maxArgs is the command's total positional argument count.
func completeSceneArgs(maxArgs int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
		}
		if len(args) >= maxArgs {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		s, err := scene.ImportJSON(args[0])
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var ids []string
		for _, v := range s.Views() {
			id := string(v.BlockID())
			if strings.HasPrefix(id, toComplete) && !slices.Contains(args[1:], id) {
				ids = append(ids, id)
			}
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	}
}
