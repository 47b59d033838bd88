package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// rulesCommand creates the rules command.
func (c *CLI) rulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the configured rule set in evaluation order",
		Long: `Rules prints the rule set built from --config (or the built-in defaults) in
the order the checker evaluates it. A failing mandatory rule vetoes a pair;
at least one advisory rule must accept it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			set, err := cfg.RuleSet(nil)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			source := "built-in defaults"
			if c.configPath != "" {
				source = c.configPath
			}
			fmt.Fprintln(w, StyleTitle.Render("Rules")+" "+StyleDim.Render(source))

			rows := make([][]string, 0, set.Len())
			for i, r := range set.Rules() {
				mode := "advisory"
				if r.Mandatory() {
					mode = styleMandatory.Render("mandatory")
				}
				rows = append(rows, []string{strconv.Itoa(i + 1), r.Name(), mode})
			}
			if len(rows) == 0 {
				printWarning(w, "Rule set is empty; no pair is admissible")
			} else {
				fmt.Fprintln(w, newTable(rows, -1, "#", "Rule", "Mode").Render())
			}
			printKeyValue(w, "threshold", formatDistance(cfg.Threshold))
			return nil
		},
	}
}
