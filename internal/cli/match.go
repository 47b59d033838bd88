package cli

import (
	"github.com/spf13/cobra"
)

// matchCommand creates the match command.
func (c *CLI) matchCommand() *cobra.Command {
	var x, y float64

	cmd := &cobra.Command{
		Use:   "match <scene> <dragged>",
		Short: "Find the link a dragged block would snap to",
		Long: `Match treats one block of the scene as being dragged and searches every other
block for the closest admissible connector pair within the snap threshold.
Use --x and --y to move the dragged block before matching.`,
		Example: `  blocklink match scene.json three
  blocklink match --threshold 40 --x 120 --y 35 scene.json three`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeSceneArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(args[0])
			if err != nil {
				return err
			}
			v, err := s.view(args[1])
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("x") || flags.Changed("y") {
				loc := v.Location()
				if flags.Changed("x") {
					loc.X = x
				}
				if flags.Changed("y") {
					loc.Y = y
				}
				v.MoveTo(loc)
			}
			return c.runMatch(cmd, s, args[1])
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "move the dragged block to this x before matching")
	cmd.Flags().Float64Var(&y, "y", 0, "move the dragged block to this y before matching")

	return cmd
}

func (c *CLI) runMatch(cmd *cobra.Command, s *session, id string) error {
	w := cmd.OutOrStdout()
	v, err := s.view(id)
	if err != nil {
		return err
	}
	if !v.Visible() || v.Collapsed() {
		printWarning(w, "Block %s is hidden or collapsed and cannot link", id)
	}

	prog := newProgress(commandLogger(cmd))
	m, ok := s.checker.FindBestMatch(v, s.scene.Neighbors(v.BlockID()))
	prog.done("match complete", "block", id, "candidates", s.scene.Len()-1)

	if !ok {
		printInfo(w, "No link for %s within %s", id, formatDistance(s.checker.Threshold()))
		return nil
	}
	l, err := s.checker.Link(m)
	if err != nil {
		return err
	}

	printSuccess(w, "%s %s %s", StyleHighlight.Render(l.Conn1.String()), iconArrow, StyleHighlight.Render(l.Conn2.String()))
	printKeyValue(w, "link", l.ID)
	printKeyValue(w, "neighbor", string(m.Neighbor.ID()))
	printKeyValue(w, "distance", formatDistance(m.Distance))
	printDetail(w, "dragged block at %s", v.Location())
	return nil
}
