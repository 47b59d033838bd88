package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openblocks/blocklink/pkg/block"
	"github.com/openblocks/blocklink/pkg/errors"
	"github.com/openblocks/blocklink/pkg/link"
	"github.com/openblocks/blocklink/pkg/scene"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <scene> <block-a> <block-b>",
		Short: "Evaluate every connector pair between two blocks",
		Long: `Check loads a scene and evaluates every plug/socket pairing between two of
its blocks in both directions: the plug-equivalent of the first block against
the sockets of the second, then the plug-equivalent of the second against the
sockets of the first. Each pair is listed with its distance and whether the
configured rules admit it.`,
		Example: `  blocklink check scene.json three sum
  blocklink check -c rules.toml scene.json if say`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: completeSceneArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, args[0], args[1], args[2])
		},
	}
}

// pair is one evaluated plug/socket combination.
type pair struct {
	plug       *block.Connector
	socket     *block.Connector
	distance   float64
	admissible bool
}

func (c *CLI) runCheck(cmd *cobra.Command, path, idA, idB string) error {
	prog := newProgress(commandLogger(cmd))

	s, err := c.open(path)
	if err != nil {
		return err
	}
	va, err := s.view(idA)
	if err != nil {
		return err
	}
	vb, err := s.view(idB)
	if err != nil {
		return err
	}
	if va == vb {
		return errors.New(errors.ErrCodeInvalidInput, "cannot check block %q against itself", idA)
	}

	pairs := checkPairs(s.checker, va, vb)
	prog.done("check complete", "pairs", len(pairs))

	w := cmd.OutOrStdout()
	if len(pairs) == 0 {
		printInfo(w, "%s and %s have no plug/socket pairs", idA, idB)
		return nil
	}

	rows := make([][]string, len(pairs))
	admitted := 0
	for i, p := range pairs {
		rows[i] = []string{
			p.plug.String(),
			p.socket.String(),
			formatDistance(p.distance),
			yesNo(p.distance < s.checker.Threshold()),
			yesNo(p.admissible),
		}
		if p.admissible {
			admitted++
		}
	}
	fmt.Fprintln(w, newTable(rows, 4, "Plug", "Socket", "Distance", "In range", "Admissible").Render())

	if admitted == 0 {
		printWarning(w, "No admissible pairs between %s and %s", idA, idB)
	} else {
		printSuccess(w, "%s of %d pairs admissible", StyleNumber.Render(fmt.Sprint(admitted)), len(pairs))
	}
	return nil
}

// checkPairs evaluates the pairs in the order the checker scans them during
// a drag of a: a's plug against b's sockets, then b's plug against a's
// sockets. Rules always see a first.
func checkPairs(checker *link.Checker, va, vb *scene.View) []pair {
	a, b := va.Block(), vb.Block()
	var out []pair
	if plug := link.PlugEquivalent(a); plug != nil {
		p := link.AbsolutePoint(va, plug)
		for _, s := range link.SocketEquivalents(b) {
			out = append(out, pair{
				plug:       plug,
				socket:     s,
				distance:   p.Distance(link.AbsolutePoint(vb, s)),
				admissible: checker.Admissible(a, b, plug, s),
			})
		}
	}
	if plug := link.PlugEquivalent(b); plug != nil {
		p := link.AbsolutePoint(vb, plug)
		for _, s := range link.SocketEquivalents(a) {
			out = append(out, pair{
				plug:       plug,
				socket:     s,
				distance:   p.Distance(link.AbsolutePoint(va, s)),
				admissible: checker.Admissible(a, b, s, plug),
			})
		}
	}
	return out
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
