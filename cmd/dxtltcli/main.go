// Command dxtltcli drives the dxtlt byte-rearrangement transform from
// the command line: apply a fixed settings combination, run the
// brute-force auto-tuner, or inspect a single decoded block. It is the
// library's manual test harness, not a production tool — the same role
// cmd/gwebp plays for the teacher's library.
//
// Usage:
//
//	dxtltcli transform   --format bc1 --in raw.bin --out packed.bin [settings flags]
//	dxtltcli untransform --format bc1 --in packed.bin --out raw.bin [settings flags]
//	dxtltcli autotune    --format bc3 --in raw.bin --out packed.bin --estimator statistical
//	dxtltcli inspect     --format bc1 --in raw.bin --block 0
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "dxtltcli",
		Short:         "Apply, reverse, and auto-tune the dxtlt BCn byte-rearrangement transform",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose trial-by-trial logging")

	root.AddCommand(newTransformCmd(&verbose))
	root.AddCommand(newUntransformCmd(&verbose))
	root.AddCommand(newAutotuneCmd(&verbose))
	root.AddCommand(newInspectCmd())
	return root
}
