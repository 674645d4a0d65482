package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wippyai/histream/stream"
)

func newProbeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probe FILE...",
		Short: "check whether files are histream streams by reading their header",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd.OutOrStdout(), args)
		},
	}
}

func runProbe(out io.Writer, files []string) error {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()

	failed := 0
	for _, path := range files {
		h, err := probeFile(path)
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(out, "%s: %s (%v)\n", path, bad("not a histream"), err)
		case !h.Valid():
			failed++
			fmt.Fprintf(out, "%s: %s (magic %q)\n", path, bad("not a histream"), h.MagicString())
		default:
			fmt.Fprintf(out, "%s: %s magic=%s tags@%d count=%d\n",
				path, ok("ok"), h.MagicString(), h.RemapOffset, h.RemapCount)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files are not histream streams", failed, len(files))
	}
	return nil
}

func probeFile(path string) (stream.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return stream.Header{}, err
	}
	defer f.Close()
	return stream.Probe(f)
}
