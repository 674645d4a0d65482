// histream inspects and produces histream files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/histream/arena"
	"github.com/wippyai/histream/stream"
)

const (
	cliName        = "histream"
	cliDescription = "inspect and produce histream binary files"
)

var verbose bool

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           cliName,
		Short:         cliDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			stream.SetLogger(l)
			return nil
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log writer and arena activity")
	cmd.AddCommand(
		newProbeCommand(),
		newStatsCommand(),
		newInspectCommand(),
		newSampleCommand(),
	)
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openFile reads a stream file into an aligned buffer so typed arrays can
// be viewed without copying.
func openFile(path string) (*stream.Stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	s, err := stream.Open(arena.Aligned(data))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := s.Header().Validate(); err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return s, nil
}
