package main

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/ajwerner/avl/internal/replay"
)

func newReplayCmd(config *baseConfiguration) *cobra.Command {
	var verifyEvery int
	cmd := &cobra.Command{
		Use:   "replay FILE...",
		Short: "Replay YAML workload scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result *multierror.Error
			for _, path := range args {
				if err := replayFile(cmd.OutOrStdout(), config, path, verifyEvery); err != nil {
					config.log.Error().Err(err).Str("script", path).Msg("replay failed")
					result = multierror.Append(result, err)
				}
			}
			return result.ErrorOrNil()
		},
	}
	cmd.Flags().IntVar(&verifyEvery, flagVerifyEvery, 1, "number of operations between full tree checks (0 checks only the final state)")
	return cmd
}

func replayFile(out io.Writer, config *baseConfiguration, path string, verifyEvery int) error {
	s, err := replay.Load(path)
	if err != nil {
		return err
	}
	rep, err := replay.Runner{
		VerifyEvery: verifyEvery,
		Log:         config.log,
	}.Run(s)
	if err != nil {
		return err
	}
	printReport(out, config, s.Name, rep)
	return nil
}

func printReport(out io.Writer, config *baseConfiguration, name string, rep replay.Report) {
	config.log.Info().
		Str("script", name).
		Int("ops", rep.Ops).
		Int("len", rep.FinalLen).
		Int("height", rep.MaxHeight).
		Msg("replayed")
	fmt.Fprintf(out, "%s: ops=%d inserts=%d removes=%d gets=%d misses=%d len=%d max-height=%d\n",
		name, rep.Ops, rep.Inserts, rep.Removes, rep.Gets, rep.Misses, rep.FinalLen, rep.MaxHeight)
}
