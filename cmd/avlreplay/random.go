package main

import (
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ajwerner/avl/internal/replay"
)

type randomFlags struct {
	n           int
	seed        int64
	removeRatio float64
	verifyEvery int
	save        string
	progress    bool
}

func newRandomCmd(config *baseConfiguration) *cobra.Command {
	var flags randomFlags
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate and run a random workload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRandom(cmd, config, flags)
		},
	}
	cmd.Flags().IntVar(&flags.n, "n", 10000, "number of operations")
	cmd.Flags().Int64Var(&flags.seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&flags.removeRatio, "remove-ratio", 0.3, "fraction of operations that are removals")
	cmd.Flags().IntVar(&flags.verifyEvery, flagVerifyEvery, 100, "number of operations between full tree checks (0 checks only the final state)")
	cmd.Flags().StringVar(&flags.save, "save", "", "write the generated script to this file")
	cmd.Flags().BoolVar(&flags.progress, "progress", true, "show a progress bar")
	return cmd
}

func runRandom(cmd *cobra.Command, config *baseConfiguration, flags randomFlags) error {
	if flags.n < 0 {
		return errors.Errorf("--n must not be negative, got %d", flags.n)
	}
	if flags.removeRatio < 0 || flags.removeRatio > 0.9 {
		return errors.Errorf("--remove-ratio must be within [0, 0.9], got %v", flags.removeRatio)
	}
	s := replay.Random(flags.n, flags.seed, flags.removeRatio)
	if flags.save != "" {
		if err := replay.Save(flags.save, s); err != nil {
			return err
		}
		config.log.Debug().Str("path", flags.save).Msg("saved script")
	}

	runner := replay.Runner{
		VerifyEvery: flags.verifyEvery,
		Log:         config.log,
	}
	if flags.progress {
		bar := progressbar.NewOptions(flags.n,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("replaying"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(0),
		)
		runner.Progress = func(done int) { _ = bar.Set(done) }
		defer func() { _ = bar.Finish() }()
	}
	rep, err := runner.Run(s)
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), config, s.Name, rep)
	return nil
}
