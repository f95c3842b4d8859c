package main

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ajwerner/avl/internal/logger"
)

const (
	// The prefix for configuration keys inside environment.
	envPrefix = "AVL"

	keyConfig         = "config"
	flagNameLogLevel  = "log-level"
	flagNameLogFormat = "log-format"
	flagVerifyEvery   = "verify-every"
)

type baseConfiguration struct {
	CfgFile   string
	LogLevel  string
	LogFormat string

	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	config := &baseConfiguration{log: zerolog.Nop()}
	root := &cobra.Command{
		Use:           "avlreplay",
		Short:         "Replay workloads against an AVL map",
		Long:          `avlreplay applies scripted or random insert/remove/get workloads to an AVL map, verifying its invariants and contents along the way.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.initializeConfig(cmd); err != nil {
				return errors.Wrap(err, "failed to initialize configuration")
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&config.CfgFile, keyConfig, "", "YAML config file with flag values")
	// No defaults so that the config file and environment can supply them.
	root.PersistentFlags().StringVar(&config.LogLevel, flagNameLogLevel, "", "logging level, one of: debug, info, warn, error (default info)")
	root.PersistentFlags().StringVar(&config.LogFormat, flagNameLogFormat, "", "log format, one of: console, json (default console)")

	root.AddCommand(newReplayCmd(config))
	root.AddCommand(newRandomCmd(config))
	return root
}

// initializeConfig reads the config file and environment variables, then
// builds the logger.
func (config *baseConfiguration) initializeConfig(cmd *cobra.Command) error {
	v := viper.New()
	if config.CfgFile != "" {
		v.SetConfigFile(config.CfgFile)
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "reading config file")
		}
	}

	// A flag like --verify-every binds to AVL_VERIFY_EVERY.
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := bindFlags(cmd, v); err != nil {
		return errors.Wrap(err, "binding flags")
	}

	log, err := logger.New(logger.Config{
		Level:  config.LogLevel,
		Format: config.LogFormat,
	}, cmd.ErrOrStderr())
	if err != nil {
		return errors.Wrap(err, "initializing logger")
	}
	config.log = log
	return nil
}

// bindFlags sets every flag the user did not pass from the config file or
// environment, when either has a value for it.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var result *multierror.Error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == keyConfig {
			return
		}
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "binding env to flag %q", f.Name))
				return
			}
		}
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "setting flag %q", f.Name))
			}
		}
	})
	return result.ErrorOrNil()
}
