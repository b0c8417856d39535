package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/subarray/maxsub"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envPrefix = "MAXSUB"

	keyValues = "values"
	keyFormat = "format"

	formatText = "text"
	formatJSON = "json"
)

// referenceValues is the demonstration sequence solved when no values are given.
var referenceValues = []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}

// newLogger builds the command logger. Tests replace it with zap.NewNop.
var newLogger = func(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// rootOptions holds the flag-only settings; everything else goes through viper.
type rootOptions struct {
	cfgFile string
	verbose bool
	logger  *zap.Logger
	v       *viper.Viper
}

// newRootCmd returns a fresh root command with its own viper instance.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "maxsub",
		Short: "Find the maximum-sum contiguous run of daily profit/loss figures",
		Long: `maxsub solves the maximum subarray problem with the divide-and-conquer
algorithm and prints the best run using 1-based day indices.

Configuration sources (highest priority first):
  1. Command-line flags (--values, --format)
  2. Environment variables (MAXSUB_VALUES, MAXSUB_FORMAT)
  3. Config file given with --config (YAML: values: "-2,1,-3", format: json)
  4. Built-in reference sequence -2,1,-3,4,-1,2,1,-5,4

Examples:
  maxsub
  maxsub --values=-3,-1,-2
  maxsub --values=1,2,3 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			opts.logger, err = newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return opts.initConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	flags := cmd.Flags()
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.String(keyValues, "", "comma-separated integer sequence (default: reference sequence)")
	flags.StringP(keyFormat, "f", formatText, "output format (text, json)")
	_ = opts.v.BindPFlag(keyValues, flags.Lookup(keyValues))
	_ = opts.v.BindPFlag(keyFormat, flags.Lookup(keyFormat))

	return cmd
}

// initConfig layers env variables and the optional config file under the flags.
func (o *rootOptions) initConfig() error {
	o.v.SetEnvPrefix(envPrefix)
	o.v.AutomaticEnv()

	if o.cfgFile == "" {
		return nil
	}
	o.v.SetConfigFile(o.cfgFile)
	if err := o.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", o.cfgFile, err)
	}
	o.logger.Debug("Using config file", zap.String("path", o.v.ConfigFileUsed()))
	return nil
}

func (o *rootOptions) run(cmd *cobra.Command) error {
	values, err := o.values()
	if err != nil {
		return err
	}

	format := o.v.GetString(keyFormat)
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
	}

	o.logger.Debug("Solving", zap.Int("n", len(values)), zap.String("format", format))
	res, err := maxsub.Solve(values)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	o.logger.Debug("Solved",
		zap.Int("start", res.Start),
		zap.Int("end", res.End),
		zap.Int("sum", res.Sum))

	out := cmd.OutOrStdout()
	if format == formatJSON {
		return json.NewEncoder(out).Encode(res)
	}
	_, err = fmt.Fprintln(out, res)
	return err
}

// values resolves the input sequence. Flags and env variables carry a
// comma-separated string; a config file may also hold a YAML list.
func (o *rootOptions) values() ([]int, error) {
	if !o.v.IsSet(keyValues) {
		return referenceValues, nil
	}
	if list, ok := o.v.Get(keyValues).([]interface{}); ok {
		return parseList(list)
	}
	return parseValues(o.v.GetString(keyValues))
}

// parseList converts a YAML list element by element. Only whole numbers
// are accepted; floats and strings fail instead of being truncated.
func parseList(list []interface{}) ([]int, error) {
	values := make([]int, 0, len(list))
	for _, e := range list {
		token := fmt.Sprint(e)
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", token, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// parseValues splits a comma-separated list of integers.
// Surrounding spaces are ignored; an all-blank list yields an empty slice.
func parseValues(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []int{}, nil
	}

	fields := strings.Split(raw, ",")
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}
