package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bjaus/calcom"
)

var replacer = strings.NewReplacer(".", "_", "-", "_")

// app holds what every subcommand shares: bound settings and the logger.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "calcom",
		Short:         "Call the Cal.com public API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.v.GetString("log-format"), a.v.GetInt("verbose"))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "path to a YAML configuration file")
	flags.String("host", "", "API base URL (default "+calcom.DefaultHost+")")
	flags.String("api-key", "", "API key sent as the apiKey query parameter")
	flags.Duration("timeout", 0, "per-call timeout")
	flags.Float64("rate", 0, "maximum requests per second (0 disables pacing)")
	flags.CountP("verbose", "v", "increase log verbosity")
	flags.String("log-format", "text", "log format: text or json")

	a.v.SetEnvPrefix("CALCOM")
	a.v.SetEnvKeyReplacer(replacer)
	a.v.AutomaticEnv()
	_ = a.v.BindPFlags(flags)

	cmd.AddCommand(
		newAvailabilityCmd(a),
		newUsersCmd(a),
		newWebhooksCmd(a),
		newBookingReferencesCmd(a),
		newSpecCmd(),
		newDocsCmd(a),
	)

	return cmd
}

// newLogger builds the CLI logger. Each -v lowers the level by one step,
// starting from warnings.
func newLogger(w io.Writer, format string, verbosity int) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelWarn - slog.Level(verbosity*4),
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// config resolves the client configuration: file, then defaults, then flags
// and environment.
func (a *app) config() (*calcom.Config, error) {
	cfg, err := calcom.LoadConfig(a.v.GetString("config"))
	if err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	if host := a.v.GetString("host"); host != "" {
		cfg.Hosts = []string{host}
	}
	if key := a.v.GetString("api-key"); key != "" {
		cfg.APIKey = key
	}
	if d := a.v.GetDuration("timeout"); d > 0 {
		cfg.Timeout = calcom.Scalar(d)
	}
	return cfg, nil
}

func (a *app) client() (*calcom.Client, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}

	mw := []calcom.Middleware{
		calcom.Recovery(),
		calcom.RequestID(),
		calcom.Logger(a.logger),
	}
	if r := a.v.GetFloat64("rate"); r > 0 {
		mw = append(mw, calcom.RateLimit(calcom.RateLimitConfig{Rate: r, Burst: 1}))
	}
	if cfg.MaxResponseBytes > 0 {
		mw = append(mw, calcom.BodyLimit(cfg.MaxResponseBytes))
	}

	c, err := calcom.New(cfg,
		calcom.WithLogger(a.logger),
		calcom.WithMiddleware(mw...),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create client")
	}
	return c, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "write output")
}
