package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"yoth.dev/onekit-go"
	"yoth.dev/onekit-go/internal/config"
	"yoth.dev/onekit-go/internal/logger"
	"yoth.dev/onekit-go/wire"
)

type rootFlags struct {
	configPath string
	logLevel   string
	locale     string
	timezone   string
	remote     string
}

// app is what every command needs once flags are parsed.
type app struct {
	cfg    config.Config
	log    *logger.Logger
	env    wire.Env
	client *onekit.Client
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "onekit",
		Short:         "Format dates, durations and colors from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.locale, "locale", "", "Locale identifier, e.g. en_GB")
	cmd.PersistentFlags().StringVar(&flags.timezone, "timezone", "", "IANA time zone, e.g. Europe/Paris")
	cmd.PersistentFlags().StringVar(&flags.remote, "remote", "", "Format through a running service at this base URL")

	cmd.AddCommand(newDateCmd(flags))
	cmd.AddCommand(newDurationCmd(flags))
	cmd.AddCommand(newRelativeCmd(flags))
	cmd.AddCommand(newColorCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// load reads the configuration and applies flag overrides on top of it.
func (f *rootFlags) load(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.locale != "" {
		cfg.Locale = f.locale
	}
	if f.timezone != "" {
		cfg.Timezone = f.timezone
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	a := &app{
		cfg: cfg,
		log: log,
		env: wire.Env{Locale: cfg.LocaleValue(), Location: cfg.Location()},
	}
	if f.remote != "" {
		a.client = onekit.NewClient(onekit.WithBaseURL(f.remote), onekit.WithWorkerPoolSize(4))
	}
	return a, nil
}

func (a *app) close() {
	if a.client != nil {
		_ = a.client.Close()
	}
}

// calendarSpec fills the request calendar fields from the configuration so
// a remote service formats like a local run.
func (a *app) calendarSpec() wire.CalendarSpec {
	spec := wire.CalendarSpec{Locale: a.cfg.Locale, Timezone: a.cfg.Timezone}
	if spec.Locale == "" {
		spec.Locale = a.env.Locale.Identifier()
	}
	return spec
}

func (a *app) formatDate(ctx context.Context, req wire.DateRequest) (wire.TextResponse, error) {
	if a.client != nil {
		return a.client.FormatDate(ctx, req)
	}
	return wire.FormatDate(req, a.env)
}

func (a *app) formatDuration(ctx context.Context, req wire.DurationRequest) (wire.TextResponse, error) {
	if a.client != nil {
		return a.client.FormatDuration(ctx, req)
	}
	return wire.FormatDuration(req, a.env)
}

func (a *app) formatRelative(ctx context.Context, req wire.RelativeRequest) (wire.TextResponse, error) {
	if a.client != nil {
		return a.client.FormatRelative(ctx, req)
	}
	return wire.FormatRelative(req, a.env)
}

func (a *app) formatColor(ctx context.Context, req wire.ColorRequest) (wire.ColorResponse, error) {
	if a.client != nil {
		return a.client.FormatColor(ctx, req)
	}
	return wire.FormatColor(req)
}

// parseTime accepts RFC 3339 with or without a zone, and plain dates. Times
// without a zone are read in loc.
func parseTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05", time.DateOnly} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q, want RFC 3339 or YYYY-MM-DD", s)
}
