package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"yoth.dev/onekit-go/wire"
)

type dateFlags struct {
	format    string
	template  string
	dateStyle string
	timeStyle string
	relative  bool
	parse     bool
}

func newDateCmd(root *rootFlags) *cobra.Command {
	flags := &dateFlags{}

	cmd := &cobra.Command{
		Use:   "date [TIME]",
		Short: "Format a date, or parse one with --parse",
		Long: "Format TIME (RFC 3339 or YYYY-MM-DD, default now) with an LDML pattern,\n" +
			"a localized template or date and time styles.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.load(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			req := wire.DateRequest{Options: wire.DateOptions{
				CalendarSpec: a.calendarSpec(),
				DateStyle:    flags.dateStyle,
				TimeStyle:    flags.timeStyle,
				Format:       flags.format,
				Template:     flags.template,
				Relative:     flags.relative,
			}}

			switch {
			case flags.parse && len(args) == 0:
				return errors.New("--parse needs the text to parse")
			case flags.parse:
				req.Parse = args[0]
			case len(args) == 1:
				t, err := parseTime(args[0], a.env.Location)
				if err != nil {
					return err
				}
				req.Date = &t
			default:
				now := time.Now()
				req.Date = &now
			}

			resp, err := a.formatDate(cmd.Context(), req)
			if err != nil {
				return err
			}
			if resp.Date != nil {
				fmt.Fprintln(cmd.OutOrStdout(), resp.Date.Format(time.RFC3339))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "LDML pattern, e.g. yyyy-MM-dd")
	cmd.Flags().StringVarP(&flags.template, "template", "t", "", "Localized template, e.g. yMMMMd")
	cmd.Flags().StringVar(&flags.dateStyle, "date-style", "", "none, short, medium, long or full")
	cmd.Flags().StringVar(&flags.timeStyle, "time-style", "", "none, short, medium, long or full")
	cmd.Flags().BoolVar(&flags.relative, "relative", false, "Say today, yesterday or tomorrow where it applies")
	cmd.Flags().BoolVar(&flags.parse, "parse", false, "Parse TIME with the pattern and print it as RFC 3339")

	return cmd
}

type durationFlags struct {
	units       []string
	style       string
	maxUnits    int
	zero        []string
	fractional  bool
	collapse    bool
	approximate bool
	remaining   bool
}

func newDurationCmd(root *rootFlags) *cobra.Command {
	flags := &durationFlags{}

	cmd := &cobra.Command{
		Use:   "duration DURATION | FROM TO",
		Short: "Describe a length of time",
		Long: "Describe DURATION (Go syntax, e.g. 76h30m) or the interval between two\n" +
			"times, counting calendar units between them.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.load(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			req := wire.DurationRequest{Options: wire.DurationOptions{
				CalendarSpec: a.calendarSpec(),
				Units:        flags.units,
				Style:        flags.style,
				MaxUnits:     flags.maxUnits,
				Zero:         flags.zero,
				Fractional:   flags.fractional,
				Collapse:     flags.collapse,
				Approximate:  flags.approximate,
				Remaining:    flags.remaining,
			}}

			if len(args) == 1 {
				d, err := time.ParseDuration(args[0])
				if err != nil {
					return err
				}
				seconds := d.Seconds()
				req.Seconds = &seconds
			} else {
				from, err := parseTime(args[0], a.env.Location)
				if err != nil {
					return err
				}
				to, err := parseTime(args[1], a.env.Location)
				if err != nil {
					return err
				}
				req.From, req.To = &from, &to
			}

			resp, err := a.formatDuration(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&flags.units, "units", "u", nil, "Allowed units, e.g. day,hour,minute")
	cmd.Flags().StringVarP(&flags.style, "style", "s", "", "positional, abbreviated, short, full, spellout or brief")
	cmd.Flags().IntVarP(&flags.maxUnits, "max-units", "m", 0, "Show at most this many units")
	cmd.Flags().StringSliceVar(&flags.zero, "zero", nil, "Zero handling, e.g. drop_leading,pad")
	cmd.Flags().BoolVar(&flags.fractional, "fractional", false, "Allow a fractional last unit")
	cmd.Flags().BoolVar(&flags.collapse, "collapse", false, "Collapse a largest unit of one into the next")
	cmd.Flags().BoolVar(&flags.approximate, "approximate", false, "Prefix with About")
	cmd.Flags().BoolVar(&flags.remaining, "remaining", false, "Suffix with remaining")

	return cmd
}

type relativeFlags struct {
	reference string
	seconds   float64
	style     string
	named     bool
}

func newRelativeCmd(root *rootFlags) *cobra.Command {
	flags := &relativeFlags{}

	cmd := &cobra.Command{
		Use:   "relative [TIME]",
		Short: "Describe a time relative to now, e.g. in 2 days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.load(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			req := wire.RelativeRequest{Options: wire.RelativeOptions{
				CalendarSpec: a.calendarSpec(),
				Style:        flags.style,
				Named:        flags.named,
			}}

			if flags.reference != "" {
				ref, err := parseTime(flags.reference, a.env.Location)
				if err != nil {
					return err
				}
				req.Reference = &ref
			}

			switch {
			case len(args) == 1 && cmd.Flags().Changed("seconds"):
				return errors.New("give TIME or --seconds, not both")
			case len(args) == 1:
				t, err := parseTime(args[0], a.env.Location)
				if err != nil {
					return err
				}
				req.Date = &t
			case cmd.Flags().Changed("seconds"):
				req.Seconds = &flags.seconds
			default:
				return errors.New("give TIME or --seconds")
			}

			resp, err := a.formatRelative(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.reference, "reference", "r", "", "Reference time, default now")
	cmd.Flags().Float64Var(&flags.seconds, "seconds", 0, "Offset from the reference in seconds")
	cmd.Flags().StringVarP(&flags.style, "style", "s", "", "full, short, abbreviated or spellout")
	cmd.Flags().BoolVar(&flags.named, "named", false, "Prefer words like yesterday and next week")

	return cmd
}
