package wire

import (
	"fmt"
	"strings"
	"time"

	"yoth.dev/onekit-go/calendar"
	"yoth.dev/onekit-go/datefmt"
	"yoth.dev/onekit-go/durationfmt"
	"yoth.dev/onekit-go/locale"
	"yoth.dev/onekit-go/relativefmt"
)

// Env supplies what a request leaves unset.
type Env struct {
	Locale   locale.Locale
	Location *time.Location
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func (e Env) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock()
}

// Calendar resolves the spec against env.
func (s CalendarSpec) Calendar(env Env) (calendar.Calendar, error) {
	loc := env.Locale
	if s.Locale != "" {
		parsed, err := locale.Parse(s.Locale)
		if err != nil {
			return calendar.Calendar{}, fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}
		loc = parsed
	}

	zone := env.Location
	if s.Timezone != "" {
		parsed, err := time.LoadLocation(s.Timezone)
		if err != nil {
			return calendar.Calendar{}, fmt.Errorf("%w: timezone %q", ErrInvalidOption, s.Timezone)
		}
		zone = parsed
	}

	options := []calendar.Option{calendar.WithLocale(loc), calendar.WithLocation(zone)}
	if env.Clock != nil {
		options = append(options, calendar.WithClock(env.Clock))
	}
	return calendar.New(options...), nil
}

// Options returns the datefmt option sequence for the spec. Styles come
// before the explicit format so that a format wins.
func (o DateOptions) Options(env Env) ([]datefmt.Option, error) {
	cal, err := o.Calendar(env)
	if err != nil {
		return nil, err
	}

	options := []datefmt.Option{datefmt.Calendar(cal), datefmt.Locale(cal.Locale())}

	for _, style := range []struct {
		name string
		set  func(datefmt.Style) datefmt.Option
	}{
		{o.DateStyle, datefmt.DateStyle},
		{o.TimeStyle, datefmt.TimeStyle},
	} {
		if style.name == "" {
			continue
		}
		s, ok := datefmt.ParseStyle(style.name)
		if !ok {
			return nil, fmt.Errorf("%w: style %q", ErrInvalidOption, style.name)
		}
		options = append(options, style.set(s))
	}

	if o.Format != "" {
		options = append(options, datefmt.DateFormat(o.Format))
	}
	if o.Template != "" {
		options = append(options, datefmt.DateFormatTemplate(o.Template))
	}
	if o.Relative {
		options = append(options, datefmt.DoesRelativeDateFormatting(true))
	}

	return options, nil
}

// Options returns the durationfmt option sequence for the spec.
func (o DurationOptions) Options(env Env) ([]durationfmt.Option, error) {
	cal, err := o.Calendar(env)
	if err != nil {
		return nil, err
	}

	options := []durationfmt.Option{durationfmt.Calendar(cal)}

	if len(o.Units) > 0 {
		var units durationfmt.Unit
		for _, name := range o.Units {
			unit, err := ParseUnit(name)
			if err != nil {
				return nil, err
			}
			units |= unit
		}
		options = append(options, durationfmt.AllowedUnits(units))
	}

	if o.Style != "" {
		style, ok := durationfmt.ParseStyle(o.Style)
		if !ok {
			return nil, fmt.Errorf("%w: style %q", ErrInvalidOption, o.Style)
		}
		options = append(options, durationfmt.UnitsStyle(style))
	}

	if len(o.Zero) > 0 {
		var behavior durationfmt.ZeroBehavior
		for _, name := range o.Zero {
			z, ok := zeroBehaviors[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("%w: zero behavior %q", ErrInvalidOption, name)
			}
			behavior |= z
		}
		options = append(options, durationfmt.ZeroFormattingBehavior(behavior))
	}

	if o.MaxUnits != 0 {
		options = append(options, durationfmt.MaximumUnitCount(o.MaxUnits))
	}

	return append(options,
		durationfmt.AllowsFractionalUnits(o.Fractional),
		durationfmt.CollapsesLargestUnit(o.Collapse),
		durationfmt.IncludesApproximationPhrase(o.Approximate),
		durationfmt.IncludesTimeRemainingPhrase(o.Remaining),
	), nil
}

var zeroBehaviors = map[string]durationfmt.ZeroBehavior{
	"default":       durationfmt.Default,
	"drop_leading":  durationfmt.DropLeading,
	"drop_middle":   durationfmt.DropMiddle,
	"drop_trailing": durationfmt.DropTrailing,
	"drop_all":      durationfmt.DropAll,
	"pad":           durationfmt.Pad,
	"drop_none":     durationfmt.DropNone,
}

// Options returns the relativefmt option sequence for the spec.
func (o RelativeOptions) Options(env Env) ([]relativefmt.Option, error) {
	cal, err := o.Calendar(env)
	if err != nil {
		return nil, err
	}

	options := []relativefmt.Option{relativefmt.Calendar(cal), relativefmt.Locale(cal.Locale())}

	if o.Style != "" {
		style, ok := relativefmt.ParseStyle(o.Style)
		if !ok {
			return nil, fmt.Errorf("%w: style %q", ErrInvalidOption, o.Style)
		}
		options = append(options, relativefmt.UnitsStyle(style))
	}
	if o.Named {
		options = append(options, relativefmt.DateTimeStyle(relativefmt.Named))
	}

	return options, nil
}

// ParseUnit accepts calendar unit names plus "week" for the week of month.
func ParseUnit(name string) (calendar.Unit, error) {
	switch strings.ToLower(name) {
	case "week", "weeks":
		return calendar.WeekOfMonth, nil
	}

	unit, ok := calendar.ParseUnit(strings.TrimSuffix(name, "s"))
	if !ok {
		return 0, fmt.Errorf("%w: unit %q", ErrInvalidOption, name)
	}
	return unit, nil
}
