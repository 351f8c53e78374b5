package wire

import (
	"errors"
	"fmt"
	"time"

	"yoth.dev/onekit-go/calendar"
	"yoth.dev/onekit-go/colors"
	"yoth.dev/onekit-go/datefmt"
	"yoth.dev/onekit-go/durationfmt"
	"yoth.dev/onekit-go/relativefmt"
)

// FormatDate formats req.Date, or parses req.Parse, with a fresh formatter.
func FormatDate(req DateRequest, env Env) (TextResponse, error) {
	options, err := req.Options.Options(env)
	if err != nil {
		return TextResponse{}, err
	}
	f := datefmt.New(options...)

	if req.Parse != "" {
		t, ok := f.Parse(req.Parse)
		if !ok {
			return TextResponse{}, fmt.Errorf("%w: %q does not match %q", ErrNoResult, req.Parse, f.DateFormat())
		}
		return TextResponse{Date: &t}, nil
	}

	if req.Date == nil {
		return TextResponse{}, fmt.Errorf("%w: date or parse is required", ErrInvalidRequest)
	}
	return TextResponse{Text: f.String(*req.Date)}, nil
}

// FormatDuration formats the interval described by req.
func FormatDuration(req DurationRequest, env Env) (TextResponse, error) {
	options, err := req.Options.Options(env)
	if err != nil {
		return TextResponse{}, err
	}
	f := durationfmt.New(options...)

	var (
		text string
		ok   bool
	)
	switch {
	case req.From != nil && req.To != nil && req.Seconds == nil && req.Components == nil:
		text, ok = f.StringBetween(*req.From, *req.To)
	case req.Seconds != nil && req.From == nil && req.To == nil && req.Components == nil:
		text, ok = f.StringFromDuration(seconds(*req.Seconds))
	case req.Components != nil && req.From == nil && req.To == nil && req.Seconds == nil:
		comps, err := components(req.Components)
		if err != nil {
			return TextResponse{}, err
		}
		text, ok = f.StringFromComponents(comps)
	default:
		return TextResponse{}, fmt.Errorf("%w: give from and to, seconds, or components", ErrInvalidRequest)
	}

	if !ok {
		return TextResponse{}, fmt.Errorf("%w: no allowed unit can describe the interval", ErrNoResult)
	}
	return TextResponse{Text: text}, nil
}

// FormatRelative describes req.Date relative to req.Reference.
func FormatRelative(req RelativeRequest, env Env) (TextResponse, error) {
	options, err := req.Options.Options(env)
	if err != nil {
		return TextResponse{}, err
	}
	f := relativefmt.New(options...)

	reference := env.now()
	if req.Reference != nil {
		reference = *req.Reference
	}

	switch {
	case req.Seconds != nil && req.Date == nil:
		return TextResponse{Text: f.String(reference.Add(seconds(*req.Seconds)), reference)}, nil
	case req.Date != nil && req.Seconds == nil:
		return TextResponse{Text: f.String(*req.Date, reference)}, nil
	}
	return TextResponse{}, fmt.Errorf("%w: give date or seconds", ErrInvalidRequest)
}

// FormatColor parses req.Hex and applies the requested brightness change.
func FormatColor(req ColorRequest) (ColorResponse, error) {
	alpha := 1.0
	if req.Alpha != nil {
		alpha = *req.Alpha
	}

	c, ok := colors.Hex(req.Hex, alpha)
	if !ok {
		return ColorResponse{}, fmt.Errorf("%w: hex %q", ErrInvalidRequest, req.Hex)
	}

	if req.Lighten != 0 {
		c = c.Lightened(req.Lighten, req.Clamp)
	}
	if req.Darken != 0 {
		c = c.Darkened(req.Darken, req.Clamp)
	}

	return NewColorResponse(c), nil
}

func NewColorResponse(c colors.Color) ColorResponse {
	r, g, b := c.RGB255()
	h, s, v := c.HSB()
	return ColorResponse{
		Hex:        c.Hex6(),
		Red:        r,
		Green:      g,
		Blue:       b,
		Alpha:      c.A,
		Hue:        h,
		Saturation: s,
		Brightness: v,
	}
}

// Execute runs the single request held by item. Failures are reported in
// the result, not as an error.
func (item BatchItem) Execute(env Env) BatchResult {
	var (
		result BatchResult
		err    error
	)

	switch {
	case item.count() != 1:
		err = fmt.Errorf("%w: a batch item holds exactly one request", ErrInvalidRequest)
	case item.Date != nil:
		var resp TextResponse
		resp, err = FormatDate(*item.Date, env)
		result.Text, result.Date = resp.Text, resp.Date
	case item.Duration != nil:
		var resp TextResponse
		resp, err = FormatDuration(*item.Duration, env)
		result.Text = resp.Text
	case item.Relative != nil:
		var resp TextResponse
		resp, err = FormatRelative(*item.Relative, env)
		result.Text = resp.Text
	case item.Color != nil:
		var resp ColorResponse
		resp, err = FormatColor(*item.Color)
		result.Color = &resp
	}

	if err != nil {
		return BatchResult{Error: err.Error()}
	}
	return result
}

func (item BatchItem) count() int {
	n := 0
	for _, set := range []bool{item.Date != nil, item.Duration != nil, item.Relative != nil, item.Color != nil} {
		if set {
			n++
		}
	}
	return n
}

// IsClientError reports whether err was caused by the request contents.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidOption) || errors.Is(err, ErrInvalidRequest)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func components(values map[string]int) (calendar.Components, error) {
	var comps calendar.Components
	for name, v := range values {
		unit, err := ParseUnit(name)
		if err != nil {
			return comps, err
		}
		comps.Set(unit, v)
	}
	return comps, nil
}
