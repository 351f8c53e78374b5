// Package wire holds the JSON request and response types of the formatting
// service and turns their declarative option specs into formatter option
// sequences.
package wire

import (
	"errors"
	"time"
)

var (
	// ErrInvalidOption is wrapped by every error about a malformed option
	// spec, e.g. an unknown style name.
	ErrInvalidOption = errors.New("invalid option")
	// ErrInvalidRequest is wrapped when a request is structurally wrong.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNoResult reports a request whose formatter produced no value.
	ErrNoResult = errors.New("no result")
)

// CalendarSpec selects locale and time zone. Empty fields take the service
// defaults.
type CalendarSpec struct {
	Locale   string `json:"locale,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// DateOptions mirrors the datefmt options. A format or template overrides
// the styles.
type DateOptions struct {
	CalendarSpec
	DateStyle string `json:"date_style,omitempty"`
	TimeStyle string `json:"time_style,omitempty"`
	Format    string `json:"format,omitempty"`
	Template  string `json:"template,omitempty"`
	Relative  bool   `json:"relative,omitempty"`
}

// DateRequest formats Date, or parses Parse when set.
type DateRequest struct {
	Date    *time.Time  `json:"date,omitempty"`
	Parse   string      `json:"parse,omitempty"`
	Options DateOptions `json:"options"`
}

// DurationOptions mirrors the durationfmt options. Units and Zero are lists
// of names combined into a set.
type DurationOptions struct {
	CalendarSpec
	Units       []string `json:"units,omitempty"`
	Style       string   `json:"style,omitempty"`
	MaxUnits    int      `json:"max_units,omitempty"`
	Zero        []string `json:"zero,omitempty"`
	Fractional  bool     `json:"fractional,omitempty"`
	Collapse    bool     `json:"collapse,omitempty"`
	Approximate bool     `json:"approximate,omitempty"`
	Remaining   bool     `json:"remaining,omitempty"`
}

// DurationRequest describes an interval in exactly one of three ways: a
// From/To pair, a number of seconds, or unit components.
type DurationRequest struct {
	From       *time.Time      `json:"from,omitempty"`
	To         *time.Time      `json:"to,omitempty"`
	Seconds    *float64        `json:"seconds,omitempty"`
	Components map[string]int  `json:"components,omitempty"`
	Options    DurationOptions `json:"options"`
}

// RelativeOptions mirrors the relativefmt options.
type RelativeOptions struct {
	CalendarSpec
	Style string `json:"style,omitempty"`
	Named bool   `json:"named,omitempty"`
}

// RelativeRequest describes Date against Reference, which defaults to now.
// Seconds, when set, replaces Date with an offset from now.
type RelativeRequest struct {
	Date      *time.Time      `json:"date,omitempty"`
	Reference *time.Time      `json:"reference,omitempty"`
	Seconds   *float64        `json:"seconds,omitempty"`
	Options   RelativeOptions `json:"options"`
}

// ColorRequest parses Hex and optionally adjusts its brightness.
type ColorRequest struct {
	Hex     string   `json:"hex"`
	Alpha   *float64 `json:"alpha,omitempty"`
	Lighten float64  `json:"lighten,omitempty"`
	Darken  float64  `json:"darken,omitempty"`
	Clamp   bool     `json:"clamp,omitempty"`
}

// TextResponse carries formatted text, or a parsed date.
type TextResponse struct {
	Text string     `json:"text,omitempty"`
	Date *time.Time `json:"date,omitempty"`
}

type ColorResponse struct {
	Hex        string  `json:"hex"`
	Red        int     `json:"red"`
	Green      int     `json:"green"`
	Blue       int     `json:"blue"`
	Alpha      float64 `json:"alpha"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
}

// BatchItem holds exactly one request.
type BatchItem struct {
	Date     *DateRequest     `json:"date,omitempty"`
	Duration *DurationRequest `json:"duration,omitempty"`
	Relative *RelativeRequest `json:"relative,omitempty"`
	Color    *ColorRequest    `json:"color,omitempty"`
}

// BatchResult is the outcome of one BatchItem. Error is set instead of a
// value when the item failed.
type BatchResult struct {
	Text  string         `json:"text,omitempty"`
	Date  *time.Time     `json:"date,omitempty"`
	Color *ColorResponse `json:"color,omitempty"`
	Error string         `json:"error,omitempty"`
}

type BatchRequest struct {
	Items []BatchItem `json:"items"`
}

type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	ActiveWorkers int64  `json:"active_workers"`
	MaxWorkers    int    `json:"max_workers"`
}
