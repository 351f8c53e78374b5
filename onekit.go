// Package onekit is a set of conveniences over dates, durations, colors,
// maps, sizes and fonts. Formatters in the datefmt, durationfmt and
// relativefmt packages are configured declaratively with option sequences:
//
//	f := datefmt.New(datefmt.DateFormat("yyyy/MM/dd"))
//	f.String(t) // "2020/06/20"
//
// Options apply in order, so a later option overrides an earlier one that
// touches the same property.
package onekit

import "yoth.dev/onekit-go/internal"

// Option is a deferred change to a *T. Options never read their target
// before being applied and can be shared between goroutines.
type Option[T any] = internal.Option[T]

// Make wraps an arbitrary effect as an option.
func Make[T any](effect func(*T)) Option[T] {
	return internal.Make(effect)
}

// Apply applies options to target in order. Nil options are skipped.
func Apply[T any](target *T, options ...Option[T]) {
	internal.ApplyOptions(target, options...)
}
