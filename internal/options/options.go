// Package options implements the generic functional-option plumbing shared
// by every package in this module that exposes a ...Option variadic
// constructor argument (body.Option, udf.DecodeOption): a single Option[T]
// function type parameterized over the config struct it mutates, so each
// call site only needs a type alias plus its own With* constructors.
package options

// Option mutates a configuration value of type T (always a pointer to a
// package-private Config struct in this module). Option is a plain function
// type rather than an interface, so a With* constructor can return one
// directly with no wrapper allocation.
type Option[T any] func(T) error

// New wraps a configuration function that can fail as an Option.
func New[T any](fn func(T) error) Option[T] {
	return Option[T](fn)
}

// NoError wraps a configuration function that cannot fail as an Option.
// Every With* constructor in this module uses this, since none of the
// current decode/body-parse knobs (strict mode, scaling, logger,
// decompression) can themselves be invalid.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)

		return nil
	}
}

// Apply runs each option against target in order, stopping at the first
// error. A nil Option is skipped rather than panicking, so a caller that
// conditionally omits an option (e.g. `if cond { opts = append(opts, nil) }`)
// degrades safely.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}
