package setter

import (
	"github.com/djdv/go-consoleargs/internal/generic"
	"github.com/djdv/go-consoleargs/parameter"
)

type (
	// Option is a functional option.
	// One can be returned by the various constructors
	// before being passed to [New].
	Option func(*settings) error

	settings struct {
		separator,
		defaultValue *string
		description,
		environment *string
		required    *bool
		locale      *parameter.Locale
		aliases     []string
	}
)

// WithSeparator sets the string placed between the name and the value.
// E.g. `--name:value` uses ":".
func WithSeparator(separator string) Option {
	return func(settings *settings) error {
		if err := generic.ErrIfOptionWasSet(
			"separator", settings.separator, (*string)(nil),
		); err != nil {
			return err
		}
		settings.separator = &separator
		return nil
	}
}

// WithDefault sets the value returned when the setter
// is absent from the arguments.
func WithDefault(value string) Option {
	return func(settings *settings) error {
		if err := generic.ErrIfOptionWasSet(
			"default value", settings.defaultValue, (*string)(nil),
		); err != nil {
			return err
		}
		settings.defaultValue = &value
		return nil
	}
}

// WithRequired causes Parse to return an error
// when the setter is absent from the arguments.
func WithRequired(required bool) Option {
	return func(settings *settings) error {
		if err := generic.ErrIfOptionWasSet(
			"required", settings.required, (*bool)(nil),
		); err != nil {
			return err
		}
		settings.required = &required
		return nil
	}
}

func WithDescription(description string) Option {
	return func(settings *settings) error {
		if err := generic.ErrIfOptionWasSet(
			"description", settings.description, (*string)(nil),
		); err != nil {
			return err
		}
		settings.description = &description
		return nil
	}
}

func WithLocale(locale *parameter.Locale) Option {
	return func(settings *settings) error {
		if err := generic.ErrIfOptionWasSet(
			"locale", settings.locale, (*parameter.Locale)(nil),
		); err != nil {
			return err
		}
		settings.locale = locale
		return nil
	}
}

// WithAliases registers additional names.
// Aliases accumulate if this option is provided more than once.
func WithAliases(aliases ...string) Option {
	return func(settings *settings) error {
		settings.aliases = append(settings.aliases, aliases...)
		return nil
	}
}

// WithEnvironment names a process environment variable
// that is used when no argument matches.
// Arguments always take precedence over the environment.
func WithEnvironment(key string) Option {
	return func(settings *settings) error {
		if err := generic.ErrIfOptionWasSet(
			"environment", settings.environment, (*string)(nil),
		); err != nil {
			return err
		}
		settings.environment = &key
		return nil
	}
}
