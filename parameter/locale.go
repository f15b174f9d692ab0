package parameter

import (
	"fmt"
	"strings"
)

type (
	// MessageSource produces user facing text for a parameter.
	// Additional arguments depend on the message;
	// see the fields of [Locale].
	MessageSource interface {
		Message(param Parameter, args ...string) string
	}

	// Template is a fixed message in which every occurrence of
	// [NamePlaceholder] is replaced with the parameter's primary name,
	// and [AliasPlaceholder] with the first additional argument (if any).
	Template string

	// MessageFunc computes a message from the parameter
	// (and any additional arguments) each time it's needed.
	MessageFunc func(param Parameter, args ...string) string

	// Locale supplies the error messages of a parameter.
	// Locales are shared between parameters, not owned by them.
	// Nil fields (and nil Locales) use the text of [DefaultLocale].
	Locale struct {
		// AliasExists receives the offending alias as its first argument.
		AliasExists MessageSource
		// UndefinedParameter receives no additional arguments.
		UndefinedParameter MessageSource
	}
)

// Placeholders substituted within a [Template].
const (
	NamePlaceholder  = "%param_name%"
	AliasPlaceholder = "%alias%"
)

var defaultLocale = Locale{
	AliasExists: MessageFunc(func(param Parameter, args ...string) string {
		var alias string
		if len(args) > 0 {
			alias = args[0]
		}
		return fmt.Sprintf("parameter \"%s\" already has a name \"%s\"",
			param.Name(), alias,
		)
	}),
	UndefinedParameter: Template("required parameter \"" + NamePlaceholder + "\" was not provided"),
}

func (tmpl Template) Message(param Parameter, args ...string) string {
	replacements := []string{NamePlaceholder, param.Name()}
	if len(args) > 0 {
		replacements = append(replacements, AliasPlaceholder, args[0])
	}
	return strings.NewReplacer(replacements...).Replace(string(tmpl))
}

func (fn MessageFunc) Message(param Parameter, args ...string) string {
	return fn(param, args...)
}

// DefaultLocale returns a new Locale with English messages.
func DefaultLocale() *Locale {
	locale := defaultLocale
	return &locale
}

// DuplicateAlias returns a [*DuplicateAliasError] for param,
// with a message from the AliasExists source.
func (locale *Locale) DuplicateAlias(param Parameter, alias string) error {
	source := defaultLocale.AliasExists
	if locale != nil && locale.AliasExists != nil {
		source = locale.AliasExists
	}
	return &DuplicateAliasError{
		Name:    param.Name(),
		Alias:   alias,
		message: source.Message(param, alias),
	}
}

// MissingRequired returns a [*MissingRequiredError] for param,
// with a message from the UndefinedParameter source.
func (locale *Locale) MissingRequired(param Parameter) error {
	source := defaultLocale.UndefinedParameter
	if locale != nil && locale.UndefinedParameter != nil {
		source = locale.UndefinedParameter
	}
	return &MissingRequiredError{
		Name:    param.Name(),
		message: source.Message(param),
	}
}
