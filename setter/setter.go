// Package setter implements value carrying command-line parameters.
//
// A setter recognizes arguments of the form `<name><separator><value>`,
// e.g. `--output=file.txt`, and claims every occurrence of them
// from the arguments it's given.
package setter

import (
	"os"
	"strings"

	"github.com/djdv/go-consoleargs/internal/generic"
	"github.com/djdv/go-consoleargs/parameter"
	logging "github.com/ipfs/go-log"
	"golang.org/x/exp/slices"
)

// Setter is a [parameter.Parameter] which extracts
// the values of `name=value` style arguments.
type Setter struct {
	names        []string
	separator    string
	defaultValue string
	hasDefault   bool
	required     bool
	description  string
	environment  string
	locale       *parameter.Locale
}

// DefaultSeparator is placed between a name and its value
// unless [WithSeparator] is provided.
const DefaultSeparator = "="

var (
	log = logging.Logger("setter")

	_ parameter.Parameter = (*Setter)(nil)
)

// New creates a setter whose primary name is name.
// Names are matched literally, including any leading dashes.
func New(name string, options ...Option) (*Setter, error) {
	var settings settings
	if err := generic.ApplyOptions(&settings, options...); err != nil {
		return nil, err
	}
	setter := &Setter{
		names:     []string{name},
		separator: DefaultSeparator,
		locale:    settings.locale,
	}
	if description := settings.description; description != nil {
		setter.description = *description
	}
	if key := settings.environment; key != nil {
		setter.environment = *key
	}
	if separator := settings.separator; separator != nil {
		setter.separator = *separator
	}
	if dflt := settings.defaultValue; dflt != nil {
		setter.defaultValue = *dflt
		setter.hasDefault = true
	}
	if required := settings.required; required != nil {
		setter.required = *required
	}
	if setter.locale == nil {
		setter.locale = parameter.DefaultLocale()
	}
	for _, alias := range settings.aliases {
		if _, err := setter.AddAlias(alias); err != nil {
			return nil, err
		}
	}
	return setter, nil
}

// FromIdentifier creates a setter whose primary name
// is derived from a Go identifier.
// E.g. `ServerPort` is matched as `--server-port=value`.
func FromIdentifier(identifier string, options ...Option) (*Setter, error) {
	return New(parameter.CommandLineName(identifier), options...)
}

func (s *Setter) Name() string       { return s.names[0] }
func (s *Setter) Aliases() []string   { return generic.CloneSlice(s.names[1:]) }
func (s *Setter) Description() string { return s.description }
func (s *Setter) Separator() string   { return s.separator }
func (s *Setter) Required() bool      { return s.required }

// Names returns the primary name followed by any aliases.
func (s *Setter) Names() []string { return generic.CloneSlice(s.names) }

// DefaultValue returns the default value,
// and whether one was provided.
func (s *Setter) DefaultValue() (string, bool) { return s.defaultValue, s.hasDefault }

func (s *Setter) SetDescription(description string) parameter.Parameter {
	s.description = description
	return s
}

// SetLocale replaces the setter's locale.
// A nil locale restores the default messages.
func (s *Setter) SetLocale(locale *parameter.Locale) parameter.Parameter {
	s.locale = locale
	return s
}

// AddAlias registers an additional name for the setter.
// The setter is returned even if an error is.
func (s *Setter) AddAlias(name string) (parameter.Parameter, error) {
	if slices.Contains(s.names, name) {
		return s, s.locale.DuplicateAlias(s, name)
	}
	s.names = append(s.names, name)
	return s, nil
}

// Parse removes every argument that matches one of the setter's names,
// and returns their values in the order they were discovered.
//
// If none match, the environment variable is consulted (if set),
// followed by a [*parameter.MissingRequiredError] if the setter is required,
// otherwise its default value (if any).
func (s *Setter) Parse(args *parameter.Arguments) (parameter.Value, error) {
	var values []string
	for {
		value, found := s.take(args)
		if !found {
			break
		}
		values = append(values, value)
	}
	if len(values) != 0 {
		return parameter.NewValue(values...), nil
	}
	return s.absent()
}

// take removes the first argument that matches,
// checking names in registration order.
func (s *Setter) take(args *parameter.Arguments) (string, bool) {
	for _, name := range s.names {
		var (
			prefix = name + s.separator
			index  = args.Index(func(token string) bool {
				return strings.HasPrefix(token, prefix)
			})
		)
		if index == -1 {
			continue
		}
		token := args.Remove(index)
		log.Debugf("%s: claimed argument %d (%s)", s.Name(), index, token)
		return token[len(prefix):], true
	}
	return "", false
}

func (s *Setter) absent() (parameter.Value, error) {
	if key := s.environment; key != "" {
		if value, provided := os.LookupEnv(key); provided {
			log.Debugf("%s: using environment variable %s", s.Name(), key)
			return parameter.NewValue(value), nil
		}
	}
	if s.required {
		return parameter.Value{}, s.locale.MissingRequired(s)
	}
	if s.hasDefault {
		return parameter.NewDefault(s.defaultValue), nil
	}
	return parameter.Value{}, nil
}
