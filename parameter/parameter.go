// Package parameter provides an abstraction around command-line "formal parameters"
// and the argument tokens they are matched against.
package parameter

type (
	// A Parameter provides methods to describe itself,
	// and serves as the "formal parameter" in relation to an argument ("actual parameter").
	//
	// I.e. it is the left side within the command-line argument: `--parameter-name=argument-value`.
	Parameter interface {
		// Name returns the primary name of the parameter.
		//
		// I.e. the parameter's canonical name.
		Name() string
		// Aliases returns additional names that are also matched,
		// in the order they were registered.
		//
		// E.g. short names, deprecated names, alternate names, etc.
		Aliases() []string
		// Description returns a string that should describe what
		// this parameter influences within the program it's used in.
		// It never affects parsing.
		Description() string

		// Parse claims every argument token that belongs to the parameter,
		// removing them from the arguments.
		Parse(*Arguments) (Value, error)

		SetDescription(string) Parameter
		// SetLocale replaces the source of user facing error messages.
		// The locale is shared, not copied.
		SetLocale(*Locale) Parameter
		// AddAlias registers an additional name.
		// Registering a name that is already known
		// returns a [*DuplicateAliasError] and leaves the names unchanged.
		AddAlias(string) (Parameter, error)
	}
)
