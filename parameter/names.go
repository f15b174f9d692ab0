package parameter

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// CommandLineName derives a command-line parameter name
// from a Go identifier.
// E.g. `ServerPort` -> `--server-port`.
func CommandLineName(identifier string) string {
	return "--" + strings.ToLower(
		strings.Join(
			nameComponents(identifier), "-"))
}

// EnvironmentName derives a process environment variable name
// from a prefix and a Go identifier.
// E.g. (`fs`, `ServerPort`) -> `FS_SERVER_PORT`.
func EnvironmentName(prefix, identifier string) string {
	components := nameComponents(identifier)
	if prefix != "" {
		// NOTE: A blank prefix is omitted
		// rather than producing `_NAME`.
		components = append([]string{prefix}, components...)
	}
	return strings.ToUpper(strings.Join(components, "_"))
}

// nameComponents splits the identifier at case transitions
// and discards separators (spaces, underscores, dashes, etc.).
func nameComponents(identifier string) []string {
	var (
		words      = camelcase.Split(identifier)
		components = make([]string, 0, len(words))
	)
	for _, word := range words {
		if strings.IndexFunc(word, isWordRune) == -1 {
			continue
		}
		components = append(components, word)
	}
	return components
}

func isWordRune(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }
