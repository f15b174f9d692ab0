package parameter_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/djdv/go-consoleargs/parameter"
)

func arguments(t *testing.T) {
	t.Parallel()
	t.Run("copy", argumentsCopy)
	t.Run("index", argumentsIndex)
	t.Run("remove", argumentsRemove)
}

func argumentsCopy(t *testing.T) {
	t.Parallel()
	var (
		tokens = []string{"a", "b"}
		args   = parameter.NewArguments(tokens...)
	)
	tokens[0] = "changed"
	got := args.Tokens()
	if want := []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("arguments alias the caller's slice"+
			"\n\tgot: %#v"+
			"\n\twant: %#v",
			got, want)
	}
	got[1] = "changed"
	if token := args.Tokens()[1]; token != "b" {
		t.Errorf("Tokens returned the internal buffer"+
			"\n\tgot: %s"+
			"\n\twant: %s",
			token, "b")
	}
}

func argumentsIndex(t *testing.T) {
	t.Parallel()
	args := parameter.NewArguments("a", "--b=1", "--b=2")
	isB := func(token string) bool { return strings.HasPrefix(token, "--b=") }
	if got, want := args.Index(isB), 1; got != want {
		t.Errorf("index mismatched"+
			"\n\tgot: %d"+
			"\n\twant: %d",
			got, want)
	}
	isC := func(token string) bool { return strings.HasPrefix(token, "--c=") }
	if got, want := args.Index(isC), -1; got != want {
		t.Errorf("index mismatched"+
			"\n\tgot: %d"+
			"\n\twant: %d",
			got, want)
	}
}

func argumentsRemove(t *testing.T) {
	t.Parallel()
	args := parameter.NewArguments("a", "b", "c", "d")
	if got, want := args.Remove(1), "b"; got != want {
		t.Errorf("removed token mismatched"+
			"\n\tgot: %s"+
			"\n\twant: %s",
			got, want)
	}
	if got, want := args.Remove(2), "d"; got != want {
		t.Errorf("removed token mismatched"+
			"\n\tgot: %s"+
			"\n\twant: %s",
			got, want)
	}
	var (
		got  = args.Tokens()
		want = []string{"a", "c"}
	)
	if !reflect.DeepEqual(got, want) || args.Len() != len(want) {
		t.Errorf("remaining tokens mismatched"+
			"\n\tgot: %#v"+
			"\n\twant: %#v",
			got, want)
	}
}
