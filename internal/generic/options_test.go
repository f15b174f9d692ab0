package generic_test

import (
	"errors"
	"testing"

	"github.com/djdv/go-consoleargs/internal/generic"
)

type (
	testSettings struct {
		name  string
		count int
	}
	testOption func(*testSettings) error
)

func options(t *testing.T) {
	t.Parallel()
	t.Run("apply", optionsApply)
	t.Run("stop on error", optionsError)
	t.Run("set twice", optionsSetTwice)
}

func optionsApply(t *testing.T) {
	t.Parallel()
	var (
		settings testSettings
		options  = []testOption{
			func(s *testSettings) error { s.name = "a"; return nil },
			func(s *testSettings) error { s.count++; return nil },
			func(s *testSettings) error { s.count++; return nil },
		}
	)
	if err := generic.ApplyOptions(&settings, options...); err != nil {
		t.Fatal(err)
	}
	want := testSettings{name: "a", count: 2}
	if settings != want {
		t.Errorf("options were not applied"+
			"\n\tgot: %#v"+
			"\n\twant: %#v",
			settings, want)
	}
}

func optionsError(t *testing.T) {
	t.Parallel()
	const sentinel = generic.ConstError("option failed")
	var (
		settings testSettings
		options  = []testOption{
			func(*testSettings) error { return sentinel },
			func(s *testSettings) error { s.count++; return nil },
		}
	)
	err := generic.ApplyOptions(&settings, options...)
	if !errors.Is(err, sentinel) {
		t.Errorf("unexpected error"+
			"\n\tgot: %v"+
			"\n\twant: %v",
			err, sentinel)
	}
	if settings.count != 0 {
		t.Error("options after a failure were applied")
	}
}

func optionsSetTwice(t *testing.T) {
	t.Parallel()
	if err := generic.ErrIfOptionWasSet("name", "", ""); err != nil {
		t.Errorf("unset option reported as set: %v", err)
	}
	if err := generic.ErrIfOptionWasSet("name", "value", ""); err == nil {
		t.Error("set option was not reported")
	}
}
