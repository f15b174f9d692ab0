package parameter

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/djdv/go-consoleargs/internal/generic"
	"github.com/multiformats/go-multiaddr"
)

type (
	// Kind describes the shape of a [Value].
	Kind uint

	// Value is the result of parsing a [Parameter].
	//
	// The zero value is [Absent].
	Value struct {
		values []string
		kind   Kind
	}
)

//go:generate stringer -type=Kind -linecomment
const (
	// Absent means no argument matched and there is no default.
	Absent Kind = iota // absent
	// Default means no argument matched and the default was reported.
	Default // default
	// Single means exactly one argument matched.
	Single // single
	// Multiple means more than one argument matched.
	Multiple // multiple
)

const (
	// ErrNoValue is returned by conversions of an [Absent] value.
	ErrNoValue = generic.ConstError("parameter has no value")
	// ErrMultipleValues is returned by single value conversions
	// of a [Multiple] value.
	ErrMultipleValues = generic.ConstError("parameter has multiple values")
)

// NewValue constructs a [Single] or [Multiple] value
// from matched arguments, in the order they were discovered.
// If no values are provided, the result is [Absent].
func NewValue(values ...string) Value {
	var kind Kind
	switch len(values) {
	case 0:
		return Value{}
	case 1:
		kind = Single
	default:
		kind = Multiple
	}
	return Value{
		values: generic.CloneSlice(values),
		kind:   kind,
	}
}

// NewDefault constructs a [Default] value.
func NewDefault(value string) Value {
	return Value{
		values: []string{value},
		kind:   Default,
	}
}

func (v Value) Kind() Kind { return v.kind }

// Found reports whether the value came from matched arguments.
func (v Value) Found() bool { return v.kind == Single || v.kind == Multiple }

// Len returns the amount of values held.
func (v Value) Len() int { return len(v.values) }

// String returns the value, the default, or the first of multiple values.
// An [Absent] value returns the empty string.
func (v Value) String() string {
	if len(v.values) == 0 {
		return ""
	}
	return v.values[0]
}

// Strings returns every value in discovery order.
// A [Default] value is returned as a single element,
// and an [Absent] value as nil.
func (v Value) Strings() []string {
	if len(v.values) == 0 {
		return nil
	}
	return generic.CloneSlice(v.values)
}

func (v Value) single() (string, error) {
	switch v.kind {
	case Absent:
		return "", ErrNoValue
	case Multiple:
		return "", fmt.Errorf("%w: %s",
			ErrMultipleValues, strings.Join(v.values, ", "),
		)
	default:
		return v.values[0], nil
	}
}

// Int interprets the value as a base prefixed integer.
// E.g. `42`, `0x2A`, `0b101010`.
func (v Value) Int() (int64, error) {
	str, err := v.single()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(str, 0, 64)
}

// Uint interprets the value as a base prefixed unsigned integer.
func (v Value) Uint() (uint64, error) {
	str, err := v.single()
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(str, 0, 64)
}

func (v Value) Float() (float64, error) {
	str, err := v.single()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(str, 64)
}

// Duration interprets the value in [time.ParseDuration] format.
// E.g. `param=3s` not `param=3000000000`.
func (v Value) Duration() (time.Duration, error) {
	str, err := v.single()
	if err != nil {
		return 0, err
	}
	return time.ParseDuration(str)
}

func (v Value) Multiaddr() (multiaddr.Multiaddr, error) {
	str, err := v.single()
	if err != nil {
		return nil, err
	}
	return multiaddr.NewMultiaddr(str)
}

// Multiaddrs interprets each value as a [multiaddr.Multiaddr].
func (v Value) Multiaddrs() ([]multiaddr.Multiaddr, error) {
	if v.kind == Absent {
		return nil, ErrNoValue
	}
	maddrs := make([]multiaddr.Multiaddr, len(v.values))
	for i, str := range v.values {
		maddr, err := multiaddr.NewMultiaddr(str)
		if err != nil {
			return nil, fmt.Errorf("value %d (%s): %w", i, str, err)
		}
		maddrs[i] = maddr
	}
	return maddrs, nil
}

// Split interprets the value as a single line of comma separated values.
// E.g. `--names=a,"b,c",d` -> [a b,c d].
// An empty value splits into an empty slice.
func (v Value) Split() ([]string, error) {
	str, err := v.single()
	if err != nil {
		return nil, err
	}
	if str == "" {
		return []string{}, nil
	}
	return csv.NewReader(strings.NewReader(str)).Read()
}
