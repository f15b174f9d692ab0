package parameter

import (
	"github.com/djdv/go-consoleargs/internal/generic"
	"golang.org/x/exp/slices"
)

// Arguments holds the raw command-line tokens of a single parse pass.
//
// The caller owns the Arguments and lends it to each [Parameter] in turn.
// Parameters remove the tokens they recognize and leave the rest,
// in their original relative order, for the next parameter
// (or for "unrecognized argument" diagnostics).
// Parameters must not retain the reference after [Parameter.Parse] returns.
type Arguments struct {
	tokens []string
}

// NewArguments copies tokens into a new, dense, Arguments buffer.
// Modifications to either will not affect the other.
func NewArguments(tokens ...string) *Arguments {
	return &Arguments{tokens: generic.CloneSlice(tokens)}
}

// Len returns the amount of tokens remaining.
func (args *Arguments) Len() int { return len(args.tokens) }

// Tokens returns a copy of the remaining tokens.
func (args *Arguments) Tokens() []string { return generic.CloneSlice(args.tokens) }

// Index returns the index of the first token satisfying match,
// or -1 if none do.
func (args *Arguments) Index(match func(token string) bool) int {
	return slices.IndexFunc(args.tokens, match)
}

// Remove removes the token at index and returns it.
// Tokens after index are shifted down by one.
// Remove panics if index is out of range.
func (args *Arguments) Remove(index int) string {
	token := args.tokens[index]
	args.tokens = slices.Delete(args.tokens, index, index+1)
	return token
}
