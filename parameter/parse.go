package parameter

import (
	"errors"

	logging "github.com/ipfs/go-log"
)

var log = logging.Logger("parameter")

// ParseAll calls each parameter's Parse method in order,
// against the same arguments.
// Every parameter is parsed, even if a preceding one failed.
// The returned values correspond to params by index,
// with failed parameters holding an [Absent] value.
// Errors are joined together.
func ParseAll(args *Arguments, params ...Parameter) ([]Value, error) {
	var (
		values = make([]Value, len(params))
		errs   []error
	)
	for i, param := range params {
		value, err := param.Parse(args)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		log.Debugf("%s: %s (%d arguments remain)",
			param.Name(), value.Kind(), args.Len())
		values[i] = value
	}
	return values, errors.Join(errs...)
}

// Unrecognized returns an [*UnrecognizedError] listing
// any tokens that remain in args, or nil if none remain.
func Unrecognized(args *Arguments) error {
	if args.Len() == 0 {
		return nil
	}
	return &UnrecognizedError{Tokens: args.Tokens()}
}
