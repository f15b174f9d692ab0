// Package generic provides a set of type agnostic helpers.
package generic

// ConstError is an error whose value is fixed at compile time,
// allowing it to be declared as a constant and compared with [errors.Is].
type ConstError string

func (errStr ConstError) Error() string { return string(errStr) }
