// Package errutil contains utilities for working with errors.
package errutil

import "strings"

// Multi combines errors into one. Nil errors are dropped; if no error is
// left, Multi returns nil, and if one is left, it is returned as is.
// Otherwise the result reports all the messages, and errors.Is and errors.As
// look into each of them.
//
// Errors returned by Multi are flattened, so these two calls are equivalent:
//
//	Multi(Multi(err1, err2), err3)
//	Multi(err1, err2, err3)
func Multi(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
		case multiError:
			nonNil = append(nonNil, err...)
		default:
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return multiError(nonNil)
	}
}

type multiError []error

func (me multiError) Error() string {
	var sb strings.Builder
	sb.WriteString("multiple errors: ")
	for i, e := range me {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

func (me multiError) Unwrap() []error { return me }
