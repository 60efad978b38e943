// Package tt supports table-driven tests with little boilerplate.
//
// A typical use looks like:
//
//	tt.Test(t, expr.Evaluate,
//		Args(expr.X, 2.0).Rets(2.0),
//		Args(expr.Num(3), 0.0).Rets(3.0),
//	)
//
// Return values are compared with [cmp.Diff] using [CommonCmpOpt], and
// mismatches are reported with the diff.
package tt

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Case represents a test case. It is created by the Args function, and offers
// setters that augment and return itself; those calls can be chained like
// Args(...).Rets(...).
type Case struct {
	args         []any
	retsMatchers [][]any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. The arguments may implement the
// [Matcher] interface, in which case its Match method is called with the
// actual return value. Otherwise, [cmp.Equal] with [CommonCmpOpt] is used.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// FnDescriptor describes a function to test. It has the same fields and
// methods as the function it wraps, plus a name and formats for its
// arguments and return values.
type FnDescriptor struct {
	name    string
	body    any
	argsFmt string
	retsFmt string
}

// Fn wraps a function for use in [Test]. The name defaults to the name of the
// function as seen by the runtime.
func Fn(body any) *FnDescriptor {
	return &FnDescriptor{name: funcName(body), body: body}
}

// Named sets the name of the function in test error messages, and returns fn
// itself.
func (fn *FnDescriptor) Named(name string) *FnDescriptor {
	fn.name = name
	return fn
}

// ArgsFmt sets the string for formatting arguments in test error messages,
// and returns fn itself.
func (fn *FnDescriptor) ArgsFmt(s string) *FnDescriptor {
	fn.argsFmt = s
	return fn
}

// RetsFmt sets the string for formatting return values in test error
// messages, and returns fn itself.
func (fn *FnDescriptor) RetsFmt(s string) *FnDescriptor {
	fn.retsFmt = s
	return fn
}

// CommonCmpOpt is the cmp.Option used for comparing return values.
var CommonCmpOpt = cmp.Options{cmpopts.EquateNaNs()}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases. The function may be given as is,
// or wrapped with [Fn] to customize how it appears in error messages.
func Test(t T, fn any, tests ...*Case) {
	t.Helper()
	desc, ok := fn.(*FnDescriptor)
	if !ok {
		desc = Fn(fn)
	}
	for _, test := range tests {
		rets := call(desc.body, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if match(retsMatcher, rets) {
				continue
			}
			var argsString, diff string
			if desc.argsFmt == "" {
				argsString = sprintCommaDelimited(test.args...)
			} else {
				argsString = fmt.Sprintf(desc.argsFmt, test.args...)
			}
			if desc.retsFmt == "" {
				diff = cmp.Diff(retsMatcher, rets, CommonCmpOpt)
			} else {
				diff = fmt.Sprintf("-"+desc.retsFmt+"\n+"+desc.retsFmt+"\n",
					append(append([]any{}, retsMatcher...), rets...)...)
			}
			t.Errorf("%s(%s) returns (-Wanted +Actual):\n%s",
				desc.name, argsString, diff)
		}
	}
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

func match(matchers, actual []any) bool {
	if len(matchers) != len(actual) {
		return false
	}
	for i, matcher := range matchers {
		if !matchOne(matcher, actual[i]) {
			return false
		}
	}
	return true
}

func matchOne(m, a any) bool {
	if m, ok := m.(Matcher); ok {
		return m.Match(a)
	}
	return cmp.Equal(m, a, CommonCmpOpt)
}

func sprintCommaDelimited(args ...any) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, arg)
	}
	return b.String()
}

func funcName(f any) string {
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func {
		return fmt.Sprint(f)
	}
	name := runtime.FuncForPC(v.Pointer()).Name()
	// Strip the package path, keeping the receiver type if any.
	if i := strings.LastIndexByte(name, '/'); i != -1 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i != -1 {
		name = name[i+1:]
	}
	return name
}

func call(fn any, args []any) []any {
	fnType := reflect.TypeOf(fn)
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) returns a zero Value, which cannot be used
			// in Call. Use the zero value of the parameter type instead.
			var t reflect.Type
			if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
				t = fnType.In(fnType.NumIn() - 1).Elem()
			} else {
				t = fnType.In(i)
			}
			argsReflect[i] = reflect.Zero(t)
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := reflect.ValueOf(fn).Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}
