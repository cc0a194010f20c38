/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reflect

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotCallable is returned when a target is neither an apis.Callable
	// nor a non-nil func value.
	ErrNotCallable = errors.New("reflect: target is not callable")
	// ErrArgCount is returned when the argument count does not match the
	// function's parameter list.
	ErrArgCount = errors.New("reflect: wrong argument count")
	// ErrArgType is returned when an argument cannot be assigned or
	// converted to the corresponding parameter type.
	ErrArgType = errors.New("reflect: argument type mismatch")
)

// errorType is the reflect.Type of the error interface.
var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Invoke calls the func value fn with args, normalizing each argument to
// the corresponding parameter type (variadic tails included) and folding
// the results:
//
//   - no results            -> (nil, nil)
//   - trailing error result -> split off and returned as the error
//   - single value          -> returned as-is
//   - multiple values       -> returned as []any
//
// Failures raised by fn itself are returned unchanged.
func Invoke(fn reflect.Value, args []any) (any, error) {
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, ErrNotCallable
	}
	in, err := normalizeArgs(fn.Type(), args)
	if err != nil {
		return nil, err
	}
	return foldResults(fn.Type(), fn.Call(in))
}

// normalizeArgs converts args into reflect.Values assignable to ft's
// parameter list. Nil arguments are allowed only for nilable parameter
// kinds; convertible arguments are converted unless the conversion would
// cross a string boundary (e.g., int -> string).
func normalizeArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, fmt.Errorf("%w: have %d, want at least %d", ErrArgCount, len(args), numIn-1)
		}
	} else if len(args) != numIn {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrArgCount, len(args), numIn)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := paramType(ft, i)
		v, err := normalizeArg(pt, arg)
		if err != nil {
			return nil, fmt.Errorf("%w (arg %d)", err, i)
		}
		in[i] = v
	}
	return in, nil
}

// paramType returns the effective parameter type for argument index i,
// unrolling the variadic tail.
func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}

// normalizeArg coerces a single argument to pt.
func normalizeArg(pt reflect.Type, arg any) (reflect.Value, error) {
	if arg == nil {
		switch pt.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
			reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
			return reflect.Zero(pt), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrArgType, pt)
		}
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(pt) {
		return v, nil
	}
	if v.Type().ConvertibleTo(pt) {
		// Numeric-to-string (and back) conversions are legal in Go but
		// never what a call site meant; reject them.
		if (pt.Kind() == reflect.String) != (v.Kind() == reflect.String) {
			return reflect.Value{}, fmt.Errorf("%w: %s for %s", ErrArgType, v.Type(), pt)
		}
		return v.Convert(pt), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %s for %s", ErrArgType, v.Type(), pt)
}

// foldResults maps a reflect call's result list to the (any, error) shape.
func foldResults(ft reflect.Type, out []reflect.Value) (any, error) {
	var callErr error
	if n := ft.NumOut(); n > 0 && ft.Out(n-1) == errorType {
		if e := out[len(out)-1]; !e.IsNil() {
			callErr = e.Interface().(error)
		}
		out = out[:len(out)-1]
	}
	switch len(out) {
	case 0:
		return nil, callErr
	case 1:
		return out[0].Interface(), callErr
	default:
		vals := make([]any, len(out))
		for i, v := range out {
			vals[i] = v.Interface()
		}
		return vals, callErr
	}
}
