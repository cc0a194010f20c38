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
	"reflect"
	"runtime"
	"strings"

	"dirpx.dev/wrapx/apis"
)

// AsCallable adapts target into an apis.Callable. Values that already
// implement apis.Callable are returned as-is; non-nil func values are
// adapted through Invoke. Anything else fails with ErrNotCallable.
func AsCallable(target any) (apis.Callable, error) {
	if c, ok := target.(apis.Callable); ok {
		return c, nil
	}
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, ErrNotCallable
	}
	return funcCallable{fn: rv}, nil
}

// IsCallable reports whether AsCallable would succeed for target.
func IsCallable(target any) bool {
	_, err := AsCallable(target)
	return err == nil
}

// funcCallable adapts a reflect func value to apis.Callable.
type funcCallable struct {
	fn reflect.Value
}

// Ensure funcCallable implements apis.Callable.
var _ apis.Callable = funcCallable{}

// Call invokes the adapted func value via Invoke.
func (c funcCallable) Call(args ...any) (any, error) {
	return Invoke(c.fn, args)
}

// FuncEntry returns the entry program counter of a func value, used as a
// stable identity for equality and hashing. ok is false for non-funcs.
func FuncEntry(fn any) (uintptr, bool) {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return 0, false
	}
	return rv.Pointer(), true
}

// FuncName derives identity metadata for a func value from runtime data.
// It returns the bare name (last path segment, e.g. "M"), the qualified
// name within its package (e.g. "(*T).M"), and the owning package path.
// ok is false when fn is not a func or the runtime has no symbol for it.
//
// Method values carry a "-fm" suffix in runtime symbols; it is stripped
// so a method value and its method expression report the same name.
func FuncName(fn any) (name, qualified, module string, ok bool) {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return "", "", "", false
	}
	rf := runtime.FuncForPC(rv.Pointer())
	if rf == nil {
		return "", "", "", false
	}
	full := strings.TrimSuffix(rf.Name(), "-fm")

	// Split "pkg/path.qualified" at the first dot after the final slash.
	slash := strings.LastIndexByte(full, '/')
	dot := strings.IndexByte(full[slash+1:], '.')
	if dot < 0 {
		return full, full, "", full != ""
	}
	dot += slash + 1
	module = full[:dot]
	qualified = full[dot+1:]

	name = qualified
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		name = qualified[i+1:]
	}
	return name, qualified, module, true
}
