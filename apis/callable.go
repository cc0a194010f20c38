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

package apis

// Callable is anything that can be invoked with positional arguments.
// Plain Go func values are adapted to Callable by the proxy layer;
// values that already implement Callable are used as-is.
type Callable interface {
	// Call invokes the underlying entity with args and returns its result.
	// A failure raised by the entity is returned unchanged.
	Call(args ...any) (any, error)
}

// CallableFunc adapts a plain function to the Callable interface.
type CallableFunc func(args ...any) (any, error)

// Call implements Callable for CallableFunc.
func (f CallableFunc) Call(args ...any) (any, error) {
	return f(args...)
}

// Interceptor is the caller-supplied callback every call through a proxy
// is routed to. It receives the wrapped callable (already bound to the
// receiver when one was resolved), the resolved receiver (nil when the
// call carries none), the positional arguments with any implicit receiver
// removed, and the params mapping supplied at wrap time.
//
// The interceptor decides whether, and how, to invoke wrapped. Its result
// and error are passed through to the call site unchanged.
type Interceptor func(wrapped Callable, instance any, args []any, params Params) (any, error)

// Params is an open, caller-defined mapping forwarded verbatim to the
// Interceptor on every call. It is captured at wrap time and must be
// treated as immutable afterwards.
type Params map[string]any
