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

// Package interceptors provides ready-made interception callbacks built
// on the public proxy API: a passthrough, middleware-style composition,
// and a call tracer.
package interceptors

import (
	"dirpx.dev/wrapx/apis"
)

// Passthrough returns an interceptor that calls the wrapped entity
// unchanged. Useful as the innermost element of a Chain and in tests.
func Passthrough() apis.Interceptor {
	return func(wrapped apis.Callable, _ any, args []any, _ apis.Params) (any, error) {
		return wrapped.Call(args...)
	}
}

// Middleware wraps one interception step around the next one in a chain.
type Middleware func(next apis.Interceptor) apis.Interceptor

// Chain composes middlewares around a final interceptor, outermost
// first. With no middlewares the final interceptor is returned as-is.
func Chain(final apis.Interceptor, mws ...Middleware) apis.Interceptor {
	// Build the chain from end to start.
	ic := final
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] != nil {
			ic = mws[i](ic)
		}
	}
	return ic
}
