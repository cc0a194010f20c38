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

package interceptors

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"dirpx.dev/wrapx/apis"
)

// Trace returns a middleware that logs every call routed through the
// proxy: a per-call correlation id, the wrapped entity, whether a
// receiver was resolved, the argument count, the call duration, and the
// outcome. The call itself is delegated to next; results and failures
// pass through unchanged.
func Trace(log zerolog.Logger) Middleware {
	return func(next apis.Interceptor) apis.Interceptor {
		return func(wrapped apis.Callable, instance any, args []any, params apis.Params) (any, error) {
			callID := uuid.NewString()
			start := time.Now()

			result, err := next(wrapped, instance, args, params)

			evt := log.Info()
			if err != nil {
				evt = log.Error().Err(err)
			}
			evt.
				Str("call_id", callID).
				Str("wrapped", fmt.Sprintf("%v", wrapped)).
				Bool("bound", instance != nil).
				Int("args", len(args)).
				Dur("duration", time.Since(start)).
				Msg("intercepted call")

			return result, err
		}
	}
}
