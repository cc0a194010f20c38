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

// Config carries read-only wrap-policy knobs that influence proxy
// construction and receiver resolution. It is passed by value and should
// be treated as immutable by implementations.
type Config struct {
	// MaxUnwrap limits wrapped-chain collapse depth when resolving the
	// identity anchor, and container unwrapping depth when deriving
	// display names. Acts as a safety guard against pathological nesting.
	MaxUnwrap int

	// IncludeBuiltins controls whether builtin/no-package named types
	// (e.g., "int", "string") are used as display names for non-func
	// targets. If false, such cases yield "".
	IncludeBuiltins bool

	// StrictBinding controls what happens when a receiverless call
	// cannot recover the pre-wrap declared kind of the callable. If
	// false, resolution silently falls back to the instance-method
	// interpretation; if true, it fails with an ambiguity error.
	StrictBinding bool
}
