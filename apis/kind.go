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

// Kind classifies how a wrapped callable relates to an owning type.
// It determines whether a call made without an explicit receiver must
// reinterpret its first positional argument as the receiver.
type Kind int

const (
	// KindGeneric marks an entity whose nature is only knowable once it
	// is bound through an owning type. Receiver resolution treats it
	// like an instance method when no better signal is available.
	KindGeneric Kind = iota
	// KindFunction marks a free function. Calls never carry a receiver.
	KindFunction
	// KindInstanceMethod marks a method whose first parameter is the
	// receiver (a method expression in Go terms).
	KindInstanceMethod
	// KindClassMethod marks a type-level method bound to the owning
	// type rather than an instance.
	KindClassMethod
	// KindStaticMethod marks a namespaced function with no receiver.
	KindStaticMethod
)

// ClassLevel reports whether calls made through the owning type carry
// no implicit receiver for this kind.
func (k Kind) ClassLevel() bool {
	return k == KindClassMethod || k == KindStaticMethod
}

// String returns a short stable name for k.
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindFunction:
		return "function"
	case KindInstanceMethod:
		return "instancemethod"
	case KindClassMethod:
		return "classmethod"
	case KindStaticMethod:
		return "staticmethod"
	default:
		return "unknown"
	}
}
