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

import "iter"

// Wrapped exposes the innermost wrapped entity of a wrapper chain.
// Every proxy implements it; a target that implements it causes the
// chain to collapse so equality, hashing, and representation report the
// original entity rather than an intermediate wrapper.
type Wrapped interface {
	// Unwrap returns the innermost wrapped entity.
	Unwrap() any
}

// Kinded exposes the declared binding kind of a wrapped callable.
// Proxies implement it so that nesting wraps preserves the declared-kind
// signal needed for receiver disambiguation. An intermediate wrapper
// that fails to implement Kinded loses that signal; receiver resolution
// then falls back to the instance-method interpretation.
type Kinded interface {
	// BindingKind returns the declared Kind of the wrapped callable.
	BindingKind() Kind
}

// Equaler lets a target decide equality on its own terms.
// The second result reports whether the comparison was decidable at all;
// (false, false) means undecided, mirroring a comparison against an
// incomparable type, and is propagated rather than raised.
type Equaler interface {
	EqualTo(other any) (eq bool, ok bool)
}

// Documented exposes a mutable documentation string on a target.
// When a target implements it, the proxy's Doc/SetDoc become live
// pass-through views; otherwise the proxy stores the value locally.
type Documented interface {
	Doc() string
	SetDoc(doc string)
}

// Annotated exposes a target's annotation mapping as a live view.
type Annotated interface {
	Annotations() map[string]any
}

// Iterable lets a target be iterated through its proxy.
// Iteration on a proxy whose target does not implement Iterable fails.
type Iterable interface {
	Iterate() iter.Seq[any]
}

// Scoped is the acquire/release pair of a scoped resource.
// Enter and Exit calls on a proxy are forwarded directly to the target;
// failures from either propagate unchanged.
type Scoped interface {
	// Enter acquires the resource and returns its scope value.
	Enter() (any, error)
	// Exit releases the resource. err is the failure, if any, observed
	// inside the scope.
	Exit(err error) error
}
