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

package proxy

import (
	"dirpx.dev/wrapx/apis"
	"dirpx.dev/wrapx/binding"
	uref "dirpx.dev/wrapx/utils/reflect"
)

// BoundProxy is the short-lived object produced by one attribute-access
// binding event. It carries the receiver resolved at access time
// (possibly nil for access through the owning type), the receiver-bound
// callable, and a back-pointer to the unbound parent proxy used only to
// recover the declared binding kind. Instances share no mutable state;
// each is independently constructed and discarded after its call.
type BoundProxy struct {
	base
	parent   any
	instance any
}

// newBound constructs a bound proxy from a parent's shared state. The
// identity anchor, metadata, interceptor, params, and declared kind are
// carried over so the bound proxy stays transparent; only the callable
// changes, pre-bound to instance when one was supplied and the declared
// kind consumes a receiver. Class-level kinds and plain functions stay
// unbound: access through an instance invokes the target exactly as
// access through the owning type would.
func newBound(parent *base, parentProxy any, instance any) *BoundProxy {
	b := *parent
	if instance != nil && b.callable != nil && !receiverless(b.kind, b.kindKnown) {
		b.callable = binding.Bind(b.callable, instance)
	}
	return &BoundProxy{base: b, parent: parentProxy, instance: instance}
}

// receiverless reports whether the declared kind ignores the access-time
// receiver when invoking the target.
func receiverless(kind apis.Kind, known bool) bool {
	return kind == apis.KindFunction || (known && kind.ClassLevel())
}

// Instance returns the receiver resolved at binding time, or nil.
func (p *BoundProxy) Instance() any {
	return p.instance
}

// Parent returns the unbound proxy this binding was produced from.
func (p *BoundProxy) Parent() any {
	return p.parent
}

// Call applies receiver resolution and routes the invocation through the
// interceptor. With a receiver resolved at binding time, the callable
// and arguments pass through unchanged. Without one, class-level kinds
// keep their argument list unshifted, while instance-level (or
// indeterminate) kinds peel the first argument off as the receiver and
// bind the callable to it, so the interceptor observes the call exactly
// as the original call site intended.
func (p *BoundProxy) Call(args ...any) (any, error) {
	if p.callable == nil {
		return nil, uref.ErrNotCallable
	}
	res, err := binding.Resolve(p.kind, p.kindKnown, p.instance, args, p.cfg)
	if err != nil {
		return nil, err
	}
	wrapped := p.callable
	if res.Shifted {
		wrapped = binding.Bind(wrapped, res.Instance)
	}
	return p.wrapper(wrapped, res.Instance, res.Args, p.params)
}

// String returns the proxy representation.
func (p *BoundProxy) String() string {
	return "<BoundProxy for " + p.anchor.String() + ">"
}

// Ensure BoundProxy implements apis.Callable.
var _ apis.Callable = (*BoundProxy)(nil)
