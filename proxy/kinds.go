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
	"dirpx.dev/wrapx/identity"
	uref "dirpx.dev/wrapx/utils/reflect"
)

// newBase assembles the shared proxy state for a target.
// When requireCallable is false, a non-callable target is tolerated and
// the proxy simply fails on invocation.
func newBase(target any, ic apis.Interceptor, o options, kind apis.Kind, known, requireCallable bool) (base, error) {
	if ic == nil {
		return base{}, ErrNilInterceptor
	}
	c, err := uref.AsCallable(target)
	if err != nil {
		if requireCallable {
			return base{}, err
		}
		c = nil
	}
	return base{
		target:    target,
		callable:  c,
		anchor:    identity.Resolve(target, o.adapter, o.cfg),
		meta:      identity.Describe(target, o.cfg),
		wrapper:   ic,
		params:    o.params,
		kind:      kind,
		kindKnown: known,
		cfg:       o.cfg,
	}, nil
}

// declaredKind recovers the pre-wrap declared kind for a generic wrap.
// An explicit tag always wins; a target that carries its own kind signal
// (another proxy, or anything implementing apis.Kinded) preserves it.
// Anything else is indeterminate.
func declaredKind(target any, o options) (apis.Kind, bool) {
	if o.kindSet {
		return o.kind, true
	}
	kind := o.classifier.Classify(target, o.cfg)
	_, preserved := target.(apis.Kinded)
	return kind, preserved
}

// FunctionProxy wraps a free function. Calls never carry a receiver and
// the argument list reaches the interceptor unshifted.
type FunctionProxy struct {
	base
}

// NewFunction wraps a plain function with an interceptor.
func NewFunction(target any, ic apis.Interceptor, opts ...Option) (*FunctionProxy, error) {
	o := collect(opts)
	b, err := newBase(target, ic, o, apis.KindFunction, true, true)
	if err != nil {
		return nil, err
	}
	return &FunctionProxy{base: b}, nil
}

// Call routes the invocation through the interceptor with no receiver.
func (p *FunctionProxy) Call(args ...any) (any, error) {
	return p.wrapper(p.callable, nil, args, p.params)
}

// String returns the proxy representation.
func (p *FunctionProxy) String() string {
	return "<FunctionProxy for " + p.anchor.String() + ">"
}

// GenericProxy wraps an entity whose binding nature is only knowable
// once it is accessed through an owning type. Each access produces a
// fresh BoundProxy via Bind.
type GenericProxy struct {
	base
}

// NewGeneric wraps an arbitrary entity with an interceptor. Non-callable
// targets are accepted; they delegate every non-call operation and fail
// only on invocation.
func NewGeneric(target any, ic apis.Interceptor, opts ...Option) (*GenericProxy, error) {
	o := collect(opts)
	kind, known := declaredKind(target, o)
	b, err := newBase(target, ic, o, kind, known, false)
	if err != nil {
		return nil, err
	}
	return &GenericProxy{base: b}, nil
}

// Bind resolves the receiver at access time and returns a fresh bound
// proxy for one call expression. instance may be nil for access through
// the owning type.
func (p *GenericProxy) Bind(instance any) *BoundProxy {
	return newBound(&p.base, p, instance)
}

// Call handles direct invocation of the unbound entity: no receiver is
// resolved and the argument list passes through unshifted. This is also
// the path taken when a wrapped method ends up invoked as a plain
// function.
func (p *GenericProxy) Call(args ...any) (any, error) {
	if p.callable == nil {
		return nil, uref.ErrNotCallable
	}
	return p.wrapper(p.callable, nil, args, p.params)
}

// String returns the proxy representation.
func (p *GenericProxy) String() string {
	return "<GenericProxy for " + p.anchor.String() + ">"
}

// MethodProxy wraps an instance method (a method expression in Go
// terms). The interceptor always observes an explicit receiver, resolved
// either at Bind time or peeled from the call's first argument.
type MethodProxy struct {
	base
}

// NewMethod wraps an instance method with an interceptor.
func NewMethod(target any, ic apis.Interceptor, opts ...Option) (*MethodProxy, error) {
	o := collect(opts)
	b, err := newBase(target, ic, o, apis.KindInstanceMethod, true, true)
	if err != nil {
		return nil, err
	}
	return &MethodProxy{base: b}, nil
}

// Bind resolves the receiver at access time and returns a fresh bound
// proxy for one call expression.
func (p *MethodProxy) Bind(instance any) *BoundProxy {
	return newBound(&p.base, p, instance)
}

// Call invokes the method without an access-time receiver: the first
// positional argument is reinterpreted as the receiver.
func (p *MethodProxy) Call(args ...any) (any, error) {
	return p.Bind(nil).Call(args...)
}

// String returns the proxy representation.
func (p *MethodProxy) String() string {
	return "<MethodProxy for " + p.anchor.String() + ">"
}

// Interface conformance.
var (
	_ apis.Callable = (*FunctionProxy)(nil)
	_ apis.Callable = (*GenericProxy)(nil)
	_ apis.Callable = (*MethodProxy)(nil)
)
