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

// Package proxy implements transparent call-interception proxies.
//
// A proxy is observationally indistinguishable from the entity it wraps
// for every non-invocation operation: identity metadata, equality,
// hashing, representation, iteration, and the scoped-resource protocol
// all delegate to the target (or to its identity anchor). Invocation is
// the one interposed operation: every call is routed through the
// caller-supplied interceptor, which receives the original callable, the
// resolved receiver, and the disambiguated argument list.
package proxy

import (
	"errors"
	"iter"

	"dirpx.dev/wrapx/apis"
	"dirpx.dev/wrapx/identity"
	"dirpx.dev/wrapx/members"
)

var (
	// ErrNilInterceptor is returned when no interceptor is provided.
	ErrNilInterceptor = errors.New("wrapx(proxy): nil interceptor provided")
	// ErrNotIterable is returned when iteration is requested on a proxy
	// whose target does not implement apis.Iterable.
	ErrNotIterable = errors.New("wrapx(proxy): target is not iterable")
	// ErrNotScoped is returned when the scoped-resource protocol is used
	// on a proxy whose target does not implement apis.Scoped.
	ErrNotScoped = errors.New("wrapx(proxy): target is not a scoped resource")
)

// base carries the state shared by every proxy kind. All fields are set
// at construction and never mutated afterwards (metadata overrides in
// meta are the single exception, and those are proxy-local).
type base struct {
	// target is the wrapped entity, held for the proxy's lifetime.
	target any
	// callable invokes target; nil when the target is not callable.
	callable apis.Callable
	// anchor is the resolved identity anchor, fixed at construction.
	anchor identity.Anchor
	// meta is the identity-metadata surface for target.
	meta identity.Meta
	// wrapper is the interception callback, invoked on every call.
	wrapper apis.Interceptor
	// params is the open configuration mapping forwarded to wrapper.
	params apis.Params
	// kind is the declared binding kind.
	kind apis.Kind
	// kindKnown reports whether kind was recovered from the pre-wrap
	// entity (explicit tag or a preserved apis.Kinded signal).
	kindKnown bool
	// cfg is the wrap policy captured at construction.
	cfg apis.Config
}

// Target returns the wrapped entity.
func (b *base) Target() any {
	return b.target
}

// Unwrap returns the identity anchor value, collapsing wrapper chains.
func (b *base) Unwrap() any {
	return b.anchor.Value()
}

// BindingKind returns the declared binding kind, preserving the
// disambiguation signal through chains of nested proxies.
func (b *base) BindingKind() apis.Kind {
	return b.kind
}

// Params returns the configuration mapping forwarded to the interceptor.
func (b *base) Params() apis.Params {
	return b.params
}

// Equal reports whether the proxy's identity anchor equals other. The
// second result is false when the comparison is undecidable (e.g., an
// incomparable type), mirroring the anchor's own equality semantics.
func (b *base) Equal(other any) (eq bool, ok bool) {
	return b.anchor.Equal(other)
}

// Hash returns the hash of the identity anchor, never of the proxy itself.
func (b *base) Hash() uint64 {
	return b.anchor.Hash()
}

// Name returns the target's display name (snapshotted at construction).
func (b *base) Name() string { return b.meta.Name() }

// SetName overrides the display name.
func (b *base) SetName(name string) { b.meta.SetName(name) }

// QualifiedName returns the target's qualified name (snapshotted).
func (b *base) QualifiedName() string { return b.meta.QualifiedName() }

// SetQualifiedName overrides the qualified name.
func (b *base) SetQualifiedName(name string) { b.meta.SetQualifiedName(name) }

// Module returns the owning-module reference.
func (b *base) Module() string { return b.meta.Module() }

// SetModule overrides the owning-module reference.
func (b *base) SetModule(module string) { b.meta.SetModule(module) }

// Doc returns the documentation text, live from the target when it
// implements apis.Documented.
func (b *base) Doc() string { return b.meta.Doc() }

// SetDoc writes the documentation text through to the target when
// possible, locally otherwise.
func (b *base) SetDoc(doc string) { b.meta.SetDoc(doc) }

// Annotations returns the annotation mapping view.
func (b *base) Annotations() map[string]any { return b.meta.Annotations() }

// Attr reads the named member from the target. Unknown names fail with
// the members package's resolution error, propagated unchanged.
func (b *base) Attr(name string) (any, error) {
	return members.Get(b.target, name)
}

// SetAttr writes the named member on the target. The write is exactly as
// observable, and as safe, as the target's own mutation semantics.
func (b *base) SetAttr(name string, value any) error {
	return members.Set(b.target, name, value)
}

// Invoke calls the named member on the target by name, the escape hatch
// for members outside the enumerated identity surface.
func (b *base) Invoke(name string, args ...any) (any, error) {
	return members.Call(b.target, name, args...)
}

// Members returns a sorted snapshot of the target's exported member names.
func (b *base) Members() []string {
	return members.Names(b.target)
}

// Iterate forwards iteration to the target. Targets that do not
// implement apis.Iterable fail with ErrNotIterable.
func (b *base) Iterate() (iter.Seq[any], error) {
	if it, ok := b.target.(apis.Iterable); ok {
		return it.Iterate(), nil
	}
	return nil, ErrNotIterable
}

// Enter forwards scoped-resource acquisition to the target.
func (b *base) Enter() (any, error) {
	if s, ok := b.target.(apis.Scoped); ok {
		return s.Enter()
	}
	return nil, ErrNotScoped
}

// Exit forwards scoped-resource release to the target.
func (b *base) Exit(err error) error {
	if s, ok := b.target.(apis.Scoped); ok {
		return s.Exit(err)
	}
	return ErrNotScoped
}

// Interface conformance of the shared state.
var (
	_ apis.Wrapped = (*base)(nil)
	_ apis.Kinded  = (*base)(nil)
)
