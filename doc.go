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

// Package wrapx provides transparent call-interception proxies for
// arbitrary callable entities.
//
// Given a plain function, an instance method (a method expression), or a
// generic callable object, wrapx produces a substitute that behaves like
// the original for every non-invocation operation — identity metadata,
// equality, hashing, representation, iteration, and the scoped-resource
// protocol — while routing every invocation through a caller-supplied
// interceptor:
//
//	ic := func(wrapped apis.Callable, instance any, args []any, params apis.Params) (any, error) {
//	    // observe or modify the call, then decide whether to proceed
//	    return wrapped.Call(args...)
//	}
//	p, err := wrapx.WrapFunction(strings.ToUpper, ic)
//	out, err := p.Call("hello") // "HELLO", via ic
//
// # Design
//
// The hard problem is binding resolution: a callable reached through an
// owning type behaves differently depending on whether it is an instance
// method, a class-level method, or a static one, and the proxy must
// re-derive that classification after wrapping so the interceptor always
// observes the receiver and argument list the call site intended. wrapx
// splits the work across four layers:
//
//   - identity: the anchor (innermost wrapped entity through any chain
//     of proxies, resolved once at construction) that equality, hashing,
//     and representation delegate to, plus the metadata surface (display
//     name, qualified name, documentation, owning module, annotations).
//
//   - binding: classification of a callable's binding kind and the
//     receiver-resolution state machine applied on every receiverless
//     call. Classification is a chain of strategies, declared-kind fast
//     path first, reflect fallback last, mirroring how proxies preserve
//     the declared-kind signal through nesting via apis.Kinded.
//
//   - proxy: the concrete proxy kinds. FunctionProxy never carries a
//     receiver. GenericProxy and MethodProxy produce a fresh, unshared
//     BoundProxy on every Bind (the attribute-access analogue); the
//     bound proxy applies receiver resolution and invokes the
//     interceptor.
//
//   - members: the enumerated forwarding table used to delegate
//     attribute reads, writes, and by-name member invocation to the
//     target, memoized per concrete type.
//
// # Receiver resolution
//
// A call through a bound proxy with receiver R and arguments A resolves
// as follows. If R is present, the interceptor sees (target bound to R,
// R, A). If R is absent and the callable's pre-wrap declared kind is
// class-level (KindClassMethod, KindStaticMethod), the interceptor sees
// (target, nil, A) unshifted. Otherwise the first element of A is
// reinterpreted as the receiver: the interceptor sees (target bound to
// A[0], A[0], A[1:]).
//
// The class-level check depends on the declared kind surviving the wrap
// chain. Proxies preserve it via apis.Kinded, and callers can pin it
// with proxy.WithDeclaredKind. When an opaque intermediate wrapper
// discards the signal, resolution falls back to the instance-method
// interpretation — the historically safe default, which can mis-shift
// arguments for a hidden class-level method. Config.StrictBinding turns
// that fallback into binding.ErrAmbiguousBinding instead.
//
// # Global API
//
// The package holds an atomic pointer to an immutable wrap-policy
// snapshot (configuration, classifier, builder). Wrap calls load the
// snapshot and never take locks:
//
//	p, err := wrapx.WrapGeneric(target, ic)
//	kind := wrapx.Classify(target)
//
// Reconfiguration (SetConfig, SetBuilder, SetClassifier, SetExt,
// SetAll) takes a short build mutex, assembles a brand-new snapshot,
// and publishes it atomically. SetClassifier pins the classifier so
// later SetConfig calls stop rebuilding it until UnpinClassifier.
// Proxies capture the snapshot in effect when they were constructed;
// later reconfiguration never mutates existing proxies.
//
// # Concurrency model
//
// All proxy state is immutable after construction, so concurrent reads
// and concurrent calls through the same proxy are race-free without
// synchronization; each binding event constructs a fresh BoundProxy on
// the calling goroutine. Attribute writes forwarded to a target are
// exactly as safe as the target's own mutation semantics — the proxy
// adds no locking.
package wrapx
