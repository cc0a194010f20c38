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

package wrapx

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/wrapx/apis"
	"dirpx.dev/wrapx/builder"
	"dirpx.dev/wrapx/config"
	"dirpx.dev/wrapx/proxy"
)

// init initializes the global wrap-policy state.
func init() {
	// Initialize state with default cfg and cls.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.cls = b.BuildClassifier(s.cfg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilClassifier is returned when a builder returns a nil classifier.
	ErrNilClassifier = errors.New("wrapx: builder returned nil classifier")
)

// WrapFunction wraps a plain function so that every call routes through
// the interceptor with no receiver and an unshifted argument list.
// It uses the global wrap policy; per-wrap options override it.
func WrapFunction(target any, ic apis.Interceptor, opts ...proxy.Option) (*proxy.FunctionProxy, error) {
	return proxy.NewFunction(target, ic, withGlobal(opts)...)
}

// WrapMethod wraps an instance method (a method expression) so that the
// interceptor always observes an explicit receiver.
// It uses the global wrap policy; per-wrap options override it.
func WrapMethod(target any, ic apis.Interceptor, opts ...proxy.Option) (*proxy.MethodProxy, error) {
	return proxy.NewMethod(target, ic, withGlobal(opts)...)
}

// WrapGeneric wraps an arbitrary entity whose binding nature is only
// knowable once it is accessed through an owning type.
// It uses the global wrap policy; per-wrap options override it.
func WrapGeneric(target any, ic apis.Interceptor, opts ...proxy.Option) (*proxy.GenericProxy, error) {
	return proxy.NewGeneric(target, ic, withGlobal(opts)...)
}

// withGlobal prepends the current global snapshot's config and
// classifier so that explicit per-wrap options take precedence.
func withGlobal(opts []proxy.Option) []proxy.Option {
	s := st.Load()
	out := make([]proxy.Option, 0, len(opts)+2)
	out = append(out, proxy.WithConfig(s.cfg), proxy.WithClassifier(s.cls))
	return append(out, opts...)
}

// Classify returns the binding-kind classification of v under the
// global wrap policy.
func Classify(v any) apis.Kind {
	s := st.Load()
	return s.cls.Classify(v, s.cfg)
}

// Classifier returns the global classifier.
func Classifier() apis.Classifier {
	return st.Load().cls
}

// Config returns the global wrapx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global wrapx configuration to cfg.
// It rebuilds the global classifier using the new configuration unless
// the classifier is pinned.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build a new classifier based on the new cfg and old state.
	ncls := old.cls
	if !old.pcls {
		ncls = b.BuildClassifier(cfg, old.cls, old.ext)
	}
	if ncls == nil {
		panic(ErrNilClassifier)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			cls:  ncls,
			bld:  b,
			pcls: old.pcls,
		},
	)
}

// SetBuilder swaps the global builder and rebuilds the classifier with it
// unless the classifier is pinned.
func SetBuilder(b apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	if b == nil {
		b = old.bld
	}

	ncls := old.cls
	if !old.pcls {
		ncls = b.BuildClassifier(old.cfg, old.cls, old.ext)
	}
	if ncls == nil {
		panic(ErrNilClassifier)
	}

	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			cls:  ncls,
			bld:  b,
			pcls: old.pcls,
		},
	)
}

// SetClassifier directly overwrites the global classifier and pins it:
// further SetConfig calls will not rebuild it until UnpinClassifier.
func SetClassifier(cls apis.Classifier) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	if cls == nil {
		panic(ErrNilClassifier)
	}

	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			cls:  cls,
			bld:  old.bld,
			pcls: true,
		},
	)
}

// UnpinClassifier makes the global classifier mutable again.
func UnpinClassifier() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			cls:  old.cls,
			bld:  old.bld,
			pcls: false,
		},
	)
}

// SetExt replaces the opaque extension payload passed down to the
// builder, and rebuilds the classifier unless it is pinned.
func SetExt(ext any) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncls := old.cls
	if !old.pcls {
		ncls = old.bld.BuildClassifier(old.cfg, old.cls, ext)
	}
	if ncls == nil {
		panic(ErrNilClassifier)
	}

	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			cls:  ncls,
			bld:  old.bld,
			pcls: old.pcls,
		},
	)
}

// ExtAs returns the current extension payload as T, if it is one.
func ExtAs[T any]() (T, bool) {
	if v, ok := st.Load().ext.(T); ok {
		return v, true
	}
	var zero T
	return zero, false
}

// SetAll explicitly sets all global wrapx state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, cls apis.Classifier, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Classifier
	ncls := cls
	npcls := false
	if ncls == nil {
		ncls = nbld.BuildClassifier(ncfg, old.cls, next)
	} else {
		npcls = true
	}
	if ncls == nil {
		panic(ErrNilClassifier)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			cls:  ncls,
			bld:  nbld,
			pcls: npcls,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global wrapx state.
var st atomic.Pointer[state]

// state is the global wrapx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global wrapx configuration.
	cfg apis.Config
	// ext is the global wrapx extension configuration.
	ext any
	// cls is the global wrapx classifier.
	cls apis.Classifier
	// bld is the global wrapx builder.
	bld apis.Builder
	// pcls indicates whether the cls is pinned (immutable).
	pcls bool
}
