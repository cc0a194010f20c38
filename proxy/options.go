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
	"dirpx.dev/wrapx/config"
)

// Option is a functional option applied at wrap time.
type Option func(*options)

// options collects per-wrap construction state.
type options struct {
	adapter    any
	params     apis.Params
	kind       apis.Kind
	kindSet    bool
	cfg        apis.Config
	classifier apis.Classifier
}

// WithAdapter substitutes the identity anchor at construction time,
// overriding the default innermost-wrapped resolution. Used when the
// proxy should report an identity other than its immediate target, e.g.
// when stacking transformation layers.
func WithAdapter(adapter any) Option {
	return func(o *options) {
		o.adapter = adapter
	}
}

// WithParams sets the open configuration mapping forwarded verbatim to
// the interceptor on every call. The mapping must not be mutated after
// the wrap.
func WithParams(params apis.Params) Option {
	return func(o *options) {
		o.params = params
	}
}

// WithDeclaredKind tags the wrapped entity with its declared binding
// kind, removing any need to infer it from intermediate wrappers. Only
// generic proxies honor the tag; function and method proxies fix their
// kind by construction.
func WithDeclaredKind(kind apis.Kind) Option {
	return func(o *options) {
		o.kind = kind
		o.kindSet = true
	}
}

// WithConfig sets the wrap policy for this proxy, overriding the
// process-wide configuration.
func WithConfig(cfg apis.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithClassifier sets the kind classifier consulted when no declared
// kind was tagged.
func WithClassifier(cls apis.Classifier) Option {
	return func(o *options) {
		o.classifier = cls
	}
}

// collect folds opts into a populated options value with defaults.
func collect(opts []Option) options {
	o := options{cfg: config.DefaultConfig()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.classifier == nil {
		o.classifier = binding.NewClassifier(
			binding.NewDeclaredStrategy(),
			binding.NewReflectStrategy(),
		)
	}
	return o
}
