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

package binding

import (
	"reflect"

	"dirpx.dev/wrapx/apis"
)

// NewDeclaredStrategy creates an apis.KindStrategy that uses apis.Kinded.
func NewDeclaredStrategy() apis.KindStrategy {
	return &declaredStrategy{}
}

// declaredStrategy is a zero-cost fast path: if v declares its own
// binding kind (every proxy does, so nested wraps keep the signal),
// return it and stop the chain.
type declaredStrategy struct{}

// Ensure declaredStrategy implements apis.KindStrategy.
var _ apis.KindStrategy = (*declaredStrategy)(nil)

// TryClassify checks if v implements apis.Kinded and returns its declared kind.
func (*declaredStrategy) TryClassify(v any, _ apis.Config) (apis.Kind, bool) {
	if v == nil {
		return apis.KindGeneric, false
	}
	if k, ok := v.(apis.Kinded); ok {
		return k.BindingKind(), true
	}
	return apis.KindGeneric, false
}

// NewReflectStrategy creates an apis.KindStrategy that classifies by
// the value's reflect kind.
func NewReflectStrategy() apis.KindStrategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback. A bare func value carries
// no signal about how it relates to an owning type (a func in a class
// body is an instance method; only the caller knows it is a free
// function), so everything without a declared kind is indeterminate.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.KindStrategy.
var _ apis.KindStrategy = reflectStrategy{}

// TryClassify handles callable entities, classifying them as
// indeterminate; non-callable values fall through to the chain default.
func (reflectStrategy) TryClassify(v any, _ apis.Config) (apis.Kind, bool) {
	if v == nil {
		return apis.KindGeneric, false
	}
	if _, ok := v.(apis.Callable); ok {
		return apis.KindGeneric, true
	}
	if reflect.ValueOf(v).Kind() == reflect.Func {
		return apis.KindGeneric, true
	}
	return apis.KindGeneric, false
}
