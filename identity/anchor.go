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

package identity

import (
	"encoding/binary"
	"fmt"
	"path"
	"reflect"

	"github.com/zeebo/xxh3"

	"dirpx.dev/wrapx/apis"
	"dirpx.dev/wrapx/config"
	uref "dirpx.dev/wrapx/utils/reflect"
)

// Anchor is the identity a proxy reports as its own: the innermost real
// target through any chain of wraps, or a caller-supplied adapter.
// Equality, hashing, and representation of a proxy all delegate here.
//
// An Anchor is resolved once at construction and never recomputed.
type Anchor struct {
	value   any
	display string
}

// Resolve computes the anchor for target. When adapter is non-nil it
// overrides the default resolution. Otherwise wrapped-chain pointers
// (apis.Wrapped) are followed, bounded by cfg.MaxUnwrap, so that chains
// of nested proxies collapse to the original entity.
func Resolve(target, adapter any, cfg apis.Config) Anchor {
	v := adapter
	if v == nil {
		v = Collapse(target, cfg)
	}
	return Anchor{value: v, display: describe(v, cfg)}
}

// Collapse follows apis.Wrapped chains from v to the innermost entity,
// bounded by cfg.MaxUnwrap.
func Collapse(v any, cfg apis.Config) any {
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}
	for i := 0; i < maxUnwrap; i++ {
		w, ok := v.(apis.Wrapped)
		if !ok {
			break
		}
		inner := w.Unwrap()
		if inner == nil {
			break
		}
		v = inner
	}
	return v
}

// Value returns the anchored entity.
func (a Anchor) Value() any {
	return a.value
}

// Equal compares the anchored entity against other. The other side is
// collapsed through its own wrapped-chain pointers first, so two proxies
// over the same entity compare equal. The second result reports whether
// the comparison was decidable; incomparable types yield (false, false)
// rather than a failure.
func (a Anchor) Equal(other any) (eq bool, ok bool) {
	o := Collapse(other, apis.Config{})
	v := a.value

	if e, isEq := v.(apis.Equaler); isEq {
		return e.EqualTo(o)
	}

	if pv, isFunc := uref.FuncEntry(v); isFunc {
		po, otherFunc := uref.FuncEntry(o)
		return otherFunc && pv == po, true
	}

	if v == nil || o == nil {
		return v == nil && o == nil, true
	}
	rv, ro := reflect.TypeOf(v), reflect.TypeOf(o)
	if !rv.Comparable() || !ro.Comparable() {
		return false, false
	}
	return v == o, true
}

// Hash returns a stable in-process hash of the anchored entity. Funcs
// hash by entry address; other values hash by type and printed value.
func (a Anchor) Hash() uint64 {
	if pc, isFunc := uref.FuncEntry(a.value); isFunc {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(pc))
		return xxh3.Hash(buf[:])
	}
	return xxh3.HashString(fmt.Sprintf("%T:%v", a.value, a.value))
}

// String returns the human-readable form of the anchored entity, used in
// proxy representations.
func (a Anchor) String() string {
	return a.display
}

// describe derives a stable display string for v: funcs name themselves
// through runtime symbols, everything else through the nearest named type.
func describe(v any, cfg apis.Config) string {
	if v == nil {
		return "<nil>"
	}
	if _, qualified, module, ok := uref.FuncName(v); ok {
		if module != "" {
			return path.Base(module) + "." + qualified
		}
		return qualified
	}
	if base, err := uref.Normalize(reflect.TypeOf(v), cfg); err == nil {
		name := base.Name()
		if p := base.PkgPath(); p != "" {
			name = path.Base(p) + "." + name
		} else if !cfg.IncludeBuiltins {
			return fmt.Sprintf("%v", v)
		}
		return name
	}
	return fmt.Sprintf("%v", v)
}
