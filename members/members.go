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

// Package members provides by-name access to a target's exported fields
// and methods. It is the enumerated forwarding table a proxy uses to
// delegate attribute reads, writes, and member invocations to its target.
//
// Tables are computed per concrete type and memoized process-wide, so
// repeated access through proxies of the same target type is cheap.
package members

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	uref "dirpx.dev/wrapx/utils/reflect"
)

var (
	// ErrNilTarget is returned when a nil or invalid target is provided.
	ErrNilTarget = errors.New("wrapx(members): nil target provided")
	// ErrUnknownMember indicates that the named member does not exist on
	// the target's type.
	ErrUnknownMember = errors.New("wrapx(members): unknown member")
	// ErrUnsettable indicates that the named field cannot be written
	// (target not addressable, or not a pointer to struct).
	ErrUnsettable = errors.New("wrapx(members): member is not settable")
	// ErrNotInvocable indicates that the named member exists but is
	// neither a method nor a func-typed field.
	ErrNotInvocable = errors.New("wrapx(members): member is not invocable")
)

// table holds the member layout of one concrete type.
type table struct {
	// fields maps exported field names (embedded included) to index paths.
	fields map[string][]int
	// methods maps exported method names to method indices on the type.
	methods map[string]int
}

// tables caches member tables by reflect.Type.
var tables sync.Map // key: reflect.Type, val: *table

// tableFor returns the memoized member table for t.
func tableFor(t reflect.Type) *table {
	if v, ok := tables.Load(t); ok {
		return v.(*table)
	}
	tb := &table{
		fields:  map[string][]int{},
		methods: map[string]int{},
	}
	st := t
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() == reflect.Struct {
		for _, f := range reflect.VisibleFields(st) {
			if f.PkgPath != "" {
				continue
			}
			tb.fields[f.Name] = f.Index
		}
	}
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if m.PkgPath != "" {
			continue
		}
		tb.methods[m.Name] = i
	}
	actual, _ := tables.LoadOrStore(t, tb)
	return actual.(*table)
}

// Get reads the named member from target. Methods yield bound method
// values; fields yield their current value. Unknown names fail with
// ErrUnknownMember, never a zero value.
func Get(target any, name string) (any, error) {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return nil, ErrNilTarget
	}
	tb := tableFor(rv.Type())
	if mi, ok := tb.methods[name]; ok {
		return rv.Method(mi).Interface(), nil
	}
	if idx, ok := tb.fields[name]; ok {
		fv, err := fieldByIndex(rv, idx)
		if err != nil {
			return nil, err
		}
		return fv.Interface(), nil
	}
	return nil, fmt.Errorf("%w: %s on %s", ErrUnknownMember, name, rv.Type())
}

// Set writes the named field on target, which must be a pointer for the
// write to be observable. The value is converted to the field type when
// a safe conversion exists.
func Set(target any, name string, value any) error {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return ErrNilTarget
	}
	tb := tableFor(rv.Type())
	idx, ok := tb.fields[name]
	if !ok {
		return fmt.Errorf("%w: %s on %s", ErrUnknownMember, name, rv.Type())
	}
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: %s on %s", ErrUnsettable, name, rv.Type())
	}
	fv, err := fieldByIndex(rv, idx)
	if err != nil {
		return err
	}
	if !fv.CanSet() {
		return fmt.Errorf("%w: %s on %s", ErrUnsettable, name, rv.Type())
	}
	nv := reflect.ValueOf(value)
	switch {
	case value == nil:
		fv.SetZero()
	case nv.Type().AssignableTo(fv.Type()):
		fv.Set(nv)
	// Numeric-to-string (and back) conversions are legal in Go but never
	// what a caller meant; reject them.
	case nv.Type().ConvertibleTo(fv.Type()) &&
		(fv.Kind() == reflect.String) == (nv.Kind() == reflect.String):
		fv.Set(nv.Convert(fv.Type()))
	default:
		return fmt.Errorf("%w: %s (%s for %s)", ErrUnsettable, name, nv.Type(), fv.Type())
	}
	return nil
}

// Call invokes the named member on target with args: a method if one
// exists, otherwise a func-typed field. Results and failures propagate
// unchanged from the invocation.
func Call(target any, name string, args ...any) (any, error) {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return nil, ErrNilTarget
	}
	tb := tableFor(rv.Type())
	if mi, ok := tb.methods[name]; ok {
		return uref.Invoke(rv.Method(mi), args)
	}
	if idx, ok := tb.fields[name]; ok {
		fv, err := fieldByIndex(rv, idx)
		if err != nil {
			return nil, err
		}
		if fv.Kind() != reflect.Func {
			return nil, fmt.Errorf("%w: %s on %s", ErrNotInvocable, name, rv.Type())
		}
		return uref.Invoke(fv, args)
	}
	return nil, fmt.Errorf("%w: %s on %s", ErrUnknownMember, name, rv.Type())
}

// Names returns a sorted snapshot of target's exported member names
// (fields and methods), for diagnostics and docs.
func Names(target any) []string {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return nil
	}
	tb := tableFor(rv.Type())
	out := make([]string, 0, len(tb.fields)+len(tb.methods))
	for name := range tb.fields {
		out = append(out, name)
	}
	for name := range tb.methods {
		// Methods may shadow fields of the same name in the table; the
		// snapshot lists each name once.
		if _, dup := tb.fields[name]; !dup {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// fieldByIndex walks an index path, dereferencing intermediate pointers.
// A nil embedded pointer on the path fails rather than panicking.
func fieldByIndex(rv reflect.Value, idx []int) (reflect.Value, error) {
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, ErrNilTarget
		}
		rv = rv.Elem()
	}
	for i, x := range idx {
		if i > 0 {
			for rv.Kind() == reflect.Pointer {
				if rv.IsNil() {
					return reflect.Value{}, ErrNilTarget
				}
				rv = rv.Elem()
			}
		}
		rv = rv.Field(x)
	}
	return rv, nil
}
