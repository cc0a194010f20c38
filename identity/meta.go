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
	"path"
	"reflect"

	"dirpx.dev/wrapx/apis"
	uref "dirpx.dev/wrapx/utils/reflect"
)

// Meta is the identity-metadata surface a proxy exposes for its target.
//
// Display name and qualified name are snapshotted once at construction;
// a target with no derivable name simply leaves them empty rather than
// failing construction. Documentation text and the annotation mapping
// are live pass-through views whenever the target implements the
// corresponding capability (apis.Documented, apis.Annotated); otherwise
// writes land in local storage scoped to the proxy.
type Meta struct {
	target any

	name      string
	qualified string
	module    string

	doc         string
	annotations map[string]any
}

// Describe snapshots identity metadata for target. Funcs are named from
// runtime symbols; other targets from their nearest named type. Fields
// that cannot be derived are left empty.
func Describe(target any, cfg apis.Config) Meta {
	// The fallback map is allocated here rather than on first read so
	// concurrent Annotations calls never write Meta state.
	m := Meta{target: target, annotations: make(map[string]any)}

	if name, qualified, module, ok := uref.FuncName(target); ok {
		m.name, m.qualified, m.module = name, qualified, module
		return m
	}
	if target == nil {
		return m
	}
	if base, err := uref.Normalize(reflect.TypeOf(target), cfg); err == nil {
		name := base.Name()
		if p := base.PkgPath(); p == "" && !cfg.IncludeBuiltins {
			return m
		} else if p != "" {
			m.module = p
			m.qualified = path.Base(p) + "." + name
		} else {
			m.qualified = name
		}
		m.name = name
	}
	return m
}

// Name returns the display name snapshot (or its local override).
func (m *Meta) Name() string {
	return m.name
}

// SetName overrides the display name locally. The target is untouched.
func (m *Meta) SetName(name string) {
	m.name = name
}

// QualifiedName returns the qualified-name snapshot.
func (m *Meta) QualifiedName() string {
	return m.qualified
}

// SetQualifiedName overrides the qualified name locally.
func (m *Meta) SetQualifiedName(name string) {
	m.qualified = name
}

// Module returns the owning-module reference.
func (m *Meta) Module() string {
	return m.module
}

// SetModule overrides the owning-module reference locally.
func (m *Meta) SetModule(module string) {
	m.module = module
}

// Doc returns the documentation text: the target's own when it implements
// apis.Documented, the local value otherwise.
func (m *Meta) Doc() string {
	if d, ok := m.target.(apis.Documented); ok {
		return d.Doc()
	}
	return m.doc
}

// SetDoc writes the documentation text through to the target when it
// implements apis.Documented, or stores it locally otherwise.
func (m *Meta) SetDoc(doc string) {
	if d, ok := m.target.(apis.Documented); ok {
		d.SetDoc(doc)
		return
	}
	m.doc = doc
}

// Annotations returns the annotation mapping: a live view onto the target
// when it implements apis.Annotated, the local map allocated at
// construction otherwise.
func (m *Meta) Annotations() map[string]any {
	if a, ok := m.target.(apis.Annotated); ok {
		return a.Annotations()
	}
	return m.annotations
}
