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
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/wrapx/apis"
	"dirpx.dev/wrapx/config"
)

// tagged declares its own binding kind, like a proxy does.
type tagged struct {
	kind apis.Kind
}

func (d tagged) BindingKind() apis.Kind { return d.kind }

func TestClassifierChain(t *testing.T) {
	cls := NewClassifier(NewDeclaredStrategy(), NewReflectStrategy())
	cfg := config.DefaultConfig()

	cases := []struct {
		name     string
		value    any
		expected apis.Kind
	}{
		{"declared fast path wins", tagged{kind: apis.KindClassMethod}, apis.KindClassMethod},
		{"declared static", tagged{kind: apis.KindStaticMethod}, apis.KindStaticMethod},
		{"plain func is indeterminate", func() {}, apis.KindGeneric},
		{"arbitrary value is generic", "text", apis.KindGeneric},
		{"nil falls through to default", nil, apis.KindGeneric},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, cls.Classify(tc.value, cfg))
		})
	}
}

func TestClassifier_NilStrategiesIgnored(t *testing.T) {
	cls := NewClassifier(nil, NewDeclaredStrategy(), nil)
	cfg := config.DefaultConfig()
	assert.Equal(t, apis.KindInstanceMethod, cls.Classify(tagged{kind: apis.KindInstanceMethod}, cfg))
	// No strategy handles a plain value: the chain default applies.
	assert.Equal(t, apis.KindGeneric, cls.Classify("text", cfg))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "generic", apis.KindGeneric.String())
	assert.Equal(t, "function", apis.KindFunction.String())
	assert.Equal(t, "instancemethod", apis.KindInstanceMethod.String())
	assert.Equal(t, "classmethod", apis.KindClassMethod.String())
	assert.Equal(t, "staticmethod", apis.KindStaticMethod.String())
	assert.Equal(t, "unknown", apis.Kind(99).String())

	assert.True(t, apis.KindClassMethod.ClassLevel())
	assert.True(t, apis.KindStaticMethod.ClassLevel())
	assert.False(t, apis.KindInstanceMethod.ClassLevel())
	assert.False(t, apis.KindGeneric.ClassLevel())
}
