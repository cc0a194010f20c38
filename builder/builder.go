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

package builder

import (
	"dirpx.dev/wrapx/apis"
	"dirpx.dev/wrapx/binding"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildClassifier builds and returns a new apis.Classifier based on the
// provided configuration: the declared-kind fast path followed by the
// reflect fallback. The previous classifier and extension context are
// not needed by the default construction.
func (b *builder) BuildClassifier(_ apis.Config, _ apis.Classifier, _ any) apis.Classifier {
	return binding.NewClassifier(
		binding.NewDeclaredStrategy(),
		binding.NewReflectStrategy(),
	)
}
