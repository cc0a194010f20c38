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
	"dirpx.dev/wrapx/apis"
)

// NewClassifier constructs an apis.Classifier that tries the given
// strategies in order. Nil strategies are ignored. The returned
// classifier is safe for concurrent use provided strategies themselves
// are safe for concurrent TryClassify calls.
func NewClassifier(strategies ...apis.KindStrategy) apis.Classifier {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.KindStrategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving classifier over a set of strategies.
type chain struct {
	strats []apis.KindStrategy
}

// Classify runs strategies in order until one handles the value.
// Returns KindGeneric if no strategy produced a classification.
func (c chain) Classify(v any, cfg apis.Config) apis.Kind {
	for _, s := range c.strats {
		if kind, ok := s.TryClassify(v, cfg); ok {
			return kind
		}
	}
	return apis.KindGeneric
}
