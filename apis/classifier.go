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

package apis

// KindStrategy is a pluggable classification step. A Classifier chains
// multiple strategies in order (e.g., Declared -> Reflect).
type KindStrategy interface {
	// TryClassify attempts to classify the binding kind of v according
	// to cfg. It returns (kind, true) if handled; otherwise
	// (KindGeneric, false) to fall through.
	TryClassify(v any, cfg Config) (kind Kind, handled bool)
}

// Classifier coordinates strategies to classify the binding kind of a
// pre-wrap entity. Typical chain: DeclaredStrategy -> ReflectStrategy.
type Classifier interface {
	// Classify returns the binding kind for v, or KindGeneric if no
	// strategy could decide.
	Classify(v any, cfg Config) Kind
}
