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
	"errors"

	"dirpx.dev/wrapx/apis"
)

var (
	// ErrAmbiguousBinding is returned under StrictBinding when a
	// receiverless call cannot recover the pre-wrap declared kind and
	// the instance-method fallback is disallowed.
	ErrAmbiguousBinding = errors.New("wrapx(binding): declared kind lost, receiver resolution is ambiguous")
	// ErrMissingReceiver is returned when a receiverless call to an
	// instance-level callable has no argument to take the receiver from.
	ErrMissingReceiver = errors.New("wrapx(binding): receiverless call with no arguments")
)

// Resolution is the outcome of receiver resolution for one call.
type Resolution struct {
	// Instance is the resolved receiver, nil when the call carries none.
	Instance any
	// Args is the argument list with any implicit receiver removed.
	Args []any
	// Shifted reports whether the first positional argument was
	// reinterpreted as the receiver.
	Shifted bool
}

// Resolve decides the receiver and argument shape for a call made through
// a callable of declared kind, with access-time receiver instance (nil
// when absent) and call-site args.
//
// A plain function never takes a receiver, whatever instance the access
// supplied. Otherwise, when instance is present the call passes through
// unchanged. When it is absent, class-level kinds keep their argument
// list unshifted (a call
// made through the owning type with no implicit receiver), and everything
// else peels the first argument off as the receiver.
//
// kindKnown reports whether the declared kind could be recovered from the
// pre-wrap entity. When the signal was lost behind an opaque intermediate
// wrapper, resolution falls back to the instance-method interpretation —
// the historically safe default, which can mis-shift arguments for a
// hidden class-level method — unless cfg.StrictBinding is set, in which
// case it fails with ErrAmbiguousBinding.
func Resolve(kind apis.Kind, kindKnown bool, instance any, args []any, cfg apis.Config) (Resolution, error) {
	if kind == apis.KindFunction {
		// No owning type participates; the receiver is always absent and
		// the arguments pass through unshifted, even when an access-time
		// instance was supplied.
		return Resolution{Args: args}, nil
	}
	if instance != nil {
		return Resolution{Instance: instance, Args: args}, nil
	}
	if kindKnown && kind.ClassLevel() {
		return Resolution{Args: args}, nil
	}
	if !kindKnown && cfg.StrictBinding {
		return Resolution{}, ErrAmbiguousBinding
	}
	if len(args) == 0 {
		return Resolution{}, ErrMissingReceiver
	}
	return Resolution{Instance: args[0], Args: args[1:], Shifted: true}, nil
}

// Bind returns a Callable that invokes target with instance prepended to
// the argument list, so an interceptor sees nothing different when it
// invokes a callable whose receiver was peeled from the call site.
func Bind(target apis.Callable, instance any) apis.Callable {
	return boundCallable{target: target, instance: instance}
}

// boundCallable is the partial application of a callable to its receiver.
type boundCallable struct {
	target   apis.Callable
	instance any
}

// Ensure boundCallable implements apis.Callable.
var _ apis.Callable = boundCallable{}

// Call invokes the underlying callable with the receiver prepended.
func (b boundCallable) Call(args ...any) (any, error) {
	all := make([]any, 0, len(args)+1)
	all = append(all, b.instance)
	all = append(all, args...)
	return b.target.Call(all...)
}
