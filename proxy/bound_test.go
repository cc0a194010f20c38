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

package proxy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/wrapx/apis"
	"dirpx.dev/wrapx/binding"
	"dirpx.dev/wrapx/config"
	"dirpx.dev/wrapx/proxy"
)

var errUnexpectedReceiver = errors.New("unexpected receiver")

func TestBoundProxy_InstanceAccess(t *testing.T) {
	rec := &recorder{}
	m, err := proxy.NewMethod((*Counter).Add, rec.intercept)
	require.NoError(t, err)

	c := &Counter{}
	b := m.Bind(c)

	got, err := b.Call(5)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
	assert.Equal(t, 5, c.N)
	assert.Same(t, c, rec.instance)
	assert.Equal(t, []any{5}, rec.args, "receiver excluded from args")

	assert.Same(t, c, b.Instance())
	assert.Same(t, m, b.Parent())
}

func TestBoundProxy_ClassAccessShiftsReceiver(t *testing.T) {
	rec := &recorder{}
	m, err := proxy.NewMethod((*Counter).Add, rec.intercept)
	require.NoError(t, err)

	c := &Counter{N: 10}

	// Unbound call with the instance as explicit first argument: the
	// interceptor sees one argument fewer than the call site passed.
	got, err := m.Call(c, 7)
	require.NoError(t, err)
	assert.Equal(t, 17, got)
	assert.Same(t, c, rec.instance)
	assert.Equal(t, []any{7}, rec.args)

	// Same through an explicit receiverless binding.
	got, err = m.Bind(nil).Call(c, 3)
	require.NoError(t, err)
	assert.Equal(t, 20, got)
	assert.Same(t, c, rec.instance)
	assert.Equal(t, []any{3}, rec.args)
}

func TestBoundProxy_ClassLevelKindsNeverShift(t *testing.T) {
	for _, kind := range []apis.Kind{apis.KindClassMethod, apis.KindStaticMethod} {
		t.Run(kind.String(), func(t *testing.T) {
			rec := &recorder{}
			g, err := proxy.NewGeneric(double, rec.intercept, proxy.WithDeclaredKind(kind))
			require.NoError(t, err)

			got, err := g.Bind(nil).Call(21)
			require.NoError(t, err)
			assert.Equal(t, 42, got)
			assert.Nil(t, rec.instance)
			assert.Equal(t, []any{21}, rec.args, "argument list unshifted")
		})
	}
}

func TestBoundProxy_ClassLevelKindsInstanceAccess(t *testing.T) {
	// Accessing a class-level entity through an instance invokes the
	// target exactly as access through the owning type would: the
	// interceptor observes the receiver, but the target never does.
	for _, kind := range []apis.Kind{apis.KindClassMethod, apis.KindStaticMethod} {
		t.Run(kind.String(), func(t *testing.T) {
			rec := &recorder{}
			g, err := proxy.NewGeneric(double, rec.intercept, proxy.WithDeclaredKind(kind))
			require.NoError(t, err)

			c := &Counter{}
			got, err := g.Bind(c).Call(21)
			require.NoError(t, err)
			assert.Equal(t, 42, got)
			assert.Same(t, c, rec.instance)
			assert.Equal(t, []any{21}, rec.args, "argument list unshifted")
		})
	}
}

func TestBoundProxy_FunctionKindIgnoresInstance(t *testing.T) {
	rec := &recorder{}
	g, err := proxy.NewGeneric(double, rec.intercept, proxy.WithDeclaredKind(apis.KindFunction))
	require.NoError(t, err)

	got, err := g.Bind(&Counter{}).Call(21)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Nil(t, rec.instance, "plain functions never take a receiver")
	assert.Equal(t, []any{21}, rec.args)
}

func TestBoundProxy_IndeterminateFallsBackToInstance(t *testing.T) {
	rec := &recorder{}
	c := &Counter{}
	g, err := proxy.NewGeneric((*Counter).Add, rec.intercept)
	require.NoError(t, err)

	got, err := g.Bind(nil).Call(c, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
	assert.Same(t, c, rec.instance)
	assert.Equal(t, []any{4}, rec.args)
}

func TestBoundProxy_DeclaredKindSurvivesNesting(t *testing.T) {
	rec := &recorder{}
	inner, err := proxy.NewGeneric(double, passthrough, proxy.WithDeclaredKind(apis.KindStaticMethod))
	require.NoError(t, err)
	outer, err := proxy.NewGeneric(inner, rec.intercept)
	require.NoError(t, err)

	assert.Equal(t, apis.KindStaticMethod, outer.BindingKind())

	got, err := outer.Bind(nil).Call(21)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Nil(t, rec.instance)
	assert.Equal(t, []any{21}, rec.args)
}

func TestBoundProxy_OpaqueIntermediateLosesSignal(t *testing.T) {
	// An intermediate wrapper that is not kind-aware discards the
	// declared-kind signal; resolution falls back to treating the first
	// argument as the receiver, the documented accuracy boundary.
	inner, err := proxy.NewGeneric(double, passthrough, proxy.WithDeclaredKind(apis.KindStaticMethod))
	require.NoError(t, err)
	opaque := apis.CallableFunc(func(args ...any) (any, error) {
		return inner.Call(args...)
	})

	rec := &recorder{}
	outer, err := proxy.NewGeneric(opaque, rec.intercept)
	require.NoError(t, err)

	got, err := outer.Bind(nil).Call(21)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 21, rec.instance, "first argument mis-read as receiver")
	assert.Empty(t, rec.args)
}

func TestBoundProxy_StrictBindingFailsOnLostSignal(t *testing.T) {
	strict := config.NewConfig(config.WithStrictBinding(true))
	opaque := apis.CallableFunc(func(args ...any) (any, error) {
		x, ok := args[0].(int)
		if !ok {
			return nil, errUnexpectedReceiver
		}
		return double(x), nil
	})

	g, err := proxy.NewGeneric(opaque, passthrough, proxy.WithConfig(strict))
	require.NoError(t, err)

	_, err = g.Bind(nil).Call(21)
	require.ErrorIs(t, err, binding.ErrAmbiguousBinding)

	// A declared kind resolves the ambiguity under the same policy.
	tagged, err := proxy.NewGeneric(opaque, passthrough, proxy.WithConfig(strict),
		proxy.WithDeclaredKind(apis.KindStaticMethod))
	require.NoError(t, err)
	got, err := tagged.Bind(nil).Call(21)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	// A resolved receiver on an indeterminate kind binds the callable to
	// it: the target is invoked with the receiver prepended, which this
	// one rejects.
	_, err = g.Bind("receiver").Call(21)
	require.ErrorIs(t, err, errUnexpectedReceiver)
}

func TestBoundProxy_MissingReceiver(t *testing.T) {
	m, err := proxy.NewMethod((*Counter).Add, passthrough)
	require.NoError(t, err)
	_, err = m.Call()
	require.ErrorIs(t, err, binding.ErrMissingReceiver)
}

func TestBoundProxy_FreshPerBinding(t *testing.T) {
	m, err := proxy.NewMethod((*Counter).Add, passthrough)
	require.NoError(t, err)

	c1, c2 := &Counter{}, &Counter{}
	b1, b2 := m.Bind(c1), m.Bind(c2)
	assert.NotSame(t, b1, b2)

	_, err = b1.Call(1)
	require.NoError(t, err)
	_, err = b2.Call(2)
	require.NoError(t, err)
	assert.Equal(t, 1, c1.N)
	assert.Equal(t, 2, c2.N)
}

func TestBoundProxy_KeepsIdentity(t *testing.T) {
	m, err := proxy.NewMethod((*Counter).Add, passthrough)
	require.NoError(t, err)
	b := m.Bind(&Counter{})

	samePC(t, (*Counter).Add, b.Unwrap())
	assert.Equal(t, m.Hash(), b.Hash())
	assert.Equal(t, "Add", b.Name())
	assert.Contains(t, b.String(), "<BoundProxy for ")
}
