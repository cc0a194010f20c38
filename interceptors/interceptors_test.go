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

package interceptors_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/wrapx/apis"
	"dirpx.dev/wrapx/interceptors"
	"dirpx.dev/wrapx/proxy"
)

func triple(x int) int { return x * 3 }

func TestPassthrough(t *testing.T) {
	p, err := proxy.NewFunction(triple, interceptors.Passthrough())
	require.NoError(t, err)

	got, err := p.Call(7)
	require.NoError(t, err)
	assert.Equal(t, 21, got)
}

func TestChain_Order(t *testing.T) {
	var order []string
	step := func(name string) interceptors.Middleware {
		return func(next apis.Interceptor) apis.Interceptor {
			return func(wrapped apis.Callable, instance any, args []any, params apis.Params) (any, error) {
				order = append(order, name+":before")
				result, err := next(wrapped, instance, args, params)
				order = append(order, name+":after")
				return result, err
			}
		}
	}

	ic := interceptors.Chain(interceptors.Passthrough(), step("outer"), nil, step("inner"))
	p, err := proxy.NewFunction(triple, ic)
	require.NoError(t, err)

	got, err := p.Call(2)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
	assert.Equal(t, []string{"outer:before", "inner:before", "inner:after", "outer:after"}, order)
}

func TestChain_Empty(t *testing.T) {
	ic := interceptors.Chain(interceptors.Passthrough())
	p, err := proxy.NewFunction(triple, ic)
	require.NoError(t, err)
	got, err := p.Call(1)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	ic := interceptors.Chain(interceptors.Passthrough(), interceptors.Trace(log))
	p, err := proxy.NewFunction(triple, ic)
	require.NoError(t, err)

	got, err := p.Call(5)
	require.NoError(t, err)
	assert.Equal(t, 15, got)

	out := buf.String()
	assert.Contains(t, out, `"call_id"`)
	assert.Contains(t, out, `"bound":false`)
	assert.Contains(t, out, `"args":1`)
	assert.Contains(t, out, "intercepted call")
	assert.Contains(t, out, `"level":"info"`)
}

func TestTrace_Failure(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	boom := errors.New("boom")
	deny := func(apis.Callable, any, []any, apis.Params) (any, error) {
		return nil, boom
	}

	ic := interceptors.Chain(deny, interceptors.Trace(log))
	p, err := proxy.NewFunction(triple, ic)
	require.NoError(t, err)

	_, err = p.Call(5)
	require.ErrorIs(t, err, boom, "failures pass through unchanged")

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"error":"boom"`)
}
