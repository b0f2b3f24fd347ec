/*
Copyright 2024 The ShardingSphere Authors.

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

package vterrors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	require.Equal(t, OK, CodeOf(nil))
	require.Equal(t, Unknown, CodeOf(io.EOF))
	require.Equal(t, Unavailable, CodeOf(New(Unavailable, "gone")))
	require.Equal(t, Internal, CodeOf(Errorf(Internal, "table %s", "t_order")))
}

func TestWrapPreservesCode(t *testing.T) {
	cause := New(FailedPrecondition, "not a select")
	wrapped := Wrap(cause, "decide")
	require.Equal(t, FailedPrecondition, CodeOf(wrapped))
	require.Contains(t, wrapped.Error(), "decide")
	require.Contains(t, wrapped.Error(), "not a select")

	wrapped = Wrapf(cause, "query %q", "UPDATE t SET a = 1")
	require.Equal(t, FailedPrecondition, CodeOf(wrapped))
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, Wrap(nil, "ignored"))
	require.NoError(t, Wrapf(nil, "ignored %d", 1))
	require.NoError(t, WrapfCode(Internal, nil, "ignored"))
}

func TestWrapfCodeReclassifies(t *testing.T) {
	wrapped := WrapfCode(Internal, io.EOF, "scan table %s", "t_order")
	require.Equal(t, Internal, CodeOf(wrapped))
	require.True(t, errors.Is(wrapped, io.EOF), "the cause chain survives")
}

func TestCodeString(t *testing.T) {
	require.Equal(t, "OK", OK.String())
	require.Equal(t, "FAILED_PRECONDITION", FailedPrecondition.String())
	require.Equal(t, "UNAVAILABLE", Unavailable.String())
}
