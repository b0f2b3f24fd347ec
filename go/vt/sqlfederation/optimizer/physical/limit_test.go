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

package physical

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
)

func TestLimitExecute(t *testing.T) {
	testCases := []struct {
		name   string
		count  int
		offset int
		want   []string
	}{{
		name:  "count below input",
		count: 2,
		want:  []string{"1|a", "2|b"},
	}, {
		name:  "count above input",
		count: 10,
		want:  []string{"1|a", "2|b", "3|c"},
	}, {
		name:   "offset skips rows",
		count:  2,
		offset: 1,
		want:   []string{"2|b", "3|c"},
	}, {
		name:   "offset beyond input",
		count:  2,
		offset: 5,
		want:   nil,
	}, {
		name:  "zero count",
		count: 0,
		want:  nil,
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := &fakePrimitive{result: r("id|col", "int64|varchar", "1|a", "2|b", "3|c")}
			limit := &Limit{Count: tc.count, Offset: tc.offset, Input: input}
			it, err := limit.Open(&BindContext{})
			require.NoError(t, err)
			rows, err := sqltypes.DrainIterator(it)
			require.NoError(t, err)
			require.Equal(t, r("id|col", "int64|varchar", tc.want...).Rows, rows)
		})
	}
}

func TestLimitClosesInput(t *testing.T) {
	input := &fakePrimitive{result: r("id", "int64", "1", "2", "3")}
	limit := &Limit{Count: 1, Input: input}
	it, err := limit.Open(&BindContext{})
	require.NoError(t, err)
	_, err = it.Next()
	require.NoError(t, err)
	// Abandon early: the input must still be released.
	require.NoError(t, it.Close())
	require.Equal(t, 1, input.closes)
}
