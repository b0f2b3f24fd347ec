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
	"context"
	"errors"

	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
)

func r(names, types string, rows ...string) *sqltypes.Result {
	return sqltypes.MakeTestResult(sqltypes.MakeTestFields(names, types), rows...)
}

// fakePrimitive streams a fixed result, counting how often it is opened.
type fakePrimitive struct {
	result  *sqltypes.Result
	openErr error

	opens  int
	closes int
}

var _ Primitive = (*fakePrimitive)(nil)

func (f *fakePrimitive) Fields() []*sqltypes.Field {
	return f.result.Fields
}

func (f *fakePrimitive) Open(*BindContext) (sqltypes.RowIterator, error) {
	f.opens++
	if f.openErr != nil {
		return nil, f.openErr
	}
	return &fakeIterator{rows: sqltypes.RowsToIterator(f.result.Rows), closes: &f.closes}, nil
}

type fakeIterator struct {
	rows   sqltypes.RowIterator
	closes *int
}

func (it *fakeIterator) Next() ([]sqltypes.Value, error) {
	return it.rows.Next()
}

func (it *fakeIterator) Close() error {
	*it.closes++
	return it.rows.Close()
}

// fakeSource serves fixed rows as a ScanSource.
type fakeSource struct {
	rows    [][]sqltypes.Value
	scanErr error
	scans   int
}

var _ ScanSource = (*fakeSource)(nil)

func (s *fakeSource) Scan(_ context.Context, _ string) (sqltypes.RowIterator, error) {
	s.scans++
	if s.scanErr != nil {
		return nil, s.scanErr
	}
	return sqltypes.RowsToIterator(s.rows), nil
}

var errScanFailed = errors.New("scan failed")
