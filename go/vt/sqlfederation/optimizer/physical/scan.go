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
	"github.com/SankarshanMishra/shardingsphere/go/sqltypes"
	"github.com/SankarshanMishra/shardingsphere/go/vt/vterrors"
)

var _ Primitive = (*Scan)(nil)

// Scan is a table-scan leaf. It resolves its executor from the request
// bindings at open time, so the plan itself stays free of per-query state.
type Scan struct {
	Table      string
	ScanFields []*sqltypes.Field
}

// Fields implements Primitive.
func (s *Scan) Fields() []*sqltypes.Field {
	return s.ScanFields
}

// Open implements Primitive.
func (s *Scan) Open(bctx *BindContext) (sqltypes.RowIterator, error) {
	source, ok := bctx.Bindings.Source(s.Table)
	if !ok {
		return nil, vterrors.Errorf(vterrors.Unavailable, "no scan executor bound for table %s", s.Table)
	}
	return source.Scan(bctx.Context, s.Table)
}
