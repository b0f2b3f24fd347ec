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

package sqlstmt

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ShapeKey returns the statement's structural identity, used as the
// compiled-plan cache key. Positional parameter values never enter the key:
// placeholders hash by index only, so one cached plan serves any parameter
// binding. Literals embedded in the statement text are part of its shape
// and do hash.
func (s *Select) ShapeKey() string {
	h := xxhash.New()
	writeStrings(h, s.Schemas)
	writeStrings(h, s.Tables)
	writeStrings(h, s.Projection)
	if s.Where != nil {
		writeString(h, s.Where.Column)
		writeString(h, s.Where.Op.String())
		if s.Where.Arg.IsPlaceholder() {
			writeString(h, "?"+strconv.Itoa(s.Where.Arg.Placeholder))
		} else {
			writeString(h, "lit:"+s.Where.Arg.Literal.String())
		}
	}
	for _, item := range s.OrderBy {
		writeString(h, item.Column)
		writeString(h, strconv.FormatBool(item.Desc))
	}
	if s.Limit != nil {
		writeString(h, strconv.Itoa(s.Limit.Count))
		writeString(h, strconv.Itoa(s.Limit.Offset))
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

func writeStrings(h *xxhash.Digest, values []string) {
	for _, v := range values {
		writeString(h, v)
	}
	// Separate sections so ["a","b"]+[] and ["a"]+["b"] hash differently.
	writeString(h, ";")
}

func writeString(h *xxhash.Digest, v string) {
	_, _ = h.WriteString(v)
	_, _ = h.WriteString("\x00")
}
