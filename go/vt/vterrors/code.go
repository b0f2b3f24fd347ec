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

// Code classifies an error by kind, following the canonical gRPC codes that
// apply to an in-process library boundary.
type Code int

const (
	// OK is the code of a nil error.
	OK Code = iota
	// Unknown is the code of errors created outside this package.
	Unknown
	// InvalidArgument marks statements the compiler rejects.
	InvalidArgument
	// FailedPrecondition marks calls that violate an API precondition,
	// such as executing a non-select statement.
	FailedPrecondition
	// Unimplemented marks routing or compilation capabilities that are
	// not supported for the target source type.
	Unimplemented
	// Internal marks failures raised while producing rows.
	Internal
	// Unavailable marks sources that cannot currently be reached.
	Unavailable
)

var codeNames = map[Code]string{
	OK:                 "OK",
	Unknown:            "UNKNOWN",
	InvalidArgument:    "INVALID_ARGUMENT",
	FailedPrecondition: "FAILED_PRECONDITION",
	Unimplemented:      "UNIMPLEMENTED",
	Internal:           "INTERNAL",
	Unavailable:        "UNAVAILABLE",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
