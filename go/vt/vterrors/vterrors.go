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

// Package vterrors provides the error type used by the federation engine:
// a plain error carrying a canonical code. Wrapping preserves the code of
// the cause, so an error keeps its kind while context is added on the way
// up the stack.
//
// Create errors with a code:
//
//	vterrors.Errorf(vterrors.FailedPrecondition, "statement must be a select")
//
// Add context while passing errors up:
//
//	vterrors.Wrapf(err, "table %s", tableName)
//
// Inspect the kind at the boundary:
//
//	if vterrors.CodeOf(err) == vterrors.FailedPrecondition { ... }
package vterrors

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// New returns an error with the supplied code and message, annotated with
// the caller's stack.
func New(code Code, message string) error {
	return &codeError{err: errors.New(message), code: code}
}

// Errorf formats according to a format specifier and returns the string as
// an error value with the supplied code.
func Errorf(code Code, format string, args ...any) error {
	return &codeError{err: errors.Errorf(format, args...), code: code}
}

// Wrap returns an error annotating err with a new message, keeping err's
// code. If err is nil, Wrap returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &codeError{err: errors.Wrap(err, message), code: CodeOf(err)}
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &codeError{err: errors.Wrapf(err, format, args...), code: CodeOf(err)}
}

// WrapfCode is Wrapf with an explicit code, for boundaries that classify
// foreign errors while keeping the cause chain.
func WrapfCode(code Code, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &codeError{err: errors.Wrapf(err, format, args...), code: code}
}

// CodeOf returns the code attached to err or any of its causes. A nil error
// has code OK; an error without a code has code Unknown.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}
	var coded *codeError
	if stderrors.As(err, &coded) {
		return coded.code
	}
	return Unknown
}

type codeError struct {
	err  error
	code Code
}

func (e *codeError) Error() string {
	return e.err.Error()
}

func (e *codeError) Unwrap() error {
	return e.err
}
