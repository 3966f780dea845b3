/*
 * errors.go, part of gofission.
 *
 *
 * Copyright 2024 The gofission Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package lmd

import (
	"errors"
	"fmt"

	fission "github.com/nucastro/gofission"
)

const (
	NotReadable  = "LMD reader uninitialized or closed"
	ReadError    = "Error reading event"
	UnableToOpen = "Unable to open file"
	WrongFormat  = "Wrong format in event line"
)

//ErrWrongFormat is wrapped by the errors returned for malformed data lines.
var ErrWrongFormat = errors.New(WrongFormat)

//errDecorate decorates err with the caller's name if it implements fission.Error.
func errDecorate(err error, caller string) error {
	return fission.ErrDecorate(err, caller)
}

//Error is the general structure for lmd file errors. It fullfills fission.FileError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
	cause    error
}

func (err *Error) Error() string {
	return fmt.Sprintf("lmd file %s error: %s", err.filename, err.message)
}

//Unwrap returns the underlying error, if any.
func (err *Error) Unwrap() error { return err.cause }

//Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing reader was associated
func (err *Error) FileName() string { return err.filename }

//Format returns the format of the file (always "lmd") associated to the error
func (err *Error) Format() string { return "lmd" }

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

//lastEventError implements fission.LastEventError
type lastEventError struct {
	deco     []string
	fileName string
}

//NormalLastEventTermination does nothing
func (E *lastEventError) NormalLastEventTermination() {}

func (E *lastEventError) FileName() string { return E.fileName }

func (E *lastEventError) Error() string { return "EOF" }

func (E *lastEventError) Critical() bool { return false }

func (E *lastEventError) Format() string { return "lmd" }

func (E *lastEventError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newLastEventError(filename string, caller string) *lastEventError {
	return &lastEventError{fileName: filename, deco: []string{caller}}
}

//IsLastEvent returns true if err signals the normal end of an event file.
func IsLastEvent(err error) bool {
	var le fission.LastEventError
	return errors.As(err, &le)
}
