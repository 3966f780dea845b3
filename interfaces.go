/*
 * interfaces.go, part of gofission.
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

package fission

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice resulting from the current call. If passed an empty string, it just returns the current value.
	//The decorate slice contains a list of functions in the calling stack, plus, for each function any relevant information, or nothing. Extra info goes in this format: "FunctionName: Extra info"
}

// FileError is the interface for errors associated to an input file.
type FileError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastEventError has a useless function to distinguish the harmless errors (i.e. end of the event file) so they can be
// filtered in a typeswitch that looks for this interface.
type LastEventError interface {
	FileError
	NormalLastEventTermination() //does nothing, just to separate this interface from other FileErrors
}

//ErrDecorate asserts that err implements Error and, if so, decorates it with the caller's name.
//Other errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
		return e
	}
	return err
}
