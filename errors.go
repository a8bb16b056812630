/*
 * errors.go, part of gopucker
 *
 * Copyright 2024 The gopucker authors
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package pucker

import "fmt"

// Error is the interface implemented by every error produced in this package.
// The Decorate method allows to add and retrieve info from the error as it
// travels up the call stack, without changing its type or wrapping it around
// something else. If passed an empty string, it just returns the current
// decoration slice.
type Error interface {
	error
	Decorate(string) []string
}

//UnknownSystemError is returned when a system name has no registered
//ring-index table.
type UnknownSystemError struct {
	System string
	deco   []string
}

func (err *UnknownSystemError) Error() string {
	return fmt.Sprintf("gopucker: no ring indices registered for system %q", err.System)
}

func (err *UnknownSystemError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//InvalidRingSizeError is returned when a ring has less than 5 or more than
//20 atoms. The Cremer-Pople decomposition is not defined outside that range.
type InvalidRingSizeError struct {
	Size int
	deco []string
}

func (err *InvalidRingSizeError) Error() string {
	return fmt.Sprintf("gopucker: ring size %d outside the supported [5,20] range", err.Size)
}

func (err *InvalidRingSizeError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//DegenerateRingError is returned when the mean-plane vectors R1 and R2 are
//(near-)parallel, so the plane normal is undefined.
type DegenerateRingError struct {
	Norm float64 //the offending |R1xR2|
	deco []string
}

func (err *DegenerateRingError) Error() string {
	return fmt.Sprintf("gopucker: mean-plane axes nearly parallel (|R1xR2| = %g), normal undefined", err.Norm)
}

func (err *DegenerateRingError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//UnsupportedRingSizeError is returned when the spherical-polar reduction is
//requested for a ring other than a six-membered one.
type UnsupportedRingSizeError struct {
	Amplitudes int //how many amplitude components were given
	deco       []string
}

func (err *UnsupportedRingSizeError) Error() string {
	return fmt.Sprintf("gopucker: spherical-polar reduction needs exactly 2 amplitude components (six-membered ring), got %d", err.Amplitudes)
}

func (err *UnsupportedRingSizeError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//MalformedGeometryError is returned for geometry files that cannot be parsed,
//or frames with fewer atoms than a ring-index table requires.
type MalformedGeometryError struct {
	File   string
	Line   int //0 when the problem is not tied to a line
	Reason string
	deco   []string
}

func (err *MalformedGeometryError) Error() string {
	if err.Line > 0 {
		return fmt.Sprintf("gopucker: %s, line %d: %s", err.File, err.Line, err.Reason)
	}
	return fmt.Sprintf("gopucker: %s: %s", err.File, err.Reason)
}

func (err *MalformedGeometryError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it. Non-Error errors are wrapped instead.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return fmt.Errorf("%s: %w", caller, err)
	}
	err2.Decorate(caller)
	return err2
}
