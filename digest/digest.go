// This file is part of GopherDS.
//
// GopherDS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDS.  If not, see <https://www.gnu.org/licenses/>.

// Package digest produces a cryptographic hash of the state of the console.
// The hash can be used to compare the state of one emulation with another,
// or with a previously recorded value. If the hashes differ then something
// has changed. This is the basis of the determinism check of the command
// line tool.
package digest

// Digest implementations produce a hash of some state. The hash is only
// updated by calls to Update() and ResetDigest() returns the hash to its
// initial value.
type Digest interface {
	Hash() string
	Update() error
	ResetDigest()
}
