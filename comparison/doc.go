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

// Package comparison runs several emulations of the console in parallel, each
// from the same starting state, and compares the digest of each emulation
// after every frame. Any difference in the digests means that the emulation
// is not deterministic.
//
// Every instance has its own timeline and its own peripherals. Nothing is
// shared between instances except the preferences, which are only read. The
// instances are labelled so that none of them is the main emulation and
// therefore none of them logs.
package comparison
