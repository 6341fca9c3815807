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

// Package modalflag wraps the flag package of the standard library so that a
// command line can be split into modes, each with its own flags.
//
// Arguments are given to NewArgs() and then Parse() is called without any
// arguments. Before each call to Parse() the flags for the current mode and
// the list of sub-modes are added:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "CHECK")
//	p, err := md.Parse()
//
// After a successful parse the Mode() function returns the selected sub-mode.
// The first sub-mode in the list is the default and is selected when the
// first argument is not the name of a sub-mode. The flags for the selected
// mode are then added after a call to NewMode() and Parse() is called again.
//
// Sub-mode names are case insensitive. Help is printed to the Output writer
// when the -help flag is found and Parse() returns ParseHelp.
package modalflag
