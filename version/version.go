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

// Package version reports the version of the program. The version number is
// set by the linker when building a release:
//
//	go build -ldflags "-X github.com/jetsetilly/gopherds/version.number=v0.1.0"
//
// Without a number the version is "unreleased" if the build carries vcs
// information and "local" otherwise.
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "GopherDS"

// set by the linker
var number string

// Info about the build.
type Info struct {
	Version  string
	Revision string
	Release  bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

var info = sync.OnceValue(func() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return fromSettings(number, nil)
	}
	return fromSettings(number, bi.Settings)
})

// fromSettings is separate from info() so that it can be tested.
func fromSettings(number string, settings []debug.BuildSetting) Info {
	var vcs, modified bool
	var revision string

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	inf := Info{Version: number, Release: number != ""}

	if revision == "" {
		inf.Revision = "no revision information"
	} else {
		inf.Revision = revision
		if modified {
			inf.Revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if !inf.Release {
		if vcs {
			inf.Version = "unreleased"
		} else {
			inf.Version = "local"
		}
	}

	return inf
}

// Version returns the version information for the build.
func Version() Info {
	return info()
}
