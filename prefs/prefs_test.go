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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopherds/prefs"
	"github.com/jetsetilly/gopherds/test"
)

func TestBool(t *testing.T) {
	var b prefs.Bool
	test.ExpectEquality(t, b.String(), "false")

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectEquality(t, b.Get().(bool), true)

	test.ExpectSuccess(t, b.Set("TRUE"))
	test.ExpectEquality(t, b.Get().(bool), true)

	test.ExpectSuccess(t, b.Set("foo"))
	test.ExpectEquality(t, b.Get().(bool), false)

	test.ExpectFailure(t, b.Set(10))
}

func TestInt(t *testing.T) {
	var i prefs.Int
	test.ExpectEquality(t, i.String(), "0")

	test.ExpectSuccess(t, i.Set(20))
	test.ExpectEquality(t, i.Get().(int), 20)

	test.ExpectSuccess(t, i.Set("0x4000"))
	test.ExpectEquality(t, i.Get().(int), 0x4000)

	test.ExpectFailure(t, i.Set("foo"))
	test.ExpectEquality(t, i.Get().(int), 0x4000)

	i.SetRange(1, 100)
	test.ExpectFailure(t, i.Set(0))
	test.ExpectFailure(t, i.Set(101))
	test.ExpectSuccess(t, i.Set(100))
}

func TestHook(t *testing.T) {
	var s prefs.String
	var seen string
	s.SetHookPost(func(v prefs.Value) error {
		seen = v.(string)
		return nil
	})
	test.ExpectSuccess(t, s.Set("reaches"))
	test.ExpectEquality(t, seen, "reaches")
	test.ExpectEquality(t, s.String(), "reaches")
}

func TestDictionary(t *testing.T) {
	var slice prefs.Int
	var logging prefs.Bool

	dct := prefs.NewDictionary()
	dct.Add("timeline.slice", &slice)
	dct.Add("bus.logunmapped", &logging)

	unused, err := dct.Apply("timeline.slice:: 16; bus.logunmapped::true; foo::bar; baz_qux")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, unused, "foo::bar")
	test.ExpectEquality(t, slice.Get().(int), 16)
	test.ExpectEquality(t, logging.Get().(bool), true)

	test.ExpectEquality(t, dct.String(), "bus.logunmapped::true; timeline.slice::16")

	_, err = dct.Apply("timeline.slice::x")
	test.ExpectFailure(t, err)
}
