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

package script

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/digest"
	"github.com/jetsetilly/gopherds/hardware"
	lua "github.com/yuin/gopher-lua"
)

// LuaError is the pattern for errors raised by a Lua script. Values are the
// name of the script and the underlying error.
const LuaError = "script: %s: %v"

// Runner is implemented by both kinds of script.
type Runner interface {
	Run(nds *hardware.NDS, dig *digest.Machine, output io.Writer) error
}

// Open loads the named file as a Lua script if the file has the .lua
// extension and as a command script otherwise.
func Open(filename string) (Runner, error) {
	if strings.EqualFold(filepath.Ext(filename), ".lua") {
		return LoadLua(filename)
	}
	return Load(filename)
}

// Lua is a script written in the Lua language. The console is controlled
// with functions that mirror the commands of a command script:
//
//	write8(proc, address, value)      also write16 and write32
//	value = read8(proc, address)      also read16 and read32
//	frames(n)
//	steps(n)
//	cartridge()
//	geometry()
//	hash = digest()
//	t = timestamp()
//
// The print function writes to the output given to Run().
type Lua struct {
	name   string
	source string
}

// LoadLua loads the Lua script from the named file.
func LoadLua(filename string) (*Lua, error) {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("script: no such file: %s", filename)
		}
		return nil, fmt.Errorf("script: %w", err)
	}
	defer f.Close()

	return ReadLua(filepath.Base(filename), f)
}

// ReadLua reads the Lua script from the reader. The name is used in error
// messages.
func ReadLua(name string, r io.Reader) (*Lua, error) {
	s, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return &Lua{name: name, source: string(s)}, nil
}

// Run the Lua script against the console. The output and dig arguments are
// treated in the same way as for Script.Run().
func (scr *Lua) Run(nds *hardware.NDS, dig *digest.Machine, output io.Writer) error {
	if output == nil {
		output = io.Discard
	}
	if dig == nil {
		dig = digest.NewMachine(nds)
	}

	L := lua.NewState()
	defer L.Close()

	bind(L, nds, dig, output)

	if err := L.DoString(scr.source); err != nil {
		return curated.Errorf(LuaError, scr.name, err)
	}
	return nil
}

func bind(L *lua.LState, nds *hardware.NDS, dig *digest.Machine, output io.Writer) {
	register := func(name string, fn lua.LGFunction) {
		L.SetGlobal(name, L.NewFunction(fn))
	}

	register("print", func(L *lua.LState) int {
		s := make([]string, L.GetTop())
		for i := range s {
			s[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		fmt.Fprintln(output, strings.Join(s, "\t"))
		return 0
	})

	for _, size := range []int{8, 16, 32} {
		size := size
		register(fmt.Sprintf("write%d", size), func(L *lua.LState) int {
			proc, err := processor(L.CheckString(1))
			if err != nil {
				L.ArgError(1, err.Error())
			}
			address := uint32(L.CheckInt64(2))
			value := L.CheckInt64(3)
			switch size {
			case 8:
				nds.Mem.Write8(proc, address, uint8(value))
			case 16:
				nds.Mem.Write16(proc, address, uint16(value))
			default:
				nds.Mem.Write32(proc, address, uint32(value))
			}
			return 0
		})

		register(fmt.Sprintf("read%d", size), func(L *lua.LState) int {
			proc, err := processor(L.CheckString(1))
			if err != nil {
				L.ArgError(1, err.Error())
			}
			address := uint32(L.CheckInt64(2))
			var value uint32
			switch size {
			case 8:
				value = uint32(nds.Mem.Read8(proc, address))
			case 16:
				value = uint32(nds.Mem.Read16(proc, address))
			default:
				value = nds.Mem.Read32(proc, address)
			}
			L.Push(lua.LNumber(value))
			return 1
		})
	}

	register("frames", func(L *lua.LState) int {
		for i, n := 0, L.CheckInt(1); i < n; i++ {
			nds.RunFrame()
		}
		return 0
	})

	register("steps", func(L *lua.LState) int {
		for i, n := 0, L.CheckInt(1); i < n; i++ {
			nds.Step()
		}
		return 0
	})

	register("cartridge", func(L *lua.LState) int {
		nds.CartridgeTransfer()
		return 0
	})

	register("geometry", func(L *lua.LState) int {
		nds.DMA.RequestGeometryFIFO()
		return 0
	})

	register("digest", func(L *lua.LState) int {
		if err := dig.Update(); err != nil {
			L.RaiseError("%v", err)
		}
		L.Push(lua.LString(dig.Hash()))
		return 1
	})

	register("timestamp", func(L *lua.LState) int {
		L.Push(lua.LNumber(nds.Timeline.Now()))
		return 1
	})
}
