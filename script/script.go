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
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/digest"
	"github.com/jetsetilly/gopherds/hardware"
	"github.com/jetsetilly/gopherds/hardware/cpu"
)

// Error patterns.
const (
	// values are the line number and the underlying error
	LineError = "script: line %d: %v"

	UnknownCommand = "unknown command (%s)"
	WrongArguments = "wrong number of arguments for %s"
	BadNumber      = "bad number (%s)"
	BadProcessor   = "bad processor (%s)"
	Mismatch       = "%s %s %#08x: read %#x expected %#x"
)

// Line is a single command from a script.
type Line struct {
	Number int
	Fields []string
}

// Script is a list of commands.
type Script struct {
	lines []Line
}

// Load the script from the named file.
func Load(filename string) (*Script, error) {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("script: no such file: %s", filename)
		}
		return nil, fmt.Errorf("script: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read the script from the reader.
func Read(r io.Reader) (*Script, error) {
	s, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}

	input := strings.ReplaceAll(string(s), "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	scr := &Script{}
	for i, ln := range strings.Split(input, "\n") {
		ln, _, _ = strings.Cut(ln, "#")
		for _, cmd := range strings.Split(ln, ";") {
			f := strings.Fields(cmd)
			if len(f) == 0 {
				continue
			}
			f[0] = strings.ToLower(f[0])
			scr.lines = append(scr.lines, Line{Number: i + 1, Fields: f})
		}
	}

	return scr, nil
}

// Len returns the number of commands in the script.
func (scr *Script) Len() int {
	return len(scr.lines)
}

// Run every command in the script against the console. Output from read and
// digest commands is written to output, which can be nil. The dig argument
// is used by the digest command and can also be nil, in which case a digest
// is created for the console.
func (scr *Script) Run(nds *hardware.NDS, dig *digest.Machine, output io.Writer) error {
	if output == nil {
		output = io.Discard
	}
	if dig == nil {
		dig = digest.NewMachine(nds)
	}

	for _, ln := range scr.lines {
		if err := run(nds, dig, output, ln.Fields); err != nil {
			return curated.Errorf(LineError, ln.Number, err)
		}
	}
	return nil
}

func number(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, curated.Errorf(BadNumber, s)
	}
	return v, nil
}

func processor(s string) (cpu.ID, error) {
	switch strings.ToLower(s) {
	case "a", "arm9":
		return cpu.ARM9, nil
	case "b", "arm7":
		return cpu.ARM7, nil
	}
	return 0, curated.Errorf(BadProcessor, s)
}

func run(nds *hardware.NDS, dig *digest.Machine, output io.Writer, f []string) error {
	cmd := f[0]
	args := f[1:]

	switch cmd {
	case "write8", "write16", "write32":
		if len(args) != 3 {
			return curated.Errorf(WrongArguments, cmd)
		}
		proc, err := processor(args[0])
		if err != nil {
			return err
		}
		address, err := number(args[1])
		if err != nil {
			return err
		}
		value, err := number(args[2])
		if err != nil {
			return err
		}
		switch cmd {
		case "write8":
			nds.Mem.Write8(proc, uint32(address), uint8(value))
		case "write16":
			nds.Mem.Write16(proc, uint32(address), uint16(value))
		default:
			nds.Mem.Write32(proc, uint32(address), uint32(value))
		}

	case "read8", "read16", "read32":
		if len(args) != 2 && len(args) != 3 {
			return curated.Errorf(WrongArguments, cmd)
		}
		proc, err := processor(args[0])
		if err != nil {
			return err
		}
		address, err := number(args[1])
		if err != nil {
			return err
		}

		var value uint32
		switch cmd {
		case "read8":
			value = uint32(nds.Mem.Read8(proc, uint32(address)))
		case "read16":
			value = uint32(nds.Mem.Read16(proc, uint32(address)))
		default:
			value = nds.Mem.Read32(proc, uint32(address))
		}

		if len(args) == 2 {
			fmt.Fprintf(output, "%s %#08x: %#x\n", proc, address, value)
			return nil
		}

		expected, err := number(args[2])
		if err != nil {
			return err
		}
		if uint64(value) != expected {
			return curated.Errorf(Mismatch, cmd, proc, address, value, expected)
		}

	case "frames", "steps":
		if len(args) != 1 {
			return curated.Errorf(WrongArguments, cmd)
		}
		n, err := number(args[0])
		if err != nil {
			return err
		}
		for i := uint64(0); i < n; i++ {
			if cmd == "frames" {
				nds.RunFrame()
			} else {
				nds.Step()
			}
		}

	case "cartridge":
		nds.CartridgeTransfer()

	case "geometry":
		nds.DMA.RequestGeometryFIFO()

	case "digest":
		if err := dig.Update(); err != nil {
			return err
		}
		fmt.Fprintln(output, dig.Hash())

	default:
		return curated.Errorf(UnknownCommand, cmd)
	}

	return nil
}
