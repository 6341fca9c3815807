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

// Package hardware is the base package for the console emulation. It and its
// sub-packages contain everything required for a headless emulation of the
// two processors and the peripherals they share.
//
// The NDS type is the root of the emulation. It owns the system timeline and
// decides, each step, how far each processor runs and which of the scheduled
// events are dispatched.
//
// The timeline runs at the rate of the ARM7. The ARM9 runs at twice that rate
// so its local clock is compared against the timestamp shifted left by one.
// A processor never runs beyond the timestamp and neither processor runs
// while a DMA transfer is in progress.
//
// The instruction interpreters are not part of this package. Anything that
// implements the cpu.Processor interface can be attached. The cpu.Idle type
// is a processor that runs no program and is useful for exercising the
// peripherals on their own.
package hardware
