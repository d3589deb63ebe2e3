// Package vm wires the CPU core to a memory image and drives the
// fetch-execute loop until the program transfers control to address
// zero.
package vm

import (
	"fmt"
	"os"

	"github.com/tolset/ia32/cpu"
	"github.com/tolset/ia32/serial"
)

// Conventions shared with the hand-built test binaries: one megabyte
// of memory with the image loaded, entered and stacked at 0x7C00.
const (
	DefaultMemSize = 0x100000
	DefaultOrg     = 0x7C00
)

// VM owns a CPU for the lifetime of one program run.
type VM struct {
	CPU *cpu.CPU
	// StepLimit aborts the run after this many instructions when
	// non-zero. Useful against runaway images.
	StepLimit int

	org uint32
}

// New creates a machine with the given memory size and load address,
// with the stack pointer starting at the load address and the console
// wired to the process's standard streams.
func New(memsize int, org uint32) *VM {
	c := cpu.New(memsize, org, org)
	c.Ports = serial.NewConsole(os.Stdin, os.Stdout)
	return &VM{CPU: c, org: org}
}

// LoadImage copies a flat binary image to the load address.
func (v *VM) LoadImage(image []byte) error {
	return v.CPU.LoadCode(v.org, image)
}

// Run executes instructions until EIP reaches zero. Images arrange
// this with a jump to address zero or a final RET that pops from
// zero-filled stack memory; there is no halt instruction.
func (v *VM) Run() error {
	steps := 0
	for v.CPU.EIP != 0 {
		if err := v.CPU.Step(); err != nil {
			return err
		}
		steps++
		if v.StepLimit > 0 && steps >= v.StepLimit && v.CPU.EIP != 0 {
			return fmt.Errorf("step limit of %d instructions exceeded at %08X", v.StepLimit, v.CPU.EIP)
		}
	}
	return nil
}
