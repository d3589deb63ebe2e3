// Package serial implements the console device behind the emulated
// COM1 data port. Input is line-oriented and blocking; output renders
// bytes as text where possible.
package serial

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Port is the only port address the console responds to. Traffic on
// every other port reads as zero and writes are discarded, which is
// the expected behaviour for absent devices, not an error.
const Port uint16 = 0x03F8

// Console bridges the CPU's IN and OUT instructions to a line-oriented
// reader and a byte-oriented writer.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewConsole wraps a reader and writer as a console device. When the
// reader is a terminal, input reads are prompted so an interactive
// user can tell the machine is blocked on them.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
	if f, ok := in.(*os.File); ok {
		c.interactive = term.IsTerminal(int(f.Fd()))
	}
	return c
}

// In8 blocks for one line of input and returns its first byte. EOF and
// empty input read as zero.
func (c *Console) In8(port uint16) byte {
	if port != Port {
		return 0
	}
	if c.interactive {
		fmt.Fprint(c.out, "? ")
	}
	line, err := c.in.ReadString('\n')
	if len(line) == 0 {
		_ = err
		return 0
	}
	return line[0]
}

// Out8 writes ASCII bytes as characters and anything else as two hex
// digits with no separator.
func (c *Console) Out8(port uint16, value byte) {
	if port != Port {
		return
	}
	if value < 0x80 {
		fmt.Fprintf(c.out, "%c", value)
	} else {
		fmt.Fprintf(c.out, "%02x", value)
	}
}
