package cpu

import (
	"fmt"
	"strings"
)

// Dump renders the architectural state as text: one line for EIP, one
// per general register and one for EFLAGS, all as eight hex digits.
// It is meant for end-of-run verification and logs, not for parsing.
func (c *CPU) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "EIP = %08x\n", c.EIP)
	for i, name := range registerNames {
		fmt.Fprintf(&b, "%s = %08x\n", name, c.Regs[i])
	}
	fmt.Fprintf(&b, "EFLAGS = %08x\n", c.EFlags)
	return b.String()
}
