package cpu

import (
	"fmt"
	"log/slog"
)

// Step fetches, decodes and executes a single instruction. Any failure
// is fatal to the run: there is no partial-instruction rollback.
func (c *CPU) Step() error {
	eip := c.EIP
	code, err := c.code8(0)
	if err != nil {
		return err
	}
	slog.Debug("fetch", "eip", fmt.Sprintf("%08x", eip), "code", fmt.Sprintf("%02x", code))

	handler, err := c.Instruction()
	if err != nil {
		return fmt.Errorf("at %08X: %w", eip, err)
	}
	if err := handler(c); err != nil {
		return fmt.Errorf("opcode %02X at %08X: %w", code, eip, err)
	}
	return nil
}
