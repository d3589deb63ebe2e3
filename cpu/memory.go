package cpu

import "fmt"

// boundsError reports an access outside the allocated memory image.
// Out-of-range addresses are always fatal, never wrapped or clamped.
func boundsError(addr uint32, size int) error {
	return fmt.Errorf("memory access at %08X outside %d-byte image", addr, size)
}

// ReadU8 reads one byte from memory.
func (c *CPU) ReadU8(addr uint32) (byte, error) {
	if uint64(addr) >= uint64(len(c.Mem)) {
		return 0, boundsError(addr, len(c.Mem))
	}
	return c.Mem[addr], nil
}

// WriteU8 writes one byte to memory.
func (c *CPU) WriteU8(addr uint32, value byte) error {
	if uint64(addr) >= uint64(len(c.Mem)) {
		return boundsError(addr, len(c.Mem))
	}
	c.Mem[addr] = value
	return nil
}

// ReadU32 reads a little-endian 32-bit value as four byte accesses.
// No alignment is required and the address may wrap.
func (c *CPU) ReadU32(addr uint32) (uint32, error) {
	var value uint32
	for i := uint32(0); i < 4; i++ {
		b, err := c.ReadU8(addr + i)
		if err != nil {
			return 0, err
		}
		value |= uint32(b) << (8 * i)
	}
	return value, nil
}

// WriteU32 writes a little-endian 32-bit value as four byte accesses.
func (c *CPU) WriteU32(addr uint32, value uint32) error {
	for i := uint32(0); i < 4; i++ {
		if err := c.WriteU8(addr+i, byte(value>>(8*i))); err != nil {
			return err
		}
	}
	return nil
}

// Instruction-stream fetch helpers, relative to the current EIP.

func (c *CPU) code8(offset uint32) (byte, error) {
	return c.ReadU8(c.EIP + offset)
}

func (c *CPU) signCode8(offset uint32) (int8, error) {
	b, err := c.code8(offset)
	return int8(b), err
}

func (c *CPU) code32(offset uint32) (uint32, error) {
	return c.ReadU32(c.EIP + offset)
}

func (c *CPU) signCode32(offset uint32) (int32, error) {
	v, err := c.code32(offset)
	return int32(v), err
}
