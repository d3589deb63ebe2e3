package cpu

import "fmt"

// All arithmetic in this subset wraps silently modulo 2^32. Only the
// compare and subtract-immediate operations update the flags; add, inc
// and dec leave them untouched, matching the hardware encoding this
// subset was built from.

// addRM32R32 handles 0x01: add rm32, r32.
func (c *CPU) addRM32R32() error {
	c.EIP++
	m, err := c.parseModRM()
	if err != nil {
		return err
	}
	rm, err := c.GetRM32(m)
	if err != nil {
		return err
	}
	return c.SetRM32(m, rm+c.GetR32(m))
}

// addRM32Imm8 handles 0x83 /0: add rm32, imm8 (sign-extended).
func (c *CPU) addRM32Imm8(m ModRM) error {
	rm, err := c.GetRM32(m)
	if err != nil {
		return err
	}
	imm, err := c.signCode8(0)
	if err != nil {
		return err
	}
	c.EIP++
	return c.SetRM32(m, rm+uint32(int32(imm)))
}

// subRM32Imm8 handles 0x83 /5: sub rm32, imm8 (sign-extended).
func (c *CPU) subRM32Imm8(m ModRM) error {
	rm, err := c.GetRM32(m)
	if err != nil {
		return err
	}
	imm, err := c.signCode8(0)
	if err != nil {
		return err
	}
	c.EIP++
	b := uint32(int32(imm))
	c.updateEFlagsSub(rm, b, uint64(rm)-uint64(b))
	return c.SetRM32(m, rm-b)
}

// cmpRM32Imm8 handles 0x83 /7: cmp rm32, imm8 (sign-extended).
func (c *CPU) cmpRM32Imm8(m ModRM) error {
	rm, err := c.GetRM32(m)
	if err != nil {
		return err
	}
	imm, err := c.signCode8(0)
	if err != nil {
		return err
	}
	c.EIP++
	b := uint32(int32(imm))
	c.updateEFlagsSub(rm, b, uint64(rm)-uint64(b))
	return nil
}

// opcode83 dispatches the immediate-operand group. The operation is
// selected by the reg field of the ModRM byte; selectors outside the
// subset are fatal.
func (c *CPU) opcode83() error {
	c.EIP++
	m, err := c.parseModRM()
	if err != nil {
		return err
	}
	switch m.Reg {
	case 0:
		return c.addRM32Imm8(m)
	case 5:
		return c.subRM32Imm8(m)
	case 7:
		return c.cmpRM32Imm8(m)
	}
	return fmt.Errorf("unsupported group 0x83 selector /%d", m.Reg)
}

// cmpR32RM32 handles 0x3B: cmp r32, rm32.
func (c *CPU) cmpR32RM32() error {
	c.EIP++
	m, err := c.parseModRM()
	if err != nil {
		return err
	}
	r := c.GetR32(m)
	rm, err := c.GetRM32(m)
	if err != nil {
		return err
	}
	c.updateEFlagsSub(r, rm, uint64(r)-uint64(rm))
	return nil
}

// cmpALImm8 handles 0x3C: cmp al, imm8.
func (c *CPU) cmpALImm8() error {
	value, err := c.code8(1)
	if err != nil {
		return err
	}
	al := c.Register8(AL)
	c.updateEFlagsSub(uint32(al), uint32(value), uint64(al)-uint64(value))
	c.EIP += 2
	return nil
}

// cmpEAXImm32 handles 0x3D: cmp eax, imm32.
func (c *CPU) cmpEAXImm32() error {
	value, err := c.code32(1)
	if err != nil {
		return err
	}
	eax := c.Regs[EAX]
	c.updateEFlagsSub(eax, value, uint64(eax)-uint64(value))
	c.EIP += 5
	return nil
}

// incR32 handles the 0x40+r family: inc r32.
func (c *CPU) incR32() error {
	code, err := c.code8(0)
	if err != nil {
		return err
	}
	c.Regs[code-0x40]++
	c.EIP++
	return nil
}

// incRM32 handles 0xFF /0: inc rm32.
func (c *CPU) incRM32(m ModRM) error {
	value, err := c.GetRM32(m)
	if err != nil {
		return err
	}
	return c.SetRM32(m, value+1)
}

// decRM32 handles 0xFF /1: dec rm32.
func (c *CPU) decRM32(m ModRM) error {
	value, err := c.GetRM32(m)
	if err != nil {
		return err
	}
	return c.SetRM32(m, value-1)
}

// opcodeFF dispatches the inc/dec-through-memory group by the reg
// field of the ModRM byte.
func (c *CPU) opcodeFF() error {
	c.EIP++
	m, err := c.parseModRM()
	if err != nil {
		return err
	}
	switch m.Reg {
	case 0:
		return c.incRM32(m)
	case 1:
		return c.decRM32(m)
	}
	return fmt.Errorf("unsupported group 0xFF selector /%d", m.Reg)
}
