package cpu

import "log/slog"

// ModRM is the decoded addressing-mode byte plus any SIB byte and
// displacement that followed it in the instruction stream. A ModRM is
// built fresh for each instruction that needs one and discarded when
// the instruction completes.
type ModRM struct {
	// Mod selects the addressing form: 0-2 are memory operands with
	// no, 8-bit or 32-bit displacement, 3 is register-direct.
	Mod uint8
	// Reg names the register operand, or the operation selector for
	// the group opcodes.
	Reg uint8
	// RM names the register operand (Mod 3) or the base register of a
	// memory operand.
	RM uint8
	// SIB is the raw scale-index-base byte when one was present. It is
	// consumed but never decoded.
	SIB uint8
	// Disp is the sign-extended displacement, zero when absent.
	Disp int32
}

// ModRMFromByte splits the mod, reg and rm fields of a raw ModRM byte.
func ModRMFromByte(b byte) ModRM {
	return ModRM{
		Mod: b >> 6,
		Reg: (b >> 3) & 7,
		RM:  b & 7,
	}
}

// Byte re-encodes the mod, reg and rm fields.
func (m ModRM) Byte() byte {
	return m.Mod<<6 | m.Reg<<3 | m.RM
}

// IsRegister reports whether the rm operand is register-direct.
func (m ModRM) IsRegister() bool {
	return m.Mod == 3
}

// HasSIB reports whether a scale-index-base byte follows.
func (m ModRM) HasSIB() bool {
	return m.Mod != 3 && m.RM == 4
}

// HasDisp8 reports whether an 8-bit displacement follows.
func (m ModRM) HasDisp8() bool {
	return m.Mod == 1
}

// HasDisp32 reports whether a 32-bit displacement follows. This covers
// both mod 2 and the mod=0, rm=5 absolute-address form.
func (m ModRM) HasDisp32() bool {
	return m.Mod == 2 || (m.Mod == 0 && m.RM == 5)
}

// parseModRM decodes the ModRM byte at EIP, consuming it along with
// any SIB byte and displacement, and leaves EIP on the next byte of
// the instruction.
func (c *CPU) parseModRM() (ModRM, error) {
	b, err := c.code8(0)
	if err != nil {
		return ModRM{}, err
	}
	m := ModRMFromByte(b)
	c.EIP++

	if m.HasSIB() {
		sib, err := c.code8(0)
		if err != nil {
			return ModRM{}, err
		}
		m.SIB = sib
		c.EIP++
	}

	if m.HasDisp32() {
		disp, err := c.signCode32(0)
		if err != nil {
			return ModRM{}, err
		}
		m.Disp = disp
		c.EIP += 4
	} else if m.HasDisp8() {
		disp, err := c.signCode8(0)
		if err != nil {
			return ModRM{}, err
		}
		m.Disp = int32(disp)
		c.EIP++
	}

	slog.Debug("modrm", "mod", m.Mod, "reg", m.Reg, "rm", m.RM, "disp", m.Disp)
	return m, nil
}
