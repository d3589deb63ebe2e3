package cpu

// EFLAGS bit positions. Every other bit of the flags word is inert
// storage that no instruction in the supported subset reads.
const (
	FlagCarry    uint32 = 1 << 0
	FlagZero     uint32 = 1 << 6
	FlagSign     uint32 = 1 << 7
	FlagOverflow uint32 = 1 << 11
)

func (c *CPU) setFlag(mask uint32, on bool) {
	if on {
		c.EFlags |= mask
	} else {
		c.EFlags &^= mask
	}
}

// Carry reports the carry flag.
func (c *CPU) Carry() bool { return c.EFlags&FlagCarry != 0 }

// Zero reports the zero flag.
func (c *CPU) Zero() bool { return c.EFlags&FlagZero != 0 }

// Sign reports the sign flag.
func (c *CPU) Sign() bool { return c.EFlags&FlagSign != 0 }

// Overflow reports the overflow flag.
func (c *CPU) Overflow() bool { return c.EFlags&FlagOverflow != 0 }

// SetCarry sets or clears the carry flag.
func (c *CPU) SetCarry(on bool) { c.setFlag(FlagCarry, on) }

// SetZero sets or clears the zero flag.
func (c *CPU) SetZero(on bool) { c.setFlag(FlagZero, on) }

// SetSign sets or clears the sign flag.
func (c *CPU) SetSign(on bool) { c.setFlag(FlagSign, on) }

// SetOverflow sets or clears the overflow flag.
func (c *CPU) SetOverflow(on bool) { c.setFlag(FlagOverflow, on) }

// Composite branch conditions. Below-or-equal is the unsigned ordering,
// less and less-or-equal the signed ones.

func (c *CPU) condBelowEqual() bool { return c.Carry() || c.Zero() }

func (c *CPU) condLess() bool { return c.Sign() != c.Overflow() }

func (c *CPU) condLessEqual() bool { return c.Zero() || c.condLess() }

// updateEFlagsSub sets the four condition flags from the subtraction
// a - b, whose result must have been computed in the 64-bit domain so
// the borrow survives as bit 32. Only compare and subtract-immediate
// instructions call this; add, inc and dec leave the flags alone.
func (c *CPU) updateEFlagsSub(a, b uint32, result uint64) {
	signA := a>>31 != 0
	signB := b>>31 != 0
	signR := result>>31&1 != 0

	c.SetCarry(result>>32 != 0)
	c.SetZero(uint32(result) == 0)
	c.SetSign(signR)
	c.SetOverflow(signA != signB && signA != signR)
}
