package cpu

// General-purpose register indices into Regs. The order matches the
// hardware encoding, so the register-in-opcode instruction families
// (0x40+r, 0x50+r, 0xB8+r and friends) index Regs directly.
const (
	EAX = iota
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
)

// 8-bit register indices. AL through BL alias the low byte of EAX
// through EBX; AH through BH (index+4) alias the second byte of the
// same registers. There are no 16-bit views.
const (
	AL = EAX
	CL = ECX
	DL = EDX
	BL = EBX
	AH = AL + 4
	CH = CL + 4
	DH = DL + 4
	BH = BL + 4
)

// PortIO is the device on the far side of the IN and OUT instructions.
// Implementations decide which port addresses they respond to.
type PortIO interface {
	In8(port uint16) byte
	Out8(port uint16, value byte)
}

// CPU holds the architectural state: eight general-purpose registers,
// the EFLAGS word, the instruction pointer, and a flat byte-addressable
// memory. All program-counter arithmetic wraps modulo 2^32.
type CPU struct {
	// Regs is indexed by EAX..EDI.
	Regs [8]uint32
	// EFlags stores the condition flags. Only the carry, zero, sign
	// and overflow bits are ever read or written.
	EFlags uint32
	// EIP is the instruction pointer.
	EIP uint32
	// Mem is the flat memory image, little-endian for multi-byte access.
	Mem []byte
	// Ports receives IN/OUT traffic. A nil device reads as zero and
	// discards writes.
	Ports PortIO
}

// New creates a CPU with the given memory size, entry point and initial
// stack pointer. Memory is zero-filled.
func New(memsize int, eip, esp uint32) *CPU {
	c := &CPU{
		Mem: make([]byte, memsize),
		EIP: eip,
	}
	c.Regs[ESP] = esp
	return c
}

// LoadCode copies a program image to the given address and points the
// instruction pointer at it.
func (c *CPU) LoadCode(addr uint32, code []byte) error {
	if uint64(addr)+uint64(len(code)) > uint64(len(c.Mem)) {
		return boundsError(addr, len(c.Mem))
	}
	copy(c.Mem[addr:], code)
	c.EIP = addr
	return nil
}

var registerNames = [8]string{"EAX", "ECX", "EDX", "EBX", "ESP", "EBP", "ESI", "EDI"}

var register8Names = [8]string{"AL", "CL", "DL", "BL", "AH", "CH", "DH", "BH"}

// RegisterName returns the canonical name of a 32-bit register index.
func RegisterName(index int) string {
	return registerNames[index&7]
}

// Register8Name returns the canonical name of an 8-bit register index.
func Register8Name(index int) string {
	return register8Names[index&7]
}
