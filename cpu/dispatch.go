package cpu

import "fmt"

// Handler executes a single instruction, decoding any operands it
// needs and leaving EIP on the next instruction to fetch.
type Handler func(*CPU) error

// Instruction maps the opcode byte at EIP to its handler. The mapping
// is total over the supported subset; any other byte is a fatal
// unsupported-opcode condition, never a no-op.
func (c *CPU) Instruction() (Handler, error) {
	code, err := c.code8(0)
	if err != nil {
		return nil, err
	}

	switch {
	case code == 0x01:
		return (*CPU).addRM32R32, nil
	case code == 0x3B:
		return (*CPU).cmpR32RM32, nil
	case code == 0x3C:
		return (*CPU).cmpALImm8, nil
	case code == 0x3D:
		return (*CPU).cmpEAXImm32, nil
	case code >= 0x40 && code <= 0x47:
		return (*CPU).incR32, nil
	case code >= 0x50 && code <= 0x57:
		return (*CPU).pushR32, nil
	case code >= 0x58 && code <= 0x5F:
		return (*CPU).popR32, nil
	case code == 0x68:
		return (*CPU).pushImm32, nil
	case code == 0x6A:
		return (*CPU).pushImm8, nil
	case code == 0x70:
		return jcc((*CPU).Overflow, false), nil
	case code == 0x71:
		return jcc((*CPU).Overflow, true), nil
	case code == 0x72:
		return jcc((*CPU).Carry, false), nil
	case code == 0x73:
		return jcc((*CPU).Carry, true), nil
	case code == 0x74:
		return jcc((*CPU).Zero, false), nil
	case code == 0x75:
		return jcc((*CPU).Zero, true), nil
	case code == 0x76:
		return jcc((*CPU).condBelowEqual, false), nil
	case code == 0x77:
		return jcc((*CPU).condBelowEqual, true), nil
	case code == 0x78:
		return jcc((*CPU).Sign, false), nil
	case code == 0x79:
		return jcc((*CPU).Sign, true), nil
	case code == 0x7C:
		return jcc((*CPU).condLess, false), nil
	case code == 0x7D:
		return jcc((*CPU).condLess, true), nil
	case code == 0x7E:
		return jcc((*CPU).condLessEqual, false), nil
	case code == 0x7F:
		return jcc((*CPU).condLessEqual, true), nil
	case code == 0x83:
		return (*CPU).opcode83, nil
	case code == 0x88:
		return (*CPU).movRM8R8, nil
	case code == 0x89:
		return (*CPU).movRM32R32, nil
	case code == 0x8A:
		return (*CPU).movR8RM8, nil
	case code == 0x8B:
		return (*CPU).movR32RM32, nil
	case code >= 0xB0 && code <= 0xB7:
		return (*CPU).movR8Imm8, nil
	case code >= 0xB8 && code <= 0xBF:
		return (*CPU).movR32Imm32, nil
	case code == 0xC3:
		return (*CPU).ret, nil
	case code == 0xC7:
		return (*CPU).movRM32Imm32, nil
	case code == 0xC9:
		return (*CPU).leave, nil
	case code == 0xE8:
		return (*CPU).callRel32, nil
	case code == 0xE9:
		return (*CPU).nearJump, nil
	case code == 0xEB:
		return (*CPU).shortJump, nil
	case code == 0xEC:
		return (*CPU).inALDX, nil
	case code == 0xEE:
		return (*CPU).outDXAL, nil
	case code == 0xFF:
		return (*CPU).opcodeFF, nil
	}
	return nil, fmt.Errorf("unsupported opcode %02X", code)
}
