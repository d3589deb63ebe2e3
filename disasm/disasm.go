// Package disasm is a linear disassembler for the instruction subset
// the cpu package executes. It shares the cpu package's ModRM codec so
// the two can never disagree about operand encoding.
package disasm

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/tolset/ia32/cpu"
)

// Instruction is a single decoded instruction at a specific address.
type Instruction struct {
	Address  uint32
	Mnemonic string
	Operands string
	Size     uint32
}

// String renders the instruction as one listing line.
func (i Instruction) String() string {
	if i.Operands == "" {
		return fmt.Sprintf("%08x  %s", i.Address, i.Mnemonic)
	}
	return fmt.Sprintf("%08x  %-5s %s", i.Address, i.Mnemonic, i.Operands)
}

// Disassemble decodes a flat binary image loaded at org into a listing.
// Bytes that do not start a supported instruction are emitted as db
// lines so data regions do not abort the sweep.
func Disassemble(code []byte, org uint32) (string, error) {
	var out strings.Builder
	for pos := 0; pos < len(code); {
		inst, err := decodeOne(code, pos, org)
		if err != nil {
			return "", err
		}
		out.WriteString(inst.String())
		out.WriteByte('\n')
		pos += int(inst.Size)
	}
	return out.String(), nil
}

var jccNames = map[byte]string{
	0x70: "jo", 0x71: "jno",
	0x72: "jc", 0x73: "jnc",
	0x74: "jz", 0x75: "jnz",
	0x76: "jbe", 0x77: "ja",
	0x78: "js", 0x79: "jns",
	0x7C: "jl", 0x7D: "jge",
	0x7E: "jle", 0x7F: "jg",
}

var group83Names = map[uint8]string{0: "add", 5: "sub", 7: "cmp"}

var groupFFNames = map[uint8]string{0: "inc", 1: "dec"}

// decodeOne decodes the instruction starting at pos. Unknown opcodes
// become single db pseudo-instructions.
func decodeOne(code []byte, pos int, org uint32) (Instruction, error) {
	addr := org + uint32(pos)
	op := code[pos]

	inst := Instruction{Address: addr, Size: 1}
	switch {
	case op == 0x01:
		m, used, err := readModRM(code, pos+1)
		if err != nil {
			return inst, err
		}
		inst.Mnemonic, inst.Operands = "add", rm32(m)+", "+reg32(m)
		inst.Size = 1 + used
	case op == 0x3B:
		m, used, err := readModRM(code, pos+1)
		if err != nil {
			return inst, err
		}
		inst.Mnemonic, inst.Operands = "cmp", reg32(m)+", "+rm32(m)
		inst.Size = 1 + used
	case op == 0x3C:
		imm, err := imm8(code, pos+1)
		if err != nil {
			return inst, err
		}
		inst.Mnemonic, inst.Operands = "cmp", "al, "+imm
		inst.Size = 2
	case op == 0x3D:
		imm, err := imm32(code, pos+1)
		if err != nil {
			return inst, err
		}
		inst.Mnemonic, inst.Operands = "cmp", "eax, "+imm
		inst.Size = 5
	case op >= 0x40 && op <= 0x47:
		inst.Mnemonic, inst.Operands = "inc", regName32(op-0x40)
	case op >= 0x50 && op <= 0x57:
		inst.Mnemonic, inst.Operands = "push", regName32(op-0x50)
	case op >= 0x58 && op <= 0x5F:
		inst.Mnemonic, inst.Operands = "pop", regName32(op-0x58)
	case op == 0x68:
		imm, err := imm32(code, pos+1)
		if err != nil {
			return inst, err
		}
		inst.Mnemonic, inst.Operands = "push", imm
		inst.Size = 5
	case op == 0x6A:
		imm, err := imm8(code, pos+1)
		if err != nil {
			return inst, err
		}
		inst.Mnemonic, inst.Operands = "push", imm
		inst.Size = 2
	case jccNames[op] != "":
		if pos+1 >= len(code) {
			return inst, truncated(addr)
		}
		target := addr + 2 + uint32(int32(int8(code[pos+1])))
		inst.Mnemonic, inst.Operands = jccNames[op], fmt.Sprintf("0x%x", target)
		inst.Size = 2
	case op == 0x83:
		m, used, err := readModRM(code, pos+1)
		if err != nil {
			return inst, err
		}
		name := group83Names[m.Reg]
		if name == "" {
			break // unknown selector, fall through to db
		}
		imm, err := imm8(code, pos+1+int(used))
		if err != nil {
			return inst, err
		}
		inst.Mnemonic, inst.Operands = name, rm32(m)+", "+imm
		inst.Size = 2 + used
	case op == 0x88:
		m, used, err := readModRM(code, pos+1)
		if err != nil {
			return inst, err
		}
		inst.Mnemonic, inst.Operands = "mov", rm8(m)+", "+reg8(m)
		inst.Size = 1 + used
	case op == 0x89:
		m, used, err := readModRM(code, pos+1)
		if err != nil {
			return inst, err
		}
		inst.Mnemonic, inst.Operands = "mov", rm32(m)+", "+reg32(m)
		inst.Size = 1 + used
	case op == 0x8A:
		m, used, err := readModRM(code, pos+1)
		if err != nil {
			return inst, err
		}
		inst.Mnemonic, inst.Operands = "mov", reg8(m)+", "+rm8(m)
		inst.Size = 1 + used
	case op == 0x8B:
		m, used, err := readModRM(code, pos+1)
		if err != nil {
			return inst, err
		}
		inst.Mnemonic, inst.Operands = "mov", reg32(m)+", "+rm32(m)
		inst.Size = 1 + used
	case op >= 0xB0 && op <= 0xB7:
		imm, err := imm8(code, pos+1)
		if err != nil {
			return inst, err
		}
		inst.Mnemonic, inst.Operands = "mov", regName8(op-0xB0)+", "+imm
		inst.Size = 2
	case op >= 0xB8 && op <= 0xBF:
		imm, err := imm32(code, pos+1)
		if err != nil {
			return inst, err
		}
		inst.Mnemonic, inst.Operands = "mov", regName32(op-0xB8)+", "+imm
		inst.Size = 5
	case op == 0xC3:
		inst.Mnemonic = "ret"
	case op == 0xC7:
		m, used, err := readModRM(code, pos+1)
		if err != nil {
			return inst, err
		}
		imm, err := imm32(code, pos+1+int(used))
		if err != nil {
			return inst, err
		}
		inst.Mnemonic, inst.Operands = "mov", rm32(m)+", "+imm
		inst.Size = 5 + used
	case op == 0xC9:
		inst.Mnemonic = "leave"
	case op == 0xE8, op == 0xE9:
		if pos+5 > len(code) {
			return inst, truncated(addr)
		}
		disp := int32(binary.LittleEndian.Uint32(code[pos+1:]))
		target := addr + 5 + uint32(disp)
		inst.Mnemonic = "call"
		if op == 0xE9 {
			inst.Mnemonic = "jmp"
		}
		inst.Operands = fmt.Sprintf("0x%x", target)
		inst.Size = 5
	case op == 0xEB:
		if pos+1 >= len(code) {
			return inst, truncated(addr)
		}
		target := addr + 2 + uint32(int32(int8(code[pos+1])))
		inst.Mnemonic, inst.Operands = "jmp", fmt.Sprintf("short 0x%x", target)
		inst.Size = 2
	case op == 0xEC:
		inst.Mnemonic, inst.Operands = "in", "al, dx"
	case op == 0xEE:
		inst.Mnemonic, inst.Operands = "out", "dx, al"
	case op == 0xFF:
		m, used, err := readModRM(code, pos+1)
		if err != nil {
			return inst, err
		}
		name := groupFFNames[m.Reg]
		if name == "" {
			break
		}
		inst.Mnemonic, inst.Operands = name, "dword "+rm32(m)
		inst.Size = 1 + used
	}

	if inst.Mnemonic == "" {
		inst.Mnemonic = "db"
		inst.Operands = fmt.Sprintf("0x%02x", op)
		inst.Size = 1
	}
	return inst, nil
}

func truncated(addr uint32) error {
	return fmt.Errorf("truncated instruction at %08x", addr)
}

// readModRM parses a ModRM byte and its SIB byte and displacement,
// returning the total number of bytes consumed.
func readModRM(code []byte, pos int) (cpu.ModRM, uint32, error) {
	if pos >= len(code) {
		return cpu.ModRM{}, 0, truncated(uint32(pos))
	}
	m := cpu.ModRMFromByte(code[pos])
	used := uint32(1)
	if m.HasSIB() {
		if pos+int(used) >= len(code) {
			return m, used, truncated(uint32(pos))
		}
		m.SIB = code[pos+int(used)]
		used++
	}
	if m.HasDisp32() {
		if pos+int(used)+4 > len(code) {
			return m, used, truncated(uint32(pos))
		}
		m.Disp = int32(binary.LittleEndian.Uint32(code[pos+int(used):]))
		used += 4
	} else if m.HasDisp8() {
		if pos+int(used) >= len(code) {
			return m, used, truncated(uint32(pos))
		}
		m.Disp = int32(int8(code[pos+int(used)]))
		used++
	}
	return m, used, nil
}

func regName32(index byte) string {
	return strings.ToLower(cpu.RegisterName(int(index)))
}

func regName8(index byte) string {
	return strings.ToLower(cpu.Register8Name(int(index)))
}

func reg32(m cpu.ModRM) string { return regName32(m.Reg) }

func reg8(m cpu.ModRM) string { return regName8(m.Reg) }

// rm32 renders the rm operand of a 32-bit instruction.
func rm32(m cpu.ModRM) string { return rmString(m, regName32) }

// rm8 renders the rm operand of an 8-bit instruction.
func rm8(m cpu.ModRM) string { return rmString(m, regName8) }

func rmString(m cpu.ModRM, name func(byte) string) string {
	if m.IsRegister() {
		return name(m.RM)
	}
	if m.HasSIB() {
		// Not executable, but the byte is still part of the encoding.
		return fmt.Sprintf("[sib 0x%02x]", m.SIB)
	}
	if m.Mod == 0 && m.RM == 5 {
		return fmt.Sprintf("[0x%x]", uint32(m.Disp))
	}
	base := regName32(m.RM)
	switch {
	case m.Disp > 0:
		return fmt.Sprintf("[%s+0x%x]", base, m.Disp)
	case m.Disp < 0:
		return fmt.Sprintf("[%s-0x%x]", base, -m.Disp)
	}
	return "[" + base + "]"
}

func imm8(code []byte, pos int) (string, error) {
	if pos >= len(code) {
		return "", truncated(uint32(pos))
	}
	return fmt.Sprintf("0x%x", code[pos]), nil
}

func imm32(code []byte, pos int) (string, error) {
	if pos+4 > len(code) {
		return "", truncated(uint32(pos))
	}
	return fmt.Sprintf("0x%x", binary.LittleEndian.Uint32(code[pos:])), nil
}
