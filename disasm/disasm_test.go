package disasm

import (
	"strings"
	"testing"
)

func TestDecodeOne(t *testing.T) {
	tests := []struct {
		name     string
		code     []byte
		mnemonic string
		operands string
		size     uint32
	}{
		{"MovImm32", []byte{0xB8, 0x29, 0x00, 0x00, 0x00}, "mov", "eax, 0x29", 5},
		{"MovImm8High", []byte{0xB4, 0x5A}, "mov", "ah, 0x5a", 2},
		{"MovRM32", []byte{0x89, 0x45, 0xFC}, "mov", "[ebp-0x4], eax", 3},
		{"MovR32Absolute", []byte{0x8B, 0x0D, 0x00, 0x7C, 0x00, 0x00}, "mov", "ecx, [0x7c00]", 6},
		{"MovRM8", []byte{0x88, 0x03}, "mov", "[ebx], al", 2},
		{"MovRM32Imm32", []byte{0xC7, 0x43, 0x08, 0x2A, 0x00, 0x00, 0x00}, "mov", "[ebx+0x8], 0x2a", 7},
		{"AddRM32R32", []byte{0x01, 0xD8}, "add", "eax, ebx", 2},
		{"CmpR32RM32", []byte{0x3B, 0xC3}, "cmp", "eax, ebx", 2},
		{"CmpALImm8", []byte{0x3C, 0x30}, "cmp", "al, 0x30", 2},
		{"CmpEAXImm32", []byte{0x3D, 0x05, 0x00, 0x00, 0x00}, "cmp", "eax, 0x5", 5},
		{"SubImm8", []byte{0x83, 0xEC, 0x04}, "sub", "esp, 0x4", 3},
		{"CmpImm8", []byte{0x83, 0xFB, 0x0A}, "cmp", "ebx, 0xa", 3},
		{"IncR32", []byte{0x46}, "inc", "esi", 1},
		{"IncRM32", []byte{0xFF, 0x03}, "inc", "dword [ebx]", 2},
		{"DecRM32", []byte{0xFF, 0x4D, 0xF8}, "dec", "dword [ebp-0x8]", 3},
		{"PushR32", []byte{0x55}, "push", "ebp", 1},
		{"PushImm32", []byte{0x68, 0xEF, 0xBE, 0xAD, 0xDE}, "push", "0xdeadbeef", 5},
		{"PushImm8", []byte{0x6A, 0x07}, "push", "0x7", 2},
		{"PopR32", []byte{0x59}, "pop", "ecx", 1},
		{"Ret", []byte{0xC3}, "ret", "", 1},
		{"Leave", []byte{0xC9}, "leave", "", 1},
		{"In", []byte{0xEC}, "in", "al, dx", 1},
		{"Out", []byte{0xEE}, "out", "dx, al", 1},
		{"UnknownByte", []byte{0x0F}, "db", "0x0f", 1},
		{"Group83UnknownSelector", []byte{0x83, 0xDB, 0x01}, "db", "0x83", 1},
		{"GroupFFUnknownSelector", []byte{0xFF, 0xD0}, "db", "0xff", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := decodeOne(tt.code, 0, 0x7C00)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if inst.Mnemonic != tt.mnemonic || inst.Operands != tt.operands {
				t.Errorf("decoded %q %q, want %q %q", inst.Mnemonic, inst.Operands, tt.mnemonic, tt.operands)
			}
			if inst.Size != tt.size {
				t.Errorf("size = %d, want %d", inst.Size, tt.size)
			}
			if inst.Address != 0x7C00 {
				t.Errorf("address = %08x, want 00007c00", inst.Address)
			}
		})
	}
}

// Branch targets are rendered as absolute addresses resolved against
// the load origin.
func TestDecodeBranchTargets(t *testing.T) {
	tests := []struct {
		name     string
		code     []byte
		mnemonic string
		operands string
	}{
		{"JzForward", []byte{0x74, 0x10}, "jz", "0x7c12"},
		{"JlBackward", []byte{0x7C, 0xF0}, "jl", "0x7bf2"},
		{"CallRel32", []byte{0xE8, 0x05, 0x00, 0x00, 0x00}, "call", "0x7c0a"},
		{"JmpToZero", []byte{0xE9, 0xFB, 0x83, 0xFF, 0xFF}, "jmp", "0x0"},
		{"JmpShort", []byte{0xEB, 0xFE}, "jmp", "short 0x7c00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := decodeOne(tt.code, 0, 0x7C00)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if inst.Mnemonic != tt.mnemonic || inst.Operands != tt.operands {
				t.Errorf("decoded %q %q, want %q %q", inst.Mnemonic, inst.Operands, tt.mnemonic, tt.operands)
			}
		})
	}
}

func TestDisassembleListing(t *testing.T) {
	code := []byte{
		0xB8, 0x05, 0x00, 0x00, 0x00, // mov eax, 0x5
		0x40, // inc eax
		0xC3, // ret
	}
	text, err := Disassemble(code, 0x7C00)
	if err != nil {
		t.Fatalf("disassembly failed: %v", err)
	}
	want := []string{
		"00007c00  mov   eax, 0x5",
		"00007c05  inc   eax",
		"00007c06  ret",
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != len(want) {
		t.Fatalf("listing has %d lines, want %d:\n%s", len(lines), len(want), text)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestDisassembleTruncated(t *testing.T) {
	_, err := Disassemble([]byte{0xB8, 0x05}, 0)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "truncated") {
		t.Errorf("unexpected error: %v", err)
	}
}
