package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tolset/ia32/cpu"
	"github.com/tolset/ia32/vm"
)

// loopbackPorts stands in for the serial console so specs do not touch
// the process's standard streams.
type loopbackPorts struct {
	input byte
	out   []byte
}

func (p *loopbackPorts) In8(port uint16) byte { return p.input }

func (p *loopbackPorts) Out8(port uint16, value byte) {
	p.out = append(p.out, value)
}

var _ = Describe("Run", func() {
	var (
		machine *vm.VM
		ports   *loopbackPorts
	)

	BeforeEach(func() {
		machine = vm.New(0x10000, vm.DefaultOrg)
		ports = &loopbackPorts{}
		machine.CPU.Ports = ports
	})

	It("runs a program to the jump-to-zero terminator", func() {
		err := machine.LoadImage([]byte{
			0xB8, 0x05, 0x00, 0x00, 0x00, // mov eax, 5
			0x40,                         // inc eax
			0xE9, 0xF5, 0x83, 0xFF, 0xFF, // jmp 0
		})
		Expect(err).ToNot(HaveOccurred())

		Expect(machine.Run()).To(Succeed())
		Expect(machine.CPU.EIP).To(BeZero())
		Expect(machine.CPU.Regs[cpu.EAX]).To(Equal(uint32(6)))
	})

	It("restores the stack across a call, leave and ret", func() {
		err := machine.LoadImage([]byte{
			0xE8, 0x05, 0x00, 0x00, 0x00, // 7C00: call 0x7C0A
			0xE9, 0xF6, 0x83, 0xFF, 0xFF, // 7C05: jmp 0
			0x55,       // 7C0A: push ebp
			0x89, 0xE5, // 7C0B: mov ebp, esp
			0x83, 0xEC, 0x04, // 7C0D: sub esp, 4
			0xC9, // 7C10: leave
			0xC3, // 7C11: ret
		})
		Expect(err).ToNot(HaveOccurred())

		Expect(machine.Run()).To(Succeed())
		Expect(machine.CPU.Regs[cpu.ESP]).To(Equal(uint32(vm.DefaultOrg)))
		Expect(machine.CPU.Regs[cpu.EBP]).To(BeZero())
	})

	It("moves bytes between the accumulator and the data port", func() {
		ports.input = 'Z'
		err := machine.LoadImage([]byte{
			0xBA, 0xF8, 0x03, 0x00, 0x00, // mov edx, 0x3F8
			0xEC,                         // in al, dx
			0xEE,                         // out dx, al
			0xE9, 0xF4, 0x83, 0xFF, 0xFF, // jmp 0
		})
		Expect(err).ToNot(HaveOccurred())

		Expect(machine.Run()).To(Succeed())
		Expect(ports.out).To(Equal([]byte{'Z'}))
	})

	It("aborts a runaway image at the step limit", func() {
		machine.StepLimit = 10
		err := machine.LoadImage([]byte{0xEB, 0xFE}) // jmp $
		Expect(err).ToNot(HaveOccurred())

		err = machine.Run()
		Expect(err).To(MatchError(ContainSubstring("step limit")))
	})

	It("propagates decode failures with the faulting address", func() {
		err := machine.LoadImage([]byte{0x0F})
		Expect(err).ToNot(HaveOccurred())

		err = machine.Run()
		Expect(err).To(MatchError(ContainSubstring("unsupported opcode 0F")))
		Expect(err).To(MatchError(ContainSubstring("00007C00")))
	})

	It("rejects an image larger than memory", func() {
		small := vm.New(0x8000, vm.DefaultOrg)
		err := small.LoadImage(make([]byte, 0x1000))
		Expect(err).To(HaveOccurred())
	})

	It("dumps the architectural state as one register per line", func() {
		machine.CPU.Regs[cpu.EAX] = 0x29
		dump := machine.CPU.Dump()
		Expect(dump).To(ContainSubstring("EIP = 00007c00\n"))
		Expect(dump).To(ContainSubstring("EAX = 00000029\n"))
		Expect(dump).To(ContainSubstring("EFLAGS = 00000000\n"))
	})
})
