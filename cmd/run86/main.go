package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tebeka/atexit"

	"github.com/tolset/ia32/vm"
)

// run86 loads a flat binary image and executes it until the program
// transfers control to address zero, then dumps the machine state.
func main() {
	memsize := flag.Int("mem", vm.DefaultMemSize, "memory size in bytes")
	org := flag.Uint("org", vm.DefaultOrg, "load address, entry point and initial stack pointer")
	limit := flag.Int("limit", 0, "abort after this many instructions (0 = unlimited)")
	trace := flag.Bool("trace", false, "log every fetch and decode")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <binary>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *trace {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	image, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		slog.Error("reading image", "error", err)
		os.Exit(1)
	}

	v := vm.New(*memsize, uint32(*org))
	v.StepLimit = *limit
	if err := v.LoadImage(image); err != nil {
		slog.Error("loading image", "error", err)
		os.Exit(1)
	}

	// The dump is registered as an exit handler so a fatal instruction
	// still shows the state the machine died in.
	atexit.Register(func() {
		fmt.Print(v.CPU.Dump())
	})

	if err := v.Run(); err != nil {
		slog.Error("execution stopped", "error", err)
		atexit.Exit(1)
	}

	fmt.Println("Program terminated successfully.")
	atexit.Exit(0)
}
