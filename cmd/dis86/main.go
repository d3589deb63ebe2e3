package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tolset/ia32/disasm"
	"github.com/tolset/ia32/vm"
)

// dis86 prints a listing of a flat binary image.
func main() {
	org := flag.Uint("org", vm.DefaultOrg, "address the image is loaded at")
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <inputfile> [outputfile]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	code, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	text, err := disasm.Disassemble(code, uint32(*org))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Disassembly error: %v\n", err)
		os.Exit(1)
	}

	if flag.NArg() == 1 {
		fmt.Print(text)
		return
	}

	if err := os.WriteFile(flag.Arg(1), []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Disassembly written to %s\n", flag.Arg(1))
}
