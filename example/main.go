package main

import (
	"fmt"
	"os"

	"procmem"
	"procmem/layout"
	"procmem/memory"
	"procmem/pidof"
	"procmem/process"
)

// PlayerLayout describes a fixed-layout struct inside the target: two
// u32 fields, 8 bytes of padding, then a u64. Offsets are the target's,
// not Go's.
var PlayerLayout = layout.Layout{
	layout.Uint32Field("health", 0),
	layout.Uint32Field("mana", 4),
	layout.Uint64Field("experience", 12),
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <process-name> <hex-base-address>\n", os.Args[0])
		os.Exit(1)
	}

	pid, err := pidof.FindByName(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	base, err := process.ParseAddress(os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	raw := procmem.NewRawAccess()

	reader := memory.NewReader(raw)
	if !reader.Attach(pid) {
		fmt.Fprintf(os.Stderr, "could not attach reader to %s\n", pid)
		os.Exit(1)
	}
	defer reader.Detach()

	// Typed scalar read at a known address.
	health, err := reader.ReadUint32(base)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read health:", err)
		os.Exit(1)
	}
	fmt.Printf("health at %s = %d\n", base, health)

	// Whole aggregate in one read.
	rec, err := reader.ReadAggregate(base, PlayerLayout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read player:", err)
		os.Exit(1)
	}
	fmt.Printf("player = %v\n", rec)

	// Follow a pointer chain into a dynamically allocated struct and dump
	// what is there: deref at +0 and +24, then read 0x20 bytes at +0x10.
	blob, err := reader.ReadPointerChainDebug(base, 0x20, 0, 24, 0x10)
	if err != nil {
		fmt.Fprintln(os.Stderr, "chain:", err)
	} else if name, err := blob.NTSAt(0, 16); err == nil {
		fmt.Printf("name = %q\n", name)
	}

	// A Writer holds its own write-capable handle, independent of the
	// reader's.
	writer := memory.NewWriter(raw)
	if !writer.Attach(pid) {
		fmt.Fprintf(os.Stderr, "could not attach writer to %s\n", pid)
		os.Exit(1)
	}
	defer writer.Detach()

	if writer.WriteUint32(base, health+1) {
		fmt.Println("health bumped")
	}
}
