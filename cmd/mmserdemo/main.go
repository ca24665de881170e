// Command mmserdemo exercises the mmser package the same way
// original_source/src/demo_mmser/main.cpp exercises the original: a large
// Vector[uint64] of ones, saved and loaded at a fixed path.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/mmser-go/mmser"
)

const path = "tmp.idx"
const count = 500_000_000

func main() {
	if len(os.Args) < 2 {
		os.Exit(1)
	}

	switch os.Args[1] {
	case "save":
		cmdSave()
	case "load":
		cmdLoad()
	case "load_and_run":
		cmdLoadAndRun()
	default:
		panic(fmt.Sprintf("unknown command %q", os.Args[1]))
	}
}

func cmdSave() {
	v := mmser.NewVectorFilled[uint64](count, 1)
	if err := mmser.SaveFileStream(path, &v, mmser.Options{}); err != nil {
		slog.Error("save failed", "err", err)
		os.Exit(1)
	}
}

func cmdLoad() {
	_, st, err := mmser.LoadFile[mmser.Vector[uint64]](path, mmser.Options{})
	if err != nil {
		slog.Error("load failed", "err", err)
		os.Exit(1)
	}
	defer st.Close()
}

// cmdLoadAndRun loads the vector, sums it (matching the original's
// reduction), and additionally prints an xxhash-based spot check over the
// loaded bytes — a CLI diagnostic only, not part of the wire format.
func cmdLoadAndRun() {
	v, st, err := mmser.LoadFile[mmser.Vector[uint64]](path, mmser.Options{})
	if err != nil {
		slog.Error("load failed", "err", err)
		os.Exit(1)
	}
	defer st.Close()

	var total uint64
	digest := xxhash.New()
	var buf [8]byte
	for i := 0; i < v.Len(); i++ {
		e := v.At(i)
		total += e
		buf[0] = byte(e)
		buf[1] = byte(e >> 8)
		buf[2] = byte(e >> 16)
		buf[3] = byte(e >> 24)
		buf[4] = byte(e >> 32)
		buf[5] = byte(e >> 40)
		buf[6] = byte(e >> 48)
		buf[7] = byte(e >> 56)
		digest.Write(buf[:])
	}

	fmt.Fprintf(os.Stderr, "sum=%d xxhash=%x\n", total, digest.Sum64())
}
