package main

import (
	"fmt"
	"io"
	"strconv"
)

type sessionDumper struct {
	sess *Session
	out  io.Writer
}

func (dump sessionDumper) dump() {
	fmt.Fprintf(dump.out, "# Session Dump\n")
	fmt.Fprintf(dump.out, "  prev: %v\n", dump.sess.Prev)
	dump.dumpSlots()
}

func (dump sessionDumper) dumpSlots() {
	names := dump.sess.Memory.Names()
	if len(names) == 0 {
		fmt.Fprintf(dump.out, "  slots: none\n")
		return
	}

	fmt.Fprintf(dump.out, "  slots:\n")
	nameWidth := 0
	for _, name := range names {
		if n := len(strconv.Quote(name)); n > nameWidth {
			nameWidth = n
		}
	}
	for _, name := range names {
		value, _ := dump.sess.Memory.Get(name)
		fmt.Fprintf(dump.out, "    %*s = %v\n", nameWidth, strconv.Quote(name), value)
	}
}
