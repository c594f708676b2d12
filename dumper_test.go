package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_sessionDumper(t *testing.T) {
	var sess Session
	var sb strings.Builder

	sessionDumper{&sess, &sb}.dump()
	assert.Equal(t, "# Session Dump\n  prev: 0\n  slots: none\n", sb.String())

	sess.Prev = 2.5
	sess.Memory.Update("total", 10)
	sess.Memory.Update("x", -1)
	sb.Reset()
	sessionDumper{&sess, &sb}.dump()
	assert.Equal(t, strings.Join([]string{
		"# Session Dump",
		"  prev: 2.5",
		"  slots:",
		`    "total" = 10`,
		`        "x" = -1`,
		"",
	}, "\n"), sb.String())
}
