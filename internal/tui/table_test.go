package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	var b strings.Builder
	RenderTable(&b, []string{"ID", "NAME"}, [][]string{
		{"e1", "Ada Lovelace"},
		{"e2", "Bo"},
	})

	out := b.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "e2")

	// Columns align: every data line starts the name at the same offset.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
}

func TestRenderTable_Empty(t *testing.T) {
	var b strings.Builder
	RenderTable(&b, []string{"ID"}, nil)
	assert.Contains(t, b.String(), "(no results)")
}
