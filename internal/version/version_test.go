package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	s := String()

	assert.True(t, strings.HasPrefix(s, "Lumera "+Version))
	assert.Contains(t, s, runtime.Version())
	assert.Contains(t, s, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestShort(t *testing.T) {
	assert.Equal(t, Version, Short())
}
