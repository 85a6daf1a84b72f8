package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	bar := NewProgressBar(10, &buf)
	bar.Update(4, 1)
	bar.Finish()

	out := buf.String()
	assert.Contains(t, out, "Course progress: ")
	assert.Contains(t, out, "passed: 4")
	assert.Contains(t, out, "failed: 1")
}

func TestDescribe(t *testing.T) {
	disableColor(t)

	assert.Equal(t, "Course progress: [passed: 0 | failed: 0]", describe(0, 0))
	assert.Equal(t, "Course progress: [passed: 12 | failed: 1]", describe(12, 1))
}
