//go:build !ebiten

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGUIRequiresBuildTag(t *testing.T) {
	_, err := execute(t, "gui")
	assert.ErrorIs(t, err, errNoGUI)
}
