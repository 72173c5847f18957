package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidIcon(t *testing.T) {
	assert.True(t, ValidIcon("speedboat"))
	assert.True(t, ValidIcon("life-buoy"))
	assert.True(t, ValidIcon(""), "empty icon stays valid")
	assert.False(t, ValidIcon("rocket"))
	assert.False(t, ValidIcon("Speedboat"), "tags are case sensitive")
}

func TestValidGradient(t *testing.T) {
	assert.True(t, ValidGradient("ocean"))
	assert.True(t, ValidGradient(""))
	assert.False(t, ValidGradient("neon"))
}

func TestValidTransferType(t *testing.T) {
	for _, v := range []string{"speedboat", "ferry", "seaplane", "domestic_flight"} {
		assert.True(t, ValidTransferType(v), v)
	}
	assert.False(t, ValidTransferType(""), "transfer type is required")
	assert.False(t, ValidTransferType("submarine"))
}
