package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskMobile(t *testing.T) {
	assert.Equal(t, "******3210", MaskMobile("9876543210"))
	assert.Equal(t, "******3210", MaskMobile(" 9876543210 "))
	assert.Equal(t, "***", MaskMobile("123"))
	assert.Equal(t, "***", MaskMobile(""))
}
