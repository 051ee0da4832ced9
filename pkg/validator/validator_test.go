package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Level string `validate:"oneof=debug info"`
	Count int    `validate:"min=1"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(sample{Name: "x", Level: "info", Count: 1}))

	err := ValidateStruct(sample{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample.Name: required")
	assert.Contains(t, err.Error(), "sample.Level: oneof=debug info")
	assert.Contains(t, err.Error(), "sample.Count: min=1")
}

func TestValidateStructNotAStruct(t *testing.T) {
	assert.Error(t, ValidateStruct(42))
}
