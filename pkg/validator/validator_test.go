package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `validate:"required"`
	Role string `validate:"required,oneof=Admin Staff"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(sample{Name: "Maria", Role: "Admin"})
	assert.Empty(t, errs)

	errs = ValidateStruct(sample{Role: "Gerente"})
	require.Len(t, errs, 2)
	assert.Equal(t, "sample.Name", errs[0].FailedField)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "oneof", errs[1].Tag)
	assert.Equal(t, "Admin Staff", errs[1].Param)
}

func TestErrorResponseString(t *testing.T) {
	e := &ErrorResponse{FailedField: "sample.Role", Tag: "oneof", Param: "Admin Staff"}
	assert.Equal(t, "sample.Role: falhou na regra 'oneof=Admin Staff'", e.String())

	e = &ErrorResponse{FailedField: "sample.Name", Tag: "required"}
	assert.Equal(t, "sample.Name: falhou na regra 'required'", e.String())
}
