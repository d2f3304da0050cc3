package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse um campo recusado pela validação estrutural.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Param       string
}

// String formata o erro para exibição ao chamador.
func (e *ErrorResponse) String() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: falhou na regra '%s=%s'", e.FailedField, e.Tag, e.Param)
	}
	return fmt.Sprintf("%s: falhou na regra '%s'", e.FailedField, e.Tag)
}

var validate = validator.New()

// ValidateStruct valida as tags `validate` de um DTO e devolve os campos
// recusados. Vazio = válido.
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, &ErrorResponse{
				FailedField: fe.StructNamespace(),
				Tag:         fe.Tag(),
				Param:       fe.Param(),
			})
		}
	}
	return errs
}
