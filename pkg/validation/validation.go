package validation

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// instance devolve o validador compartilhado (as regras ficam nas tags `validate` dos DTOs).
func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Struct valida um DTO pelas tags e devolve um mapa campo->mensagem, vazio se tudo ok.
func Struct(s any) map[string]string {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[strings.ToLower(fe.Field())] = message(fe)
	}
	return out
}

// message traduz a falha de tag em mensagem curta para o cliente.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "e-mail inválido"
	case "min":
		return "tamanho mínimo: " + fe.Param()
	case "max":
		return "tamanho máximo: " + fe.Param()
	case "gt":
		return "deve ser maior que " + fe.Param()
	case "gte":
		return "deve ser maior ou igual a " + fe.Param()
	case "uuid":
		return "deve ser um UUID válido"
	case "oneof":
		return "deve ser um de: " + fe.Param()
	default:
		return "valor inválido (" + fe.Tag() + ")"
	}
}
