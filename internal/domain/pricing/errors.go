package pricing

import "errors"

// Rejeições de validação. Nenhuma delas altera o estado da seleção.
var (
	ErrCapacityExceeded       = errors.New("capacidade excedida")
	ErrCapacityMismatch       = errors.New("quantidade selecionada diferente da capacidade")
	ErrSelectionLimitExceeded = errors.New("limite de seleção do grupo atingido")
	ErrRulesNotSatisfied      = errors.New("regras de montagem não atendidas")

	ErrUnsupportedComposition = errors.New("modo de composição não suportado nesta operação")
	ErrNoAllowedProducts      = errors.New("combo sem produtos permitidos")
	ErrProductNotAllowed      = errors.New("produto não permitido neste combo")
	ErrUnknownOption          = errors.New("opção ou grupo inexistente")
	ErrInvalidQuantity        = errors.New("quantidade inválida")
)

// Kind devolve um identificador estável para a rejeição, usado em respostas e métricas
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, ErrCapacityMismatch):
		return "capacity_mismatch"
	case errors.Is(err, ErrSelectionLimitExceeded):
		return "selection_limit_exceeded"
	case errors.Is(err, ErrRulesNotSatisfied):
		return "rules_not_satisfied"
	case errors.Is(err, ErrUnsupportedComposition):
		return "unsupported_composition"
	case errors.Is(err, ErrNoAllowedProducts):
		return "no_allowed_products"
	case errors.Is(err, ErrProductNotAllowed):
		return "product_not_allowed"
	case errors.Is(err, ErrUnknownOption):
		return "unknown_option"
	case errors.Is(err, ErrInvalidQuantity):
		return "invalid_quantity"
	}
	return ""
}

// IsRejection indica se o erro é uma rejeição de validação do motor
func IsRejection(err error) bool {
	return Kind(err) != ""
}
