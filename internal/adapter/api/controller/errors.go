package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/api/dto"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/cep"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/repository"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/budget"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/catalog"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/client"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/user"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/infrastructure/metrics"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
)

var notFoundErrors = []error{
	repository.ErrProductNotFound,
	repository.ErrCategoryNotFound,
	repository.ErrGroupNotFound,
	repository.ErrOptionNotFound,
	repository.ErrClientNotFound,
	repository.ErrAddressNotFound,
	repository.ErrBudgetNotFound,
	repository.ErrOrderNotFound,
	repository.ErrUserNotFound,
	budget.ErrDraftNotFound,
	budget.ErrItemNotFound,
	cep.ErrCEPNotFound,
}

var conflictErrors = []error{
	repository.ErrUserDuplicateEmail,
	repository.ErrOrderAlreadyExists,
	repository.ErrClientInUse,
	budget.ErrBudgetClosed,
	budget.ErrBudgetNotApproved,
}

var validationErrors = []error{
	catalog.ErrEmptyName,
	catalog.ErrNegativePrice,
	catalog.ErrInvalidSaleUnit,
	catalog.ErrInvalidComposition,
	catalog.ErrComboCapacityRequired,
	catalog.ErrCapacityOnlyForCombo,
	catalog.ErrInvalidSelectionLimit,
	catalog.ErrNegativeExtraCost,
	catalog.ErrInvalidMeasurementUnit,
	catalog.ErrComboNeedsSimpleProducts,
	catalog.ErrProductUnavailable,
	client.ErrEmptyName,
	client.ErrEmptyContact,
	client.ErrEmptyStreet,
	client.ErrEmptyCity,
	client.ErrInvalidState,
	client.ErrInvalidZipCode,
	budget.ErrEmptyClient,
	budget.ErrEmptyAddress,
	budget.ErrNoItems,
	budget.ErrInvalidStatus,
	budget.ErrNegativeFee,
	budget.ErrNegativeDiscount,
	budget.ErrItemIndexInvalid,
	budget.ErrDraftClientNotSet,
	user.ErrEmptyName,
	user.ErrInvalidEmail,
	user.ErrWeakPassword,
	user.ErrInvalidRole,
	cep.ErrInvalidCEP,
}

func matchAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// respondError traduz erros de domínio e de repositório para a resposta HTTP.
// Rejeições do motor de preços viram 422 com o tipo da rejeição em details.
func respondError(ctx *gin.Context, log logger.Logger, m *metrics.Metrics, message string, err error) {
	switch {
	case pricing.IsRejection(err):
		kind := pricing.Kind(err)
		m.Rejection(kind)
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error(), kind))
	case matchAny(err, notFoundErrors):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, message, err.Error()))
	case matchAny(err, conflictErrors):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, message, err.Error()))
	case matchAny(err, validationErrors):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, err.Error()))
	default:
		log.Error(message, "error", err, "path", ctx.FullPath())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, message, err.Error()))
	}
}

func badRequest(ctx *gin.Context, message string, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, details))
}
