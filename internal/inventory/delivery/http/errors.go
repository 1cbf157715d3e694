package http

import (
	"errors"
	"net/http"

	"inventory-tracker/internal/inventory"
	pkgErrors "inventory-tracker/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, inventory.ErrDuplicateID):
		return pkgErrors.NewHTTPError(http.StatusConflict, "an item with this id already exists")
	case errors.Is(err, inventory.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	case errors.Is(err, inventory.ErrInactiveItem):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "cannot adjust stock of an inactive item")
	case errors.Is(err, inventory.ErrNegativeStock):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "stock-out exceeds current stock")
	case errors.Is(err, inventory.ErrValidation):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, inventory.ErrEmptyExport):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "no items to export with the current filters")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
