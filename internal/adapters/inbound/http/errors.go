package http

import (
	"errors"
	"net/http"

	"github.com/ftorres/marketplace-insights/internal/domain/catalog"
	"github.com/ftorres/marketplace-insights/internal/domain/insights"
)

// writeError maps domain errors onto HTTP status codes
func writeError(w http.ResponseWriter, err error) {
	var reqErr *insights.RequestError
	switch {
	case errors.As(err, &reqErr):
		http.Error(w, reqErr.Reason, http.StatusBadRequest)
	case errors.Is(err, catalog.ErrProductNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
	case errors.Is(err, catalog.ErrInvalidName),
		errors.Is(err, catalog.ErrInvalidMarketplace),
		errors.Is(err, catalog.ErrNegativePrice):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
