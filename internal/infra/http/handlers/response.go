package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps workflow outcomes to transport responses: field
// violations → 422 with the per-field message map, unknown id → 404,
// anything else (including the unique-index race backstop) → 500.
func writeError(w http.ResponseWriter, err error) {
	var verrs usecase.ValidationErrors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"errors": verrs.ByField(),
		})
		return
	}

	if errors.Is(err, entity.ErrLeadNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Lead not found"})
		return
	}

	writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
}
