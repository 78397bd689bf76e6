package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	appmiddleware "github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

type LeadHandler struct {
	CreateUC *usecase.CreateLeadUseCase
	GetUC    *usecase.GetLeadUseCase
	ListUC   *usecase.ListLeadsUseCase
	UpdateUC *usecase.UpdateLeadUseCase
	DeleteUC *usecase.DeleteLeadUseCase
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	getUC *usecase.GetLeadUseCase,
	listUC *usecase.ListLeadsUseCase,
	updateUC *usecase.UpdateLeadUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
) *LeadHandler {
	return &LeadHandler{
		CreateUC: createUC,
		GetUC:    getUC,
		ListUC:   listUC,
		UpdateUC: updateUC,
		DeleteUC: deleteUC,
	}
}

// List (GET /leads/list)
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.ListUC.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

// Store (POST /leads/store)
func (h *LeadHandler) Store(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON"})
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	appmiddleware.RecordLeadCreated(lead.Score)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Lead created successfully",
		"lead":    lead,
	})
}

// Show (GET /leads/{id})
func (h *LeadHandler) Show(w http.ResponseWriter, r *http.Request) {
	lead, err := h.GetUC.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// Update (POST /leads/{id})
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON"})
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	appmiddleware.RecordLeadUpdated(lead.Score)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Lead updated successfully",
		"lead":    lead,
	})
}

// Destroy (DELETE /leads/{id})
func (h *LeadHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := h.DeleteUC.Execute(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	appmiddleware.RecordLeadDeleted()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Lead deleted successfully"})
}
