package handler

import (
	"net/http"

	"coachassess/internal/model"
	"coachassess/internal/repository"
)

// CatalogHandler serves the static domain/question reference data
type CatalogHandler struct {
	catalogRepo repository.CatalogRepo
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogRepo repository.CatalogRepo) *CatalogHandler {
	return &CatalogHandler{catalogRepo: catalogRepo}
}

// Get handles GET /v1/catalog
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	domains, err := h.catalogRepo.ListDomains(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "catalog temporarily unavailable, please retry")
		return
	}

	questions, err := h.catalogRepo.ListQuestions(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "catalog temporarily unavailable, please retry")
		return
	}
	if len(questions) == 0 {
		// Data absence, not a transient failure: retrying won't help
		writeError(w, http.StatusNotFound, "no questions found")
		return
	}

	writeJSON(w, http.StatusOK, model.Catalog{
		Domains:   domains,
		Questions: questions,
	})
}
