package http

import (
	"encoding/json"
	"net/http"

	"rewear-backend/internal/service"
)

// InventoryHandler serves the staff-facing inventory and distribution
// endpoints.
type InventoryHandler struct {
	lifecycle service.LifecycleService
}

func NewInventoryHandler(lifecycle service.LifecycleService) *InventoryHandler {
	return &InventoryHandler{lifecycle: lifecycle}
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing identity")
		return
	}
	orgID, err := pathID(r, "orgID")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid org id")
		return
	}
	page, pageSize := pagination(r)
	activeOnly := r.URL.Query().Get("active") == "true"

	items, total, err := h.lifecycle.ListInventory(r.Context(), claims.UserID, orgID, activeOnly, page, pageSize)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, Total: total, Page: page, PageSize: pageSize})
}

type distributeRequest struct {
	BeneficiaryGroup string `json:"beneficiary_group"`
}

func (h *InventoryHandler) Distribute(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing identity")
		return
	}
	orgID, err := pathID(r, "orgID")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid org id")
		return
	}
	inventoryID, err := pathID(r, "inventoryID")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid inventory id")
		return
	}

	var body distributeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.lifecycle.Distribute(r.Context(), orgID, inventoryID, claims.UserID, body.BeneficiaryGroup)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *InventoryHandler) ListDistributions(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing identity")
		return
	}
	orgID, err := pathID(r, "orgID")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid org id")
		return
	}
	page, pageSize := pagination(r)

	recs, total, err := h.lifecycle.ListDistributions(r.Context(), claims.UserID, orgID, page, pageSize)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: recs, Total: total, Page: page, PageSize: pageSize})
}
