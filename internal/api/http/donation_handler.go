package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rewear-backend/internal/domain"
	"rewear-backend/internal/service"
)

// DonationHandler serves the donor-facing donation request endpoints.
type DonationHandler struct {
	donations service.DonationService
	lifecycle service.LifecycleService
}

func NewDonationHandler(donations service.DonationService, lifecycle service.LifecycleService) *DonationHandler {
	return &DonationHandler{donations: donations, lifecycle: lifecycle}
}

type submitDonationRequest struct {
	OrgID       int32    `json:"org_id"`
	ItemName    string   `json:"item_name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	Size        string   `json:"size"`
	Gender      string   `json:"gender"`
	PhotoRefs   []string `json:"photo_refs"`
}

func (h *DonationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var body submitDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.donations.Submit(r.Context(), claims.UserID, service.SubmitDonationInput{
		OrgID:       body.OrgID,
		ItemName:    body.ItemName,
		Description: body.Description,
		Category:    body.Category,
		Condition:   body.Condition,
		Size:        body.Size,
		Gender:      body.Gender,
		PhotoRefs:   body.PhotoRefs,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *DonationHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing identity")
		return
	}
	requestID, err := pathID(r, "id")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}

	req, err := h.donations.Get(r.Context(), claims.UserID, requestID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *DonationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing identity")
		return
	}
	page, pageSize := pagination(r)

	reqs, total, err := h.donations.ListByDonor(r.Context(), claims.UserID, page, pageSize)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: reqs, Total: total, Page: page, PageSize: pageSize})
}

func (h *DonationHandler) ListByOrg(w http.ResponseWriter, r *http.Request) {
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
	status := r.URL.Query().Get("status")

	reqs, total, err := h.donations.ListByOrg(r.Context(), claims.UserID, orgID, status, page, pageSize)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: reqs, Total: total, Page: page, PageSize: pageSize})
}

type decisionRequest struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

type decisionResponse struct {
	Request   *domain.DonationRequest `json:"request"`
	Inventory *domain.InventoryItem   `json:"inventory,omitempty"`
}

func (h *DonationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing identity")
		return
	}
	requestID, err := pathID(r, "requestID")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var body decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, item, err := h.lifecycle.Decide(r.Context(), requestID, claims.UserID,
		domain.DonationRequestStatus(body.Decision), body.Reason)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, decisionResponse{Request: req, Inventory: item})
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (h *DonationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing identity")
		return
	}
	requestID, err := pathID(r, "id")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var body cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.lifecycle.Cancel(r.Context(), requestID, claims.UserID, body.Reason)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

type listResponse struct {
	Items    interface{} `json:"items"`
	Total    int32       `json:"total"`
	Page     int32       `json:"page"`
	PageSize int32       `json:"page_size"`
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		return 0, strconv.ErrSyntax
	}
	return int32(id), nil
}

func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
