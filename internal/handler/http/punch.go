package http

import (
	"encoding/json"
	"net/http"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/punch"
	"github.com/clockwork-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PunchHandler interface {
	Ingest(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ResolveUnmatched(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
	}
}

// Ingest implements PunchHandler.
func (h *punchHandlerImpl) Ingest(w http.ResponseWriter, r *http.Request) {
	var req punch.IngestPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punchService.Ingest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch ingested", result)
}

// Delete implements PunchHandler.
func (h *punchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.punchService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch deleted", nil)
}

// ResolveUnmatched implements PunchHandler.
func (h *punchHandlerImpl) ResolveUnmatched(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.punchService.ResolveUnmatched(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"resolved": resolved})
}
