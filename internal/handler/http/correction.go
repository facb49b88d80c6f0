package http

import (
	"encoding/json"
	"net/http"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/correction"
	"github.com/clockwork-hr/attendance-backend-go/internal/handler/http/response"
)

type CorrectionHandler interface {
	BulkClear(w http.ResponseWriter, r *http.Request)
}

type correctionHandlerImpl struct {
	correctionService correction.CorrectionService
}

func NewCorrectionHandler(correctionService correction.CorrectionService) CorrectionHandler {
	return &correctionHandlerImpl{
		correctionService: correctionService,
	}
}

// BulkClear implements CorrectionHandler.
func (h *correctionHandlerImpl) BulkClear(w http.ResponseWriter, r *http.Request) {
	var req correction.BulkClearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.correctionService.BulkClear(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
