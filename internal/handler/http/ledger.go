package http

import (
	"encoding/json"
	"net/http"

	"github.com/clockwork-hr/attendance-backend-go/internal/domain/ledger"
	"github.com/clockwork-hr/attendance-backend-go/internal/handler/http/response"
)

type LedgerHandler interface {
	RecordOvertime(w http.ResponseWriter, r *http.Request)
}

type ledgerHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &ledgerHandlerImpl{
		ledgerService: ledgerService,
	}
}

// RecordOvertime implements LedgerHandler.
func (h *ledgerHandlerImpl) RecordOvertime(w http.ResponseWriter, r *http.Request) {
	var req ledger.RecordOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerService.RecordOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime recorded", result)
}
