package controller

import (
	"context"
	"net/http"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/commons"
)

type LedgerReader interface {
	ReadLog(ctx context.Context) (commons.Response[models.TransactionLogResponse], error)
}

type LedgerController struct {
	service LedgerReader
}

func NewLedgerController(service LedgerReader) *LedgerController {
	return &LedgerController{service: service}
}

func (c *LedgerController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handler := http.Handler(http.HandlerFunc(c.readLog))
	if authMiddleware != nil {
		handler = authMiddleware(handler)
	}
	mux.Handle("/transactions", handler)
}

func (c *LedgerController) readLog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.TransactionLogResponse]("method not allowed"))
		return
	}
	logRequest(r, nil)

	response, err := c.service.ReadLog(r.Context())
	if err != nil {
		writeJSON(w, statusFromMessage(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
