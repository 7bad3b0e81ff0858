package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/commons"
)

type BranchService interface {
	CreateBranch(ctx context.Context, req models.CreateBranchRequest) (commons.Response[models.CreateBranchResponse], error)
	TransferReserve(ctx context.Context, req models.ReserveTransferRequest) (commons.Response[models.ReserveTransferResponse], error)
}

type BranchController struct {
	service BranchService
}

func NewBranchController(service BranchService) *BranchController {
	return &BranchController{service: service}
}

func (c *BranchController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	create := http.Handler(http.HandlerFunc(c.createBranch))
	transfer := http.Handler(http.HandlerFunc(c.transferReserve))
	if authMiddleware != nil {
		create = authMiddleware(create)
		transfer = authMiddleware(transfer)
	}
	mux.Handle("/branches", create)
	mux.Handle("/branches/transfer-reserve", transfer)
}

func (c *BranchController) createBranch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.CreateBranchResponse]("method not allowed"))
		return
	}

	var req models.CreateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CreateBranchResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateBranch(r.Context(), req)
	if err != nil {
		writeJSON(w, statusFromMessage(response.Message), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *BranchController) transferReserve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.ReserveTransferResponse]("method not allowed"))
		return
	}

	var req models.ReserveTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.ReserveTransferResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.TransferReserve(r.Context(), req)
	if err != nil {
		writeJSON(w, statusFromMessage(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
