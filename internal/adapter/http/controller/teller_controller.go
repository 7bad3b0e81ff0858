package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/commons"
)

type TellerService interface {
	RegisterTeller(ctx context.Context, req models.RegisterTellerRequest) (commons.Response[models.RegisterTellerResponse], error)
	VerifyAccessPIN(ctx context.Context, req models.VerifyTellerPINRequest) (commons.Response[models.VerifyTellerPINResponse], error)
}

type TellerController struct {
	service TellerService
}

func NewTellerController(service TellerService) *TellerController {
	return &TellerController{service: service}
}

func (c *TellerController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	register := http.Handler(http.HandlerFunc(c.registerTeller))
	verify := http.Handler(http.HandlerFunc(c.verifyPIN))
	if authMiddleware != nil {
		register = authMiddleware(register)
		verify = authMiddleware(verify)
	}
	mux.Handle("/tellers", register)
	mux.Handle("/tellers/verify-pin", verify)
}

func (c *TellerController) registerTeller(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.RegisterTellerResponse]("method not allowed"))
		return
	}

	var req models.RegisterTellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.RegisterTellerResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.RegisterTeller(r.Context(), req)
	if err != nil {
		writeJSON(w, statusFromMessage(response.Message), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *TellerController) verifyPIN(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.VerifyTellerPINResponse]("method not allowed"))
		return
	}

	var req models.VerifyTellerPINRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.VerifyTellerPINResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.VerifyAccessPIN(r.Context(), req)
	if err != nil {
		writeJSON(w, statusFromMessage(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
