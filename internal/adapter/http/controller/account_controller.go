package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/commons"
)

// AccountOperations is the branch-coordinated side of account handling:
// opening accounts and moving money always goes through a branch.
type AccountOperations interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error)
	Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.AccountMovementResponse], error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.AccountMovementResponse], error)
}

type AccountLookup interface {
	GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.GetAccountResponse], error)
}

type AccountController struct {
	operations AccountOperations
	lookup     AccountLookup
}

func NewAccountController(operations AccountOperations, lookup AccountLookup) *AccountController {
	return &AccountController{operations: operations, lookup: lookup}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	accounts := http.Handler(http.HandlerFunc(c.accounts))
	deposit := http.Handler(http.HandlerFunc(c.deposit))
	withdraw := http.Handler(http.HandlerFunc(c.withdraw))
	if authMiddleware != nil {
		accounts = authMiddleware(accounts)
		deposit = authMiddleware(deposit)
		withdraw = authMiddleware(withdraw)
	}
	mux.Handle("/accounts", accounts)
	mux.Handle("/accounts/deposit", deposit)
	mux.Handle("/accounts/withdraw", withdraw)
}

func (c *AccountController) accounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.openAccount(w, r)
	case http.MethodGet:
		c.getAccount(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.OpenAccountResponse]("method not allowed"))
	}
}

func (c *AccountController) openAccount(w http.ResponseWriter, r *http.Request) {
	var req models.OpenAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.OpenAccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.operations.OpenAccount(r.Context(), req)
	if err != nil {
		writeJSON(w, statusFromMessage(response.Message), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	logRequest(r, nil)

	response, err := c.lookup.GetAccount(r.Context(), r.URL.Query().Get("accountNumber"))
	if err != nil {
		writeJSON(w, statusFromMessage(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) deposit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.AccountMovementResponse]("method not allowed"))
		return
	}

	var req models.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountMovementResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.operations.Deposit(r.Context(), req)
	if err != nil {
		writeJSON(w, statusFromMessage(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) withdraw(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.AccountMovementResponse]("method not allowed"))
		return
	}

	var req models.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountMovementResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.operations.Withdraw(r.Context(), req)
	if err != nil {
		writeJSON(w, statusFromMessage(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
