package service_interfaces

import (
	"context"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/commons"
)

type TellerService interface {
	RegisterTeller(ctx context.Context, req models.RegisterTellerRequest) (commons.Response[models.RegisterTellerResponse], error)
	VerifyAccessPIN(ctx context.Context, req models.VerifyTellerPINRequest) (commons.Response[models.VerifyTellerPINResponse], error)
}
