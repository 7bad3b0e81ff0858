package router

import "net/http"

type BranchRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type AccountRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type TellerRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type LedgerRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type RecommendationRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

func New(
	branchController BranchRouteRegistrar,
	accountController AccountRouteRegistrar,
	tellerController TellerRouteRegistrar,
	ledgerController LedgerRouteRegistrar,
	recommendationController RecommendationRouteRegistrar,
	authMiddleware func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()

	if branchController != nil {
		branchController.RegisterRoutes(mux, authMiddleware)
	}
	if accountController != nil {
		accountController.RegisterRoutes(mux, authMiddleware)
	}
	if tellerController != nil {
		tellerController.RegisterRoutes(mux, authMiddleware)
	}
	if ledgerController != nil {
		ledgerController.RegisterRoutes(mux, authMiddleware)
	}
	if recommendationController != nil {
		recommendationController.RegisterRoutes(mux, authMiddleware)
	}

	return mux
}
