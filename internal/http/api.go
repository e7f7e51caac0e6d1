package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Flarenzy/subnetcalc/internal/auth"
	"github.com/Flarenzy/subnetcalc/internal/domain"
)

type API struct {
	Logger        *slog.Logger
	Service       domain.CalculatorService
	Authenticator auth.Authenticator
}

func NewAPI(logger *slog.Logger, service domain.CalculatorService, authenticator auth.Authenticator) *API {
	return &API{
		Logger:        logger,
		Service:       service,
		Authenticator: authenticator,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/readyz", a.handleReadyz)
	mux.HandleFunc("POST /api/v1/subnets/calculate", a.handleCalculateSubnet)
	mux.HandleFunc("POST /api/v1/subnets/membership", a.handleCheckMembership)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return a.requestIDMiddleware(a.authMiddleware(mux))
}
