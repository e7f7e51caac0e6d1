package http

import (
	"errors"
	"net/http"

	"github.com/Flarenzy/subnetcalc/internal/domain"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	// No backing stores to ping; ready as soon as we serve.
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary Calculate subnet properties
// @Description Derives mask, network, broadcast, usable host range, host count, class, scope and binary rendering from an address and CIDR prefix.
// @Tags subnets
// @Accept json
// @Produce json
// @Param payload body CalculateSubnetRequest true "Address and prefix to calculate."
// @Success 200 {object} SubnetReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets/calculate [post]
func (a *API) handleCalculateSubnet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[CalculateSubnetRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling calculate request", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	report, err := a.Service.Calculate(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		a.Logger.ErrorContext(ctx, "uncaught error while calculating subnet", "err", err.Error())
		a.respond(w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	a.respond(w, r, http.StatusOK, reportToResponse(report))
}

// @Summary Check address membership in a CIDR block
// @Description Reports whether an address lies inside a CIDR block and whether it is the network or broadcast address. /31 blocks treat both addresses as assignable.
// @Tags subnets
// @Accept json
// @Produce json
// @Param payload body MembershipRequest true "Address and CIDR block to check."
// @Success 200 {object} MembershipResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets/membership [post]
func (a *API) handleCheckMembership(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[MembershipRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling membership request", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	membership, err := a.Service.CheckMembership(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		a.Logger.ErrorContext(ctx, "uncaught error while checking membership", "err", err.Error())
		a.respond(w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	a.respond(w, r, http.StatusOK, membershipToResponse(membership))
}
