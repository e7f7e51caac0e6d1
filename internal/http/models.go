package http

import (
	"github.com/Flarenzy/subnetcalc/internal/domain"
)

// CalculateSubnetRequest is the payload accepted by the calculate endpoint.
type CalculateSubnetRequest struct {
	Address string `json:"address" example:"192.168.1.1" validate:"required"`
	Prefix  int    `json:"prefix" example:"24" validate:"required"`
}

// MembershipRequest is the payload accepted by the membership endpoint.
type MembershipRequest struct {
	Address string `json:"address" example:"10.0.0.10" validate:"required"`
	CIDR    string `json:"cidr" example:"10.0.0.0/24" validate:"required"`
}

// SubnetReportResponse is the flat view of a subnet calculation returned to
// clients and used in Swagger. First and last usable are omitted when the
// prefix leaves no host range (/31 and /32).
type SubnetReportResponse struct {
	Address        string   `json:"address" example:"192.168.1.1"`
	Prefix         int      `json:"prefix" example:"24"`
	CIDR           string   `json:"cidr" example:"192.168.1.1/24"`
	Mask           string   `json:"mask" example:"255.255.255.0"`
	Network        string   `json:"network" example:"192.168.1.0"`
	Broadcast      string   `json:"broadcast" example:"192.168.1.255"`
	FirstUsable    string   `json:"first_usable,omitempty" example:"192.168.1.1"`
	LastUsable     string   `json:"last_usable,omitempty" example:"192.168.1.254"`
	AvailableHosts int64    `json:"available_hosts" example:"254"`
	Class          string   `json:"class" example:"C"`
	Scope          string   `json:"scope" example:"private"`
	AddressBinary  []string `json:"address_binary"`
	MaskBinary     []string `json:"mask_binary"`
}

// MembershipResponse reports how an address relates to a CIDR block.
type MembershipResponse struct {
	Address     string `json:"address" example:"10.0.0.10"`
	CIDR        string `json:"cidr" example:"10.0.0.0/24"`
	Contains    bool   `json:"contains" example:"true"`
	IsNetwork   bool   `json:"is_network" example:"false"`
	IsBroadcast bool   `json:"is_broadcast" example:"false"`
	Assignable  bool   `json:"assignable" example:"true"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid input: prefix out of range: 33"`
}

func reportToResponse(report domain.SubnetReport) SubnetReportResponse {
	resp := SubnetReportResponse{
		Address:        report.Subnet.Address.String(),
		Prefix:         int(report.Subnet.Prefix),
		CIDR:           report.Subnet.String(),
		Mask:           report.Mask.String(),
		Network:        report.Network.String(),
		Broadcast:      report.Broadcast.String(),
		AvailableHosts: report.AvailableHosts,
		Class:          string(report.Class),
		Scope:          string(report.Scope),
		AddressBinary:  report.AddressBinary[:],
		MaskBinary:     report.MaskBinary[:],
	}
	if report.FirstUsable != nil {
		resp.FirstUsable = report.FirstUsable.String()
	}
	if report.LastUsable != nil {
		resp.LastUsable = report.LastUsable.String()
	}
	return resp
}

func membershipToResponse(m domain.Membership) MembershipResponse {
	return MembershipResponse{
		Address:     m.Address.String(),
		CIDR:        m.CIDR.String(),
		Contains:    m.Contains,
		IsNetwork:   m.IsNetwork,
		IsBroadcast: m.IsBroadcast,
		Assignable:  m.Assignable,
	}
}

func (r CalculateSubnetRequest) toInput() domain.CalculateInput {
	return domain.CalculateInput{
		Address: r.Address,
		Prefix:  r.Prefix,
	}
}

func (r MembershipRequest) toInput() domain.MembershipInput {
	return domain.MembershipInput{
		Address: r.Address,
		CIDR:    r.CIDR,
	}
}
