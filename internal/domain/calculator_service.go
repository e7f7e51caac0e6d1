package domain

import (
	"context"
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

type calculatorService struct{}

// NewCalculatorService returns the stateless subnet calculator. Every
// method is a pure function of its input; instances are safe to share.
func NewCalculatorService() CalculatorService {
	return calculatorService{}
}

func (calculatorService) Calculate(_ context.Context, input CalculateInput) (SubnetReport, error) {
	addr, err := ParseIPv4Address(input.Address)
	if err != nil {
		return SubnetReport{}, err
	}

	prefix, err := ParsePrefix(input.Prefix)
	if err != nil {
		return SubnetReport{}, err
	}

	mask := prefix.Mask()
	network := NetworkAddress(addr, mask)
	broadcast := BroadcastAddress(addr, mask)

	report := SubnetReport{
		Subnet:         Subnet{Address: addr, Prefix: prefix},
		Mask:           mask,
		Network:        network,
		Broadcast:      broadcast,
		AvailableHosts: AvailableHosts(prefix),
		Class:          Classify(addr[0]),
		Scope:          ScopePublic,
		AddressBinary:  addr.Binary(),
		MaskBinary:     mask.Binary(),
	}
	if IsPrivate(addr) {
		report.Scope = ScopePrivate
	}
	if first, last, ok := UsableRange(network, broadcast, prefix); ok {
		report.FirstUsable = &first
		report.LastUsable = &last
	}

	return report, nil
}

func (calculatorService) CheckMembership(_ context.Context, input MembershipInput) (Membership, error) {
	addr, err := ParseIPv4Address(input.Address)
	if err != nil {
		return Membership{}, err
	}

	cidr, err := netip.ParsePrefix(input.CIDR)
	if err != nil || !cidr.Addr().Is4() {
		return Membership{}, fmt.Errorf("%w: cidr %q", ErrInvalidFormat, input.CIDR)
	}

	m := Membership{Address: addr, CIDR: cidr}
	ip := addr.Addr()
	m.Contains = cidr.Contains(ip)
	if !m.Contains {
		return m, nil
	}

	// /31 point-to-point links treat both addresses as usable.
	if cidr.Bits() != 31 {
		r := netipx.RangeOfPrefix(cidr)
		m.IsNetwork = r.From() == ip
		m.IsBroadcast = r.To() == ip
	}
	m.Assignable = !m.IsNetwork && !m.IsBroadcast

	return m, nil
}
