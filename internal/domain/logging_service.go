package domain

import (
	"context"
	"log/slog"
)

type loggingCalculatorService struct {
	logger *slog.Logger
	next   CalculatorService
}

func NewLoggingCalculatorService(logger *slog.Logger, next CalculatorService) CalculatorService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingCalculatorService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingCalculatorService) Calculate(ctx context.Context, input CalculateInput) (SubnetReport, error) {
	report, err := s.next.Calculate(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "calculate failed", "address", input.Address, "prefix", input.Prefix, "err", err.Error())
		return SubnetReport{}, err
	}

	s.logger.DebugContext(ctx, "subnet calculated",
		"subnet", report.Subnet.String(),
		"network", report.Network.String(),
		"broadcast", report.Broadcast.String(),
		"hosts", report.AvailableHosts)
	return report, nil
}

func (s *loggingCalculatorService) CheckMembership(ctx context.Context, input MembershipInput) (Membership, error) {
	membership, err := s.next.CheckMembership(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "membership check failed", "address", input.Address, "cidr", input.CIDR, "err", err.Error())
		return Membership{}, err
	}

	s.logger.DebugContext(ctx, "membership checked",
		"address", membership.Address.String(),
		"cidr", membership.CIDR.String(),
		"contains", membership.Contains,
		"assignable", membership.Assignable)
	return membership, nil
}
