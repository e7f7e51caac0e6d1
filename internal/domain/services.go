package domain

import "context"

type CalculatorService interface {
	Calculate(ctx context.Context, input CalculateInput) (SubnetReport, error)
	CheckMembership(ctx context.Context, input MembershipInput) (Membership, error)
}
