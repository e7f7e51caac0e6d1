package domain

type CalculateInput struct {
	Address string
	Prefix  int
}

type MembershipInput struct {
	Address string
	CIDR    string
}
