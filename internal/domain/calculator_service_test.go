package domain

import (
	"context"
	"errors"
	"testing"
)

func TestCalculateClassCPrivate(t *testing.T) {
	service := NewCalculatorService()

	report, err := service.Calculate(context.Background(), CalculateInput{Address: "192.168.1.1", Prefix: 24})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := report.Mask.String(); got != "255.255.255.0" {
		t.Fatalf("expected mask 255.255.255.0, got %s", got)
	}
	if got := report.Network.String(); got != "192.168.1.0" {
		t.Fatalf("expected network 192.168.1.0, got %s", got)
	}
	if got := report.Broadcast.String(); got != "192.168.1.255" {
		t.Fatalf("expected broadcast 192.168.1.255, got %s", got)
	}
	if report.FirstUsable == nil || report.FirstUsable.String() != "192.168.1.1" {
		t.Fatalf("expected first usable 192.168.1.1, got %v", report.FirstUsable)
	}
	if report.LastUsable == nil || report.LastUsable.String() != "192.168.1.254" {
		t.Fatalf("expected last usable 192.168.1.254, got %v", report.LastUsable)
	}
	if report.AvailableHosts != 254 {
		t.Fatalf("expected 254 hosts, got %d", report.AvailableHosts)
	}
	if report.Class != ClassC {
		t.Fatalf("expected class C, got %s", report.Class)
	}
	if report.Scope != ScopePrivate {
		t.Fatalf("expected private scope, got %s", report.Scope)
	}
	if report.AddressBinary[0] != "11000000" {
		t.Fatalf("expected first address octet 11000000, got %s", report.AddressBinary[0])
	}
	if report.MaskBinary[3] != "00000000" {
		t.Fatalf("expected last mask octet 00000000, got %s", report.MaskBinary[3])
	}
}

func TestCalculateClassAPrivate(t *testing.T) {
	service := NewCalculatorService()

	report, err := service.Calculate(context.Background(), CalculateInput{Address: "10.0.0.1", Prefix: 8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := report.Mask.String(); got != "255.0.0.0" {
		t.Fatalf("expected mask 255.0.0.0, got %s", got)
	}
	if got := report.Network.String(); got != "10.0.0.0" {
		t.Fatalf("expected network 10.0.0.0, got %s", got)
	}
	if got := report.Broadcast.String(); got != "10.255.255.255" {
		t.Fatalf("expected broadcast 10.255.255.255, got %s", got)
	}
	if report.AvailableHosts != 16777214 {
		t.Fatalf("expected 16777214 hosts, got %d", report.AvailableHosts)
	}
	if report.Class != ClassA {
		t.Fatalf("expected class A, got %s", report.Class)
	}
	if report.Scope != ScopePrivate {
		t.Fatalf("expected private scope, got %s", report.Scope)
	}
}

func TestCalculatePublicAddress(t *testing.T) {
	service := NewCalculatorService()

	report, err := service.Calculate(context.Background(), CalculateInput{Address: "8.8.8.8", Prefix: 32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Scope != ScopePublic {
		t.Fatalf("expected public scope, got %s", report.Scope)
	}
	if report.FirstUsable != nil || report.LastUsable != nil {
		t.Fatal("expected no usable range for /32")
	}
	if report.AvailableHosts != 0 {
		t.Fatalf("expected 0 hosts for /32, got %d", report.AvailableHosts)
	}
	if got := report.Network.String(); got != "8.8.8.8" {
		t.Fatalf("expected network 8.8.8.8, got %s", got)
	}
	if got := report.Broadcast.String(); got != "8.8.8.8" {
		t.Fatalf("expected broadcast 8.8.8.8, got %s", got)
	}
}

func TestCalculatePointToPointHasNoUsableRange(t *testing.T) {
	service := NewCalculatorService()

	report, err := service.Calculate(context.Background(), CalculateInput{Address: "192.0.2.6", Prefix: 31})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.FirstUsable != nil || report.LastUsable != nil {
		t.Fatal("expected no usable range for /31")
	}
	if report.AvailableHosts != 0 {
		t.Fatalf("expected 0 hosts for /31, got %d", report.AvailableHosts)
	}
}

func TestCalculateRejectsMalformedAddress(t *testing.T) {
	service := NewCalculatorService()

	_, err := service.Calculate(context.Background(), CalculateInput{Address: "192.168.1", Prefix: 24})
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestCalculateRejectsPrefixOutOfRange(t *testing.T) {
	service := NewCalculatorService()

	_, err := service.Calculate(context.Background(), CalculateInput{Address: "192.168.1.1", Prefix: 33})
	if !errors.Is(err, ErrPrefixOutOfRange) {
		t.Fatalf("expected ErrPrefixOutOfRange, got %v", err)
	}
}

func TestCheckMembership(t *testing.T) {
	service := NewCalculatorService()

	tests := []struct {
		name        string
		address     string
		cidr        string
		contains    bool
		isNetwork   bool
		isBroadcast bool
		assignable  bool
	}{
		{name: "host inside", address: "10.0.0.10", cidr: "10.0.0.0/24", contains: true, assignable: true},
		{name: "outside", address: "10.0.1.10", cidr: "10.0.0.0/24"},
		{name: "network address", address: "10.0.0.0", cidr: "10.0.0.0/24", contains: true, isNetwork: true},
		{name: "broadcast address", address: "10.0.0.255", cidr: "10.0.0.0/24", contains: true, isBroadcast: true},
		{name: "p2p low", address: "192.0.2.6", cidr: "192.0.2.6/31", contains: true, assignable: true},
		{name: "p2p high", address: "192.0.2.7", cidr: "192.0.2.6/31", contains: true, assignable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := service.CheckMembership(context.Background(), MembershipInput{Address: tt.address, CIDR: tt.cidr})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Contains != tt.contains || m.IsNetwork != tt.isNetwork || m.IsBroadcast != tt.isBroadcast || m.Assignable != tt.assignable {
				t.Fatalf("expected contains=%v network=%v broadcast=%v assignable=%v, got %+v",
					tt.contains, tt.isNetwork, tt.isBroadcast, tt.assignable, m)
			}
		})
	}
}

func TestCheckMembershipRejectsBadInput(t *testing.T) {
	service := NewCalculatorService()

	if _, err := service.CheckMembership(context.Background(), MembershipInput{Address: "not-an-ip", CIDR: "10.0.0.0/24"}); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for bad address, got %v", err)
	}
	if _, err := service.CheckMembership(context.Background(), MembershipInput{Address: "10.0.0.1", CIDR: "not-a-cidr"}); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for bad cidr, got %v", err)
	}
	if _, err := service.CheckMembership(context.Background(), MembershipInput{Address: "10.0.0.1", CIDR: "2001:db8::/64"}); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for v6 cidr, got %v", err)
	}
}
