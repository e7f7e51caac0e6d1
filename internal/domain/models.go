package domain

import "net/netip"

type IPClass string

const (
	ClassA       IPClass = "A"
	ClassB       IPClass = "B"
	ClassC       IPClass = "C"
	ClassD       IPClass = "D"
	ClassE       IPClass = "E"
	ClassInvalid IPClass = "invalid"
)

type AddressScope string

const (
	ScopePrivate AddressScope = "private"
	ScopePublic  AddressScope = "public"
)

// SubnetReport bundles every value derived from an (address, prefix) pair.
// FirstUsable and LastUsable are nil when the prefix leaves no host range.
type SubnetReport struct {
	Subnet         Subnet
	Mask           IPv4Address
	Network        IPv4Address
	Broadcast      IPv4Address
	FirstUsable    *IPv4Address
	LastUsable     *IPv4Address
	AvailableHosts int64
	Class          IPClass
	Scope          AddressScope
	AddressBinary  [4]string
	MaskBinary     [4]string
}

// Membership is the result of checking a single address against a CIDR
// block. Assignable means the address is inside the block and is neither
// the network nor the broadcast address.
type Membership struct {
	Address     IPv4Address
	CIDR        netip.Prefix
	Contains    bool
	IsNetwork   bool
	IsBroadcast bool
	Assignable  bool
}
