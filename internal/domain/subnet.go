package domain

import "fmt"

// Prefix is a CIDR prefix length, the count of leading one bits in the
// subnet mask.
type Prefix int

// ParsePrefix validates v as a prefix length in [0,32].
func ParsePrefix(v int) (Prefix, error) {
	if v < 0 || v > 32 {
		return 0, fmt.Errorf("%w: %d", ErrPrefixOutOfRange, v)
	}
	return Prefix(v), nil
}

// Mask returns the subnet mask for the prefix: p one bits followed by
// zeros. Deriving it from the prefix on every call is what keeps the
// contiguous-mask invariant: a discontiguous mask cannot be represented.
func (p Prefix) Mask() IPv4Address {
	if p == 0 {
		return IPv4Address{}
	}
	return addressFromUint32(^uint32(0) << (32 - p))
}

// Subnet pairs an address with a prefix length. It is a plain value,
// constructed fresh per calculation and never mutated.
type Subnet struct {
	Address IPv4Address
	Prefix  Prefix
}

func (s Subnet) String() string {
	return fmt.Sprintf("%s/%d", s.Address, s.Prefix)
}

// NetworkAddress zeroes the host bits of addr under mask.
func NetworkAddress(addr, mask IPv4Address) IPv4Address {
	return addressFromUint32(addr.uint32() & mask.uint32())
}

// BroadcastAddress sets the host bits of addr under mask.
func BroadcastAddress(addr, mask IPv4Address) IPv4Address {
	return addressFromUint32(addr.uint32() | ^mask.uint32())
}

// UsableRange returns the first and last assignable host addresses strictly
// between network and broadcast. A /31 or /32 leaves no interior hosts in
// the classic sense (RFC 3021 point-to-point links and host routes), so ok
// is false for those prefixes.
func UsableRange(network, broadcast IPv4Address, prefix Prefix) (first, last IPv4Address, ok bool) {
	if prefix >= 31 {
		return IPv4Address{}, IPv4Address{}, false
	}
	return addressFromUint32(network.uint32() + 1), addressFromUint32(broadcast.uint32() - 1), true
}

// AvailableHosts is the count of assignable addresses in a subnet of the
// given prefix: 2^(32-p) - 2. The raw formula goes to 0 and -1 for /31 and
// /32; those are clamped to zero to match UsableRange reporting no range.
func AvailableHosts(prefix Prefix) int64 {
	if prefix >= 31 {
		return 0
	}
	return int64(1)<<(32-prefix) - 2
}

// Classify maps the first octet to the classful address ranges. 0 and 127
// fall outside the table and classify as invalid; loopback is deliberately
// not special-cased.
func Classify(firstOctet byte) IPClass {
	switch {
	case firstOctet >= 1 && firstOctet <= 126:
		return ClassA
	case firstOctet >= 128 && firstOctet <= 191:
		return ClassB
	case firstOctet >= 192 && firstOctet <= 223:
		return ClassC
	case firstOctet >= 224 && firstOctet <= 239:
		return ClassD
	case firstOctet >= 240:
		return ClassE
	default:
		return ClassInvalid
	}
}

// IsPrivate reports RFC 1918 membership: 10/8, 172.16/12 and 192.168/16.
// Loopback, link-local and CGNAT ranges are not treated as private.
func IsPrivate(addr IPv4Address) bool {
	switch {
	case addr[0] == 10:
		return true
	case addr[0] == 172 && addr[1] >= 16 && addr[1] <= 31:
		return true
	case addr[0] == 192 && addr[1] == 168:
		return true
	}
	return false
}
