package domain

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// IPv4Address is a single IPv4 address as four octets. The zero value is
// 0.0.0.0. Being an array, equality is element-wise for free.
type IPv4Address [4]byte

// ParseIPv4Address parses a dotted-quad address string. Exactly four
// base-10 segments in [0,255] are required; signs, whitespace, hex and
// trailing garbage are all rejected. The empty string is not special: a
// caller that wants "no input yet" semantics handles that before calling.
func ParseIPv4Address(text string) (IPv4Address, error) {
	segments := strings.Split(text, ".")
	if len(segments) != 4 {
		return IPv4Address{}, fmt.Errorf("%w: %q is not a dotted quad", ErrInvalidFormat, text)
	}

	var addr IPv4Address
	for i, segment := range segments {
		octet, err := strconv.ParseUint(segment, 10, 8)
		if err != nil {
			return IPv4Address{}, fmt.Errorf("%w: octet %q", ErrInvalidFormat, segment)
		}
		addr[i] = byte(octet)
	}
	return addr, nil
}

func (a IPv4Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}

// Binary renders each octet as a zero-padded 8-bit string.
func (a IPv4Address) Binary() [4]string {
	var out [4]string
	for i, octet := range a {
		out[i] = fmt.Sprintf("%08b", octet)
	}
	return out
}

// Addr converts to netip.Addr for interop with netip/netipx helpers.
func (a IPv4Address) Addr() netip.Addr {
	return netip.AddrFrom4(a)
}

func (a IPv4Address) uint32() uint32 {
	return binary.BigEndian.Uint32(a[:])
}

func addressFromUint32(v uint32) IPv4Address {
	var a IPv4Address
	binary.BigEndian.PutUint32(a[:], v)
	return a
}
