package sdp

import (
	"errors"
	"net/netip"
	"strings"
)

var (
	errAddrType    = errors.New("unknown address type")
	errAddrLiteral = errors.New("malformed address literal")
)

func parseNettype(token string) (NetType, bool) {
	switch NetType(strings.ToUpper(token)) {
	case NetworkInternet:
		return NetworkInternet, true
	default:
		return "", false
	}
}

// checkAddress verifies that literal is an address of the family named by
// addrtype. Only syntax is checked; zoned IPv6 literals are rejected.
func checkAddress(addrtype, literal string) error {
	var family func(netip.Addr) bool
	switch strings.ToUpper(addrtype) {
	case TypeIPv4:
		family = netip.Addr.Is4
	case TypeIPv6:
		family = netip.Addr.Is6
	default:
		return errAddrType
	}

	addr, err := netip.ParseAddr(literal)
	if err != nil || addr.Zone() != "" || !family(addr) {
		return errAddrLiteral
	}
	return nil
}

// parseAddress decodes the <nettype> <addrtype> <address> triple shared by
// origin and connection lines. value is the full field value for diagnostics.
func parseAddress(field byte, value string, tokens []string) (Address, *ParseError) {
	name := fieldName(field)

	nettype, ok := parseNettype(tokens[0])
	if !ok {
		return Address{}, lineError(value, "nettype in %s needs to be IN", name)
	}

	addrtype, literal := tokens[1], tokens[2]
	switch err := checkAddress(addrtype, literal); {
	case errors.Is(err, errAddrType):
		return Address{}, lineError(value, "address type in %s needs to be IP4 or IP6", name)
	case err != nil:
		return Address{}, lineError(value, "failed to parse %s unicast %s address attribute", name, strings.ToUpper(addrtype))
	}

	return Address{Nettype: nettype, Addrtype: addrtype, UnicastAddr: literal}, nil
}
