package sdp

import (
	"strconv"
	"strings"
)

const (
	AttrRecvonly        = "recvonly"
	AttrSendonly        = "sendonly"
	AttrInactive        = "inactive"
	AttrSendrecv        = "sendrecv"
	AttrSSRC            = "ssrc"
	AttrSSRCGroup       = "ssrc-group"
	AttrRTPMap          = "rtpmap"
	AttrFMTP            = "fmtp"
	AttrRTCP            = "rtcp"
	AttrRTCPFB          = "rtcp-fb"
	AttrRTCPMux         = "rtcp-mux"
	AttrRTCPRsize       = "rtcp-rsize"
	AttrMSID            = "msid"
	AttrMSIDSemantic    = "msid-semantic"
	AttrMID             = "mid"
	AttrICEUfrag        = "ice-ufrag"
	AttrICEPwd          = "ice-pwd"
	AttrICEOptions      = "ice-options"
	AttrCandidate       = "candidate"
	AttrEndOfCandidates = "end-of-candidates"
	AttrSetup           = "setup"
	AttrExtMap          = "extmap"
	AttrGroup           = "group"
	AttrFingerprint     = "fingerprint"
	AttrSCTPMap         = "sctpmap"
	AttrSCTPPort        = "sctp-port"
	AttrMaxMessageSize  = "max-message-size"
	AttrTLSID           = "tls-id"
	AttrBundleOnly      = "bundle-only"
	AttrPtime           = "ptime"
	AttrMaxPtime        = "maxptime"
)

const (
	BandwidthAS   = "AS"
	BandwidthTIAS = "TIAS"
)

// parseUint parses a decimal number, allowing one leading '+'.
func parseUint(token string, bitSize int) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(token, "+"), 10, bitSize)
}

func parseText(field byte) func(string) (Line, *ParseError) {
	return func(value string) (Line, *ParseError) {
		return &Text{Name: field, Value: value}, nil
	}
}

func parseVersion(value string) (Line, *ParseError) {
	version, err := parseUint(value, 64)
	if err != nil {
		return nil, lineError(value, "failed to parse v field attribute")
	}
	if version != 0 {
		return nil, lineError(value, "unsupported version in v field")
	}
	return &Uint{Name: VersionField, Value: version}, nil
}

// o=<username> <sess-id> <sess-version> <nettype> <addrtype> <unicast-address>
func parseOrigin(value string) (Line, *ParseError) {
	fields := strings.Fields(value)
	if len(fields) != 6 {
		return nil, lineError(value, "origin field must have six tokens")
	}

	var origin Origin
	var err error
	origin.Username = fields[0]
	origin.SessID, err = parseUint(fields[1], 64)
	if err != nil {
		return nil, lineError(value, "failed to parse origin session id attribute")
	}
	origin.SessVersion, err = parseUint(fields[2], 64)
	if err != nil {
		return nil, lineError(value, "failed to parse origin session version attribute")
	}

	var perr *ParseError
	origin.Address, perr = parseAddress(OriginField, value, fields[3:])
	if perr != nil {
		return nil, perr
	}
	return &origin, nil
}

// c=<nettype> <addrtype> <connection-address>
func parseConnection(value string) (Line, *ParseError) {
	fields := strings.Fields(value)
	if len(fields) != 3 {
		return nil, lineError(value, "connection attribute must have three tokens")
	}

	address, perr := parseAddress(ConnectionField, value, fields)
	if perr != nil {
		return nil, perr
	}
	return &Connection{Address: address}, nil
}

// b=<bwtype>:<bandwidth>
func parseBandwidth(value string) (Line, *ParseError) {
	fields := strings.Split(value, ":")
	if len(fields) != 2 {
		return nil, lineError(value, "bandwidth attribute must have two tokens")
	}

	switch strings.ToUpper(fields[0]) {
	case BandwidthAS, BandwidthTIAS:
	default:
		return nil, unsupported(value, "unsupported bandwidth type value")
	}

	bandwidth, err := parseUint(fields[1], 64)
	if err != nil {
		return nil, lineError(value, "failed to parse bandwidth number attribute")
	}
	return &Bandwidth{Type: fields[0], Value: bandwidth}, nil
}

// t=<start-time> <stop-time>
func parseTiming(value string) (Line, *ParseError) {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return nil, lineError(value, "timing attribute must have two tokens")
	}

	var timing Timing
	var err error
	timing.Start, err = parseUint(fields[0], 64)
	if err != nil {
		return nil, lineError(value, "failed to parse timing start time attribute")
	}
	timing.Stop, err = parseUint(fields[1], 64)
	if err != nil {
		return nil, lineError(value, "failed to parse timing stop time attribute")
	}
	return &timing, nil
}

func parseMediaKind(value, token string) (MediaKind, *ParseError) {
	switch kind := MediaKind(strings.ToLower(token)); kind {
	case MediaAudio, MediaVideo, MediaApplication:
		return kind, nil
	default:
		return "", unsupported(value, "unsupported media value %q", token)
	}
}

func parseProtocol(value, token string) (ProtocolKind, *ParseError) {
	switch proto := ProtocolKind(strings.ToUpper(token)); proto {
	case ProtoUDPTLSRTPSAVPF, ProtoTCPTLSRTPSAVPF, ProtoDTLSSCTP, ProtoUDPDTLSSCTP, ProtoTCPDTLSSCTP:
		return proto, nil
	default:
		return "", unsupported(value, "unsupported protocol value %q", token)
	}
}

// validPayloadType reports whether pt is one of the static types this parser
// knows (PCMU, PCMA, G722, comfort noise) or lies in the dynamic range.
func validPayloadType(pt uint64) bool {
	switch {
	case pt == 0, pt == 8, pt == 9, pt == 13:
		return true
	case pt >= 96 && pt <= 127:
		return true
	default:
		return false
	}
}

func parsePayloadTypes(value string, tokens []string) (PayloadTypes, *ParseError) {
	formats := make(PayloadTypes, 0, len(tokens))
	for _, token := range tokens {
		pt, err := parseUint(token, 32)
		if err != nil {
			return nil, lineError(value, "failed to parse format number in media line")
		}
		if !validPayloadType(pt) {
			return nil, lineError(value, "format number in media line is out of range")
		}
		formats = append(formats, uint8(pt))
	}
	return formats, nil
}

// m=<media> <port> <proto> <fmt> ...
func parseMedia(value string) (Line, *ParseError) {
	fields := strings.Fields(value)
	if len(fields) < 4 {
		return nil, lineError(value, "media attribute must have at least four tokens")
	}

	var media Media
	var perr *ParseError
	media.Media, perr = parseMediaKind(value, fields[0])
	if perr != nil {
		return nil, perr
	}

	port, err := parseUint(fields[1], 32)
	if err != nil {
		return nil, lineError(value, "failed to parse media port token")
	}
	if port > 65535 {
		return nil, lineError(value, "media port token is too big")
	}
	media.Port = uint16(port)

	media.Proto, perr = parseProtocol(value, fields[2])
	if perr != nil {
		return nil, perr
	}

	switch media.Media {
	case MediaAudio, MediaVideo:
		media.Formats, perr = parsePayloadTypes(value, fields[3:])
		if perr != nil {
			return nil, perr
		}
	case MediaApplication:
		media.Formats = append(FormatNames(nil), fields[3:]...)
	}
	return &media, nil
}

func isAttributeName(name string) bool {
	switch strings.ToLower(name) {
	case AttrRecvonly, AttrSendonly, AttrInactive, AttrSendrecv,
		AttrSSRC, AttrSSRCGroup,
		AttrRTPMap, AttrFMTP,
		AttrRTCP, AttrRTCPFB, AttrRTCPMux, AttrRTCPRsize,
		AttrMSID, AttrMSIDSemantic, AttrMID,
		AttrICEUfrag, AttrICEPwd, AttrICEOptions, AttrCandidate, AttrEndOfCandidates,
		AttrSetup, AttrExtMap, AttrGroup, AttrFingerprint,
		AttrSCTPMap, AttrSCTPPort, AttrMaxMessageSize,
		AttrTLSID, AttrBundleOnly, AttrPtime, AttrMaxPtime:
		return true
	default:
		return false
	}
}

// a=<attribute> or a=<attribute>:<value>
func parseAttribute(value string) (Line, *ParseError) {
	var attr Attribute
	if x := strings.IndexByte(value, ':'); x >= 0 {
		attr.Name, attr.Value = value[:x], value[x+1:]
	} else {
		attr.Name = value
	}

	if !isAttributeName(attr.Name) {
		return nil, unsupported(value, "unsupported attribute value %q", attr.Name)
	}
	return &attr, nil
}
