// Package sdp implements a line level parser for the Session Description Protocol (SDP), rfc4566
package sdp

import (
	"fmt"

	"github.com/rs/zerolog"
)

const (
	VersionField       = 'v'
	OriginField        = 'o'
	SessionNameField   = 's'
	SessionInfoField   = 'i'
	URIField           = 'u'
	EmailField         = 'e'
	PhoneNumberField   = 'p'
	ConnectionField    = 'c'
	BandwidthField     = 'b'
	TimingField        = 't'
	RepeatTimeField    = 'r'
	TimeZoneField      = 'z'
	EncryptionKeyField = 'k'
	MediaDescField     = 'm'
	AttributeField     = 'a'
)

// Line is one successfully parsed SDP field. The concrete type is one of
// *Attribute, *Bandwidth, *Connection, *Media, *Origin, *Text, *Uint or *Timing.
type Line interface {
	Field() byte
	String() string
	zerolog.LogObjectMarshaler

	line()
}

type Attribute struct {
	Name  string
	Value string
}

type Bandwidth struct {
	Type  string
	Value uint64
}

type NetType string

const (
	NetworkInternet NetType = "IN"
)

const (
	TypeIPv4 = "IP4"
	TypeIPv6 = "IP6"
)

// Address is the <nettype> <addrtype> <unicast-address> tail shared by
// origin and connection lines.
type Address struct {
	Nettype     NetType
	Addrtype    string
	UnicastAddr string
}

type Connection struct {
	Address
}

type Origin struct {
	Username    string
	SessID      uint64
	SessVersion uint64
	Address
}

type Timing struct {
	Start uint64
	Stop  uint64
}

type MediaKind string

const (
	MediaAudio       MediaKind = "audio"
	MediaVideo       MediaKind = "video"
	MediaApplication MediaKind = "application"
)

type ProtocolKind string

const (
	ProtoUDPTLSRTPSAVPF ProtocolKind = "UDP/TLS/RTP/SAVPF"
	ProtoTCPTLSRTPSAVPF ProtocolKind = "TCP/TLS/RTP/SAVPF"
	ProtoDTLSSCTP       ProtocolKind = "DTLS/SCTP"
	ProtoUDPDTLSSCTP    ProtocolKind = "UDP/DTLS/SCTP"
	ProtoTCPDTLSSCTP    ProtocolKind = "TCP/DTLS/SCTP"
)

// FormatList is the <fmt> list of a media line: PayloadTypes for audio and
// video, FormatNames for application media.
type FormatList interface {
	Len() int
	String() string

	formats()
}

type PayloadTypes []uint8

type FormatNames []string

type Media struct {
	Media   MediaKind
	Port    uint16
	Proto   ProtocolKind
	Formats FormatList
}

// Text holds the value of a field that is accepted without structured
// decoding (s, i, u, e, p, r, z, k).
type Text struct {
	Name  byte
	Value string
}

// Uint holds an unsigned numeric field. Only the version line produces one.
type Uint struct {
	Name  byte
	Value uint64
}

func (*Attribute) Field() byte  { return AttributeField }
func (*Bandwidth) Field() byte  { return BandwidthField }
func (*Connection) Field() byte { return ConnectionField }
func (*Media) Field() byte      { return MediaDescField }
func (*Origin) Field() byte     { return OriginField }
func (*Timing) Field() byte     { return TimingField }
func (t *Text) Field() byte     { return t.Name }
func (u *Uint) Field() byte     { return u.Name }

func (*Attribute) line()  {}
func (*Bandwidth) line()  {}
func (*Connection) line() {}
func (*Media) line()      {}
func (*Origin) line()     {}
func (*Timing) line()     {}
func (*Text) line()       {}
func (*Uint) line()       {}

func (PayloadTypes) formats() {}
func (FormatNames) formats()  {}

func (p PayloadTypes) Len() int { return len(p) }
func (f FormatNames) Len() int  { return len(f) }

func (p PayloadTypes) String() string { return fmt.Sprint([]uint8(p)) }
func (f FormatNames) String() string  { return fmt.Sprint([]string(f)) }

// fieldName is the label used in diagnostics for each field letter.
func fieldName(field byte) string {
	switch field {
	case VersionField:
		return "version"
	case OriginField:
		return "origin"
	case SessionNameField:
		return "session"
	case SessionInfoField:
		return "information"
	case URIField:
		return "uri"
	case EmailField:
		return "email"
	case PhoneNumberField:
		return "phone"
	case ConnectionField:
		return "connection"
	case BandwidthField:
		return "bandwidth"
	case TimingField:
		return "timing"
	case RepeatTimeField:
		return "repeat"
	case TimeZoneField:
		return "zone"
	case EncryptionKeyField:
		return "key"
	case MediaDescField:
		return "media"
	case AttributeField:
		return "attribute"
	default:
		return string(field)
	}
}
