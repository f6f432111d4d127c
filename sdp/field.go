package sdp

import (
	"strings"
)

type fieldParser func(value string) (Line, *ParseError)

var fieldParsers = map[byte]fieldParser{
	AttributeField:     parseAttribute,
	BandwidthField:     parseBandwidth,
	ConnectionField:    parseConnection,
	EmailField:         parseText(EmailField),
	SessionInfoField:   parseText(SessionInfoField),
	EncryptionKeyField: parseText(EncryptionKeyField),
	MediaDescField:     parseMedia,
	OriginField:        parseOrigin,
	PhoneNumberField:   parseText(PhoneNumberField),
	RepeatTimeField:    parseText(RepeatTimeField),
	SessionNameField:   parseText(SessionNameField),
	TimingField:        parseTiming,
	URIField:           parseText(URIField),
	VersionField:       parseVersion,
	TimeZoneField:      parseText(TimeZoneField),
}

// splitField splits line at the first '=' into a lower-cased single letter
// field name and the trimmed value.
func splitField(line string) (byte, string, *ParseError) {
	x := strings.IndexByte(line, '=')
	if x < 0 {
		return 0, "", lineError(line, "failed to split field and attribute")
	}

	name := strings.TrimSpace(line[:x])
	if len(name) != 1 {
		return 0, "", lineError(line, "field name empty or too long")
	}

	value := strings.TrimSpace(line[x+1:])
	if len(value) == 0 {
		return 0, "", lineError(line, "attribute value has zero length")
	}

	return strings.ToLower(name)[0], value, nil
}

// ParseLine parses a single SDP line. A nil error means the line was parsed;
// otherwise the error is a *ParseError whose Line is the complete input.
func ParseLine(line string) (Line, error) {
	l, perr := parseLine(line)
	if perr != nil {
		return nil, perr
	}
	return l, nil
}

func parseLine(line string) (Line, *ParseError) {
	field, value, perr := splitField(line)
	if perr != nil {
		return nil, perr
	}

	parse, ok := fieldParsers[field]
	if !ok {
		return nil, lineError(line, "unsupported sdp field")
	}

	l, perr := parse(value)
	if perr != nil {
		perr.Line = line
		return nil, perr
	}
	return l, nil
}
