package sdpcheck

type SDPType string

const (
	SDPTypeOffer    SDPType = "offer"
	SDPTypePranswer SDPType = "pranswer"
	SDPTypeAnswer   SDPType = "answer"
	SDPTypeRollback SDPType = "rollback"
)

func ParseSDPType(raw string) (SDPType, error) {
	switch t := SDPType(raw); t {
	case SDPTypeOffer, SDPTypePranswer, SDPTypeAnswer, SDPTypeRollback:
		return t, nil
	default:
		return "", makeError(ErrTypeError, "unknown sdp type "+raw)
	}
}
