package types

// MessageVariant is the active shape of an outbound message
type MessageVariant string

const (
	MessageVariantSimple MessageVariant = "simple"
	MessageVariantEmbed  MessageVariant = "embed"
	MessageVariantPoll   MessageVariant = "poll"
)

// MessageVariants lists every variant in display order
var MessageVariants = []MessageVariant{
	MessageVariantSimple,
	MessageVariantEmbed,
	MessageVariantPoll,
}

// String returns the string representation of the variant
func (v MessageVariant) String() string {
	return string(v)
}

// IsValid checks if the variant is known
func (v MessageVariant) IsValid() bool {
	switch v {
	case MessageVariantSimple, MessageVariantEmbed, MessageVariantPoll:
		return true
	default:
		return false
	}
}

// Next returns the variant following v in display order, wrapping around
func (v MessageVariant) Next() MessageVariant {
	for i, mv := range MessageVariants {
		if mv == v {
			return MessageVariants[(i+1)%len(MessageVariants)]
		}
	}
	return MessageVariantSimple
}

// Tab is a composer form
type Tab string

const (
	TabMessage  Tab = "message"
	TabProspect Tab = "prospect"
)

// String returns the string representation of the tab
func (t Tab) String() string {
	return string(t)
}

// SessionState is the lifecycle state of the bot session
type SessionState string

const (
	SessionUnauthenticated SessionState = "unauthenticated"
	SessionAuthenticating  SessionState = "authenticating"
	SessionReady           SessionState = "ready"
)

// String returns the string representation of the state
func (s SessionState) String() string {
	return string(s)
}

// StatusKind classifies a composer status message
type StatusKind string

const (
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)
