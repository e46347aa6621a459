package message

type Sender string

const (
	SenderClient Sender = "client"
	SenderAdmin  Sender = "admin"
)

func (s Sender) String() string {
	return string(s)
}

func (s Sender) IsValid() bool {
	switch s {
	case SenderClient, SenderAdmin:
		return true
	default:
		return false
	}
}

// Counterpart is the party that should be told about a message from s.
func (s Sender) Counterpart() Sender {
	if s == SenderClient {
		return SenderAdmin
	}
	return SenderClient
}

func NewSender(s string) (Sender, error) {
	sender := Sender(s)
	if !sender.IsValid() {
		return "", ErrInvalidSender
	}
	return sender, nil
}
