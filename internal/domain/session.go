package domain

type SessionStatus string

const (
	SessionDisconnected SessionStatus = "disconnected"
	SessionConnecting   SessionStatus = "connecting"
	SessionConnected    SessionStatus = "connected"
	SessionFailed       SessionStatus = "failed"
)

// Session is Connected exactly when both AccountAddress and ActiveChain are set.
type Session struct {
	Status         SessionStatus
	AccountAddress string
	ActiveChain    *ChainDescriptor
}

func (s Session) Connected() bool {
	return s.Status == SessionConnected && s.AccountAddress != "" && s.ActiveChain != nil
}
