package usecase

// SessionContext identifies the caller. It is built at the transport edge and
// passed explicitly to services that act on behalf of a user.
type SessionContext struct {
	UserID string
	Token  string
}

func (s SessionContext) Authenticated() bool {
	return s.UserID != "" && s.Token != ""
}
