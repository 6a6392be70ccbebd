package domain

// Session is the composed authentication state: the username submitted at
// login plus the token held in durable storage. Both pieces are required;
// losing either one invalidates the session.
type Session struct {
	Username string
	Token    string
}

// NewSession composes a session from its two pieces.
func NewSession(username, token string) Session {
	return Session{
		Username: username,
		Token:    token,
	}
}

// Valid reports whether both the username and the token are present.
func (s Session) Valid() bool {
	return s.Username != "" && s.Token != ""
}
