package directory

import "github.com/pkg/errors"

// SessionState is the auth-check state for one client.
type SessionState int

const (
	SessionUnauthenticated SessionState = iota
	SessionAuthenticating
	SessionAuthenticated
	SessionFailed
)

func (s SessionState) String() string {
	switch s {
	case SessionUnauthenticated:
		return "unauthenticated"
	case SessionAuthenticating:
		return "authenticating"
	case SessionAuthenticated:
		return "authenticated"
	case SessionFailed:
		return "failed"
	}
	return "unknown"
}

var ErrSessionActive = errors.New("session already authenticated")

const failedSessionMessage = "Invalid credentials for the selected role."

// Session drives the auth check for one client: Unauthenticated moves to
// Authenticating on submit, then to Authenticated or Failed. A failed
// session may resubmit. There is no lockout, rate limiting or retry backoff.
type Session struct {
	svc     *Service
	state   SessionState
	usr     User
	message string
}

func NewSession(svc *Service) *Session {
	return &Session{svc: svc}
}

// Submit runs the credentials through Service.Authenticate and settles the
// session in Authenticated or Failed.
func (s *Session) Submit(uname string, role Role, pwd string) (User, error) {
	if s.state == SessionAuthenticated {
		return User{}, ErrSessionActive
	}
	s.state = SessionAuthenticating

	usr, err := s.svc.Authenticate(uname, role, pwd)
	if err != nil {
		s.state = SessionFailed
		s.usr = User{}
		s.message = failedSessionMessage
		return User{}, err
	}

	s.state = SessionAuthenticated
	s.usr = usr
	s.message = ""
	return usr, nil
}

func (s *Session) State() SessionState {
	return s.state
}

// User returns the authenticated user, if any.
func (s *Session) User() (User, bool) {
	return s.usr, s.state == SessionAuthenticated
}

// Message returns the user-visible message of the last failed submission.
func (s *Session) Message() string {
	return s.message
}

func (s *Session) Logout() {
	*s = Session{svc: s.svc}
}
