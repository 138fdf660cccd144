package rental

// Session is the transient in-process identity for one interactive
// session: set by a successful login, cleared by logout or exit. The
// role is never held here — authorization checks fetch it fresh via
// Repo.Role, so a mid-session role change applies on the next check.
type Session struct {
	Login string
}

// Active reports whether someone is logged in; the zero Session is not.
func (s Session) Active() bool { return s.Login != "" }
