package guard

// Outcome is what a page load should do after a guard check.
type Outcome int

const (
	Allow Outcome = iota
	Redirect
)

func (o Outcome) String() string {
	if o == Allow {
		return "allow"
	}
	return "redirect"
}

// Decision is the result of a guard check. The caller performs the
// navigation; the guard itself has no side effects on the page.
//
// Notice, when set, is a blocking message to show the user before
// following the redirect.
type Decision struct {
	Outcome Outcome
	Target  string
	Notice  string
}

func allow() Decision { return Decision{Outcome: Allow} }

func redirect(target, notice string) Decision {
	return Decision{Outcome: Redirect, Target: target, Notice: notice}
}

// Allowed reports whether the page may render.
func (d Decision) Allowed() bool { return d.Outcome == Allow }

// LoginResult is the structured outcome of a login attempt. Invalid
// credentials are a normal result, not an error.
type LoginResult struct {
	Success    bool
	RedirectTo string
	Message    string
}

// NavState drives the visibility of navigation blocks. It is for display
// only and grants nothing.
type NavState struct {
	// LoggedIn shows the authenticated-only block.
	LoggedIn bool
	// LoggedOut shows the anonymous-only block.
	LoggedOut bool
	// Username is the display name, empty when logged out.
	Username string
	// Admin shows admin-only links.
	Admin bool
	// Dashboards maps each dashboard link to whether it should render.
	Dashboards map[string]bool
}
