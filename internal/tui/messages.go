package tui

// Page names registered in [RootModel].
const (
	pageLogin   = "login"
	pageCompose = "compose"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page as a message.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login command.
type LoginResult struct {
	Identifier string
	Err        error
}

// PostResult is produced by the create post command.
type PostResult struct {
	OK  bool
	Err error
}

// LogoutResult is produced by the logout command.
type LogoutResult struct {
	Err error
}

// loggedInNotice is delivered to the compose page after a successful login.
type loggedInNotice struct {
	Identifier string
}

// loggedOutNotice is delivered to the login page after logout.
type loggedOutNotice struct {
	Err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
