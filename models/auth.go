package models

// CreateSessionRequest is the body of com.atproto.server.createSession.
type CreateSessionRequest struct {
	// Identifier is a handle or an email address.
	Identifier string `json:"identifier"`
	// Password is the account password or an app password.
	Password string `json:"password"`
}

// CreateSessionResponse is the subset of the createSession response the
// client reads. Required fields are pointers so that a missing key can be
// told apart from an empty value.
type CreateSessionResponse struct {
	AccessJwt  *string `json:"accessJwt"`
	DID        *string `json:"did"`
	RefreshJwt *string `json:"refreshJwt,omitempty"`
	Handle     *string `json:"handle,omitempty"`
	Email      *string `json:"email,omitempty"`
}

// Session converts the response into a [Session]. ok is false when either
// accessJwt or did is missing or empty.
func (r CreateSessionResponse) Session() (session Session, ok bool) {
	if r.AccessJwt == nil || r.DID == nil || *r.AccessJwt == "" || *r.DID == "" {
		return Session{}, false
	}

	return Session{AccessJwt: *r.AccessJwt, DID: *r.DID}, true
}

// XRPCError is the standard error body returned by XRPC endpoints.
type XRPCError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// String renders the error body as "Error: Message", omitting empty parts.
func (e XRPCError) String() string {
	switch {
	case e.Error != "" && e.Message != "":
		return e.Error + ": " + e.Message
	case e.Error != "":
		return e.Error
	default:
		return e.Message
	}
}
