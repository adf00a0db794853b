// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential account names under which the two session fields are stored
// inside the configured credential namespace.
const (
	AccessJwtAccount = "accessJwtKey"
	DIDAccount       = "didKey"
)

// Session is the authenticated state of the client: the bearer token issued
// by the server and the account identifier (DID) it belongs to.
//
// An empty string means the field is absent. Both fields are either set
// together or both absent; a half-populated Session is never exposed.
type Session struct {
	// AccessJwt is the bearer token sent as "Authorization: Bearer <token>".
	AccessJwt string `json:"-"`

	// DID is the decentralized identifier of the account, used as the repo
	// of every record the client creates.
	DID string `json:"did"`
}

// IsAuthenticated reports whether both session fields are present.
func (s Session) IsAuthenticated() bool {
	return s.AccessJwt != "" && s.DID != ""
}
