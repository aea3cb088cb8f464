// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Request Identity

// Identity is the resolved authentication outcome of a single request.
//
// The zero value is the anonymous identity. An authenticated identity always
// carries the subject (the account email) it was resolved from, the account ID
// and the role read from the credential store at resolution time.
//
// Identity is a plain value. It is published once per request into the request
// context by the identity gate and is never shared between requests.
type Identity struct {
	UserID  string `json:"user_id,omitempty"`
	Subject string `json:"subject,omitempty"`
	Role    Role   `json:"role,omitempty"`
}

// Anonymous returns the identity of a caller that presented no usable token.
func Anonymous() Identity {
	return Identity{}
}

// Authenticated returns the identity of a caller resolved to an existing account.
func Authenticated(userID, subject string, role Role) Identity {
	return Identity{UserID: userID, Subject: subject, Role: role}
}

// IsAuthenticated reports whether the identity was resolved to an account.
func (identity Identity) IsAuthenticated() bool {
	return identity.Subject != ""
}

// HasRole reports whether the identity is authenticated with one of roles.
func (identity Identity) HasRole(roles ...Role) bool {
	return identity.IsAuthenticated() && identity.Role.In(roles...)
}
