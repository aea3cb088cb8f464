// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Credential Constraints

const (
	// MaxEmailLength bounds the identifier column.
	MaxEmailLength = 255

	// MaxDisplayNameLength bounds the public display name.
	MaxDisplayNameLength = 50

	// MaxPasswordBytes is the bcrypt input limit; longer passwords are rejected
	// rather than silently truncated.
	MaxPasswordBytes = 72

	// timingEqualizerPassword is hashed once and compared against when the
	// email is unknown, so both login failures cost one bcrypt comparison.
	timingEqualizerPassword = "learnsnap-login-timing-equalizer"
)
