// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the lifetime of a JWT access token and of the page cookie carrying it.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL is how long a session survives in Redis without rotation.
	RefreshTokenTTL = 30 * 24 * time.Hour

	// RefreshTokenLength is the byte length of the random refresh token.
	RefreshTokenLength = 32

	MinUsernameLen = 3
	MinPasswordLen = 8
)
