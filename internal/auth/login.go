// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package auth

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/lectern/internal/models"
)

// DefaultTenantID is the tenant every demo user belongs to.
const DefaultTenantID = "stanford"

// TokenPrefix starts every issued token.
const TokenPrefix = "token_"

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
	wordStart       = regexp.MustCompile(`\b\w`)
)

// Session is the outcome of a successful login.
type Session struct {
	User  models.User
	Token string
}

// Login derives a user from email and issues a token stamped with now.
// The caller is responsible for rejecting empty credentials.
func Login(email string, now time.Time) Session {
	local := LocalPart(email)
	user := models.User{
		ID:       UserID(local),
		Email:    email,
		Name:     DisplayName(local),
		Role:     Role(email),
		TenantID: DefaultTenantID,
	}
	return Session{
		User:  user,
		Token: IssueToken(user.ID, now),
	}
}

// LocalPart returns everything before the first "@", or the whole string
// when there is none.
func LocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// UserID strips every non-alphanumeric character from local.
func UserID(local string) string {
	return nonAlphanumeric.ReplaceAllString(local, "")
}

// DisplayName turns separators into spaces and capitalises the first
// character of each word.
func DisplayName(local string) string {
	spaced := nonAlphanumeric.ReplaceAllString(local, " ")
	return wordStart.ReplaceAllStringFunc(spaced, strings.ToUpper)
}

// Role grants admin to any email containing "admin".
func Role(email string) string {
	if strings.Contains(email, "admin") {
		return models.RoleAdmin
	}
	return models.RoleStudent
}

// IssueToken formats a token for userID at now.
func IssueToken(userID string, now time.Time) string {
	return TokenPrefix + userID + "_" + strconv.FormatInt(now.UnixMilli(), 10)
}
