// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

/*
Package auth implements the demo login used by the platform front end.

There is no credential check and no session state. Login derives a user
from the email address alone and issues an opaque token of the form
token_<userId>_<unix milliseconds>. Nothing in the API verifies the token.

Derivation for "jane.doe-admin@uni.edu":

	local part   jane.doe-admin
	id           janedoeadmin      (non-alphanumerics removed)
	name         Jane Doe Admin    (non-alphanumerics become spaces, words capitalised)
	role         admin             (email contains "admin")
	tenantId     stanford
*/
package auth
