// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages the travel API writes into
// error response bodies. Clients match on some of them, so the wording is
// part of the API.
package app

const (
	// MsgUnauthenticated answers every 401.
	MsgUnauthenticated = "Unauthenticated."

	// MsgUnauthorized answers every 403, when the caller is authenticated but
	// holds none of the roles the route requires.
	MsgUnauthorized = "This action is unauthorized."

	// MsgNotFound answers unknown routes and unknown travels.
	MsgNotFound = "Not found."

	// MsgInvalidCredentials answers a login with an unknown email or a wrong
	// password alike.
	MsgInvalidCredentials = "The provided credentials are incorrect."

	// MsgMethodNotAllowed answers a known path requested with the wrong method.
	MsgMethodNotAllowed = "Method Not Allowed"
)
