// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-accounts server handlers, middleware and client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned for every failed login, whether the
	// identifier is unknown or the password is wrong.
	MsgInvalidCredentials = "invalid credentials"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUnauthenticated is returned by the auth gate when a protected route
	// is called without a token.
	MsgUnauthenticated = "unauthenticated"

	// MsgForbidden is returned by the auth gate when the presented token
	// fails verification.
	MsgForbidden = "forbidden"

	MsgUserNotFound = "user not found"

	// MsgRouteNotFound is returned for unknown paths and for methods a known
	// path does not serve.
	MsgRouteNotFound = "route not found"

	// MsgInvalidUserID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidUserID = "invalid user id"

	// MsgInvalidActiveFlag is returned when the activation payload carries
	// no boolean "active" field.
	MsgInvalidActiveFlag = "active must be a boolean"
)
