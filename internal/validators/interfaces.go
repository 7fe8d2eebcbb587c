// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account payloads before they reach the store.
//
// Rules are declared as `validate` struct tags on the request models and
// enforced with go-playground/validator. Every rejection is reported as a
// [FieldErrors] value keyed by the JSON name of the offending field, which
// the HTTP layer returns verbatim in a 400 response.
package validators

import "context"

// Validator checks a request payload. When fields are given only errors for
// those JSON field names are reported.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
