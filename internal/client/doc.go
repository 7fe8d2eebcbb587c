// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the account service.
//
// Each sub-command maps onto one call of [adapter.ServerAdapter]; results
// are printed as indented JSON.
package client
