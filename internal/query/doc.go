// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package query implements the tour listing pipeline over in-memory data:
// filter by price and starting date, sort by one key with deterministic
// tie-breaks, then cut out one fixed-size page.
//
// The SQL backends render the same [models.TourQuery] in the store package;
// this package is the reference behaviour both must agree with.
package query
