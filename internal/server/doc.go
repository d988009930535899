// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the travel API's HTTP server.
//
// It provides orchestration of the server lifecycle, including startup,
// signal handling, and graceful shutdown.
package server
