// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the application's HTTP server.
//
// It covers startup, signal handling and graceful shutdown bounded by the
// configured shutdown timeout.
package server
