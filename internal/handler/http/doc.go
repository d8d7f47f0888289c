// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport layer of the application.
//
// It exposes route wiring, request handlers and middleware for the user,
// token, profile and recipe endpoints. Cross-cutting concerns such as token
// authentication, request tracing, access logging, response compression and
// method checks are handled in this package before requests are delegated to
// the service layer.
package http
