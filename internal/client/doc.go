// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the recipe API.
//
// Each invocation runs one sub-command (e.g. "login", "recipes",
// "upload-image") against the server through an [adapter.APIClient] and
// prints the result as indented JSON.
package client
