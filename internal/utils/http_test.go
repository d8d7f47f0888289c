// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := models.UserResponse{Email: "cook@example.com", Name: "Cook"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.DetailResponse{Detail: "Not found."}, http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_UserNeverLeaksPassword(t *testing.T) {
	w := httptest.NewRecorder()
	user := models.User{UserID: 1, Email: "cook@example.com", Name: "Cook", PasswordHash: "$2a$10$secret"}

	_, err := WriteJSON(w, user, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if strings.Contains(w.Body.String(), "secret") || strings.Contains(w.Body.String(), "password") {
		t.Errorf("password material leaked into body: %s", w.Body.String())
	}
}

func TestDecodeJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Salt","extra":1}`))

	var req models.NameRequest
	if err := DecodeJSON(r, &req); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if req.Name == nil || *req.Name != "Salt" {
		t.Errorf("unexpected decoded value %+v", req)
	}
}

func TestDecodeJSON_EmptyBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", http.NoBody)

	var req models.NameRequest
	if err := DecodeJSON(r, &req); !errors.Is(err, ErrEmptyBody) {
		t.Fatalf("expected ErrEmptyBody, got: %v", err)
	}

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	if err := DecodeJSON(r, &req); !errors.Is(err, ErrEmptyBody) {
		t.Fatalf("expected ErrEmptyBody for zero-length body, got: %v", err)
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

	var req models.NameRequest
	err := DecodeJSON(r, &req)
	if err == nil || errors.Is(err, ErrEmptyBody) {
		t.Fatalf("expected decode error, got: %v", err)
	}
}
