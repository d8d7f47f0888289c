// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// MaxCharFieldLength is the length limit of every short text column.
const MaxCharFieldLength = 255

// checkText validates a required text value. It reports whether the value
// passed.
func checkText(errs ValidationErrors, field string, value *string, maxLen int) bool {
	if value == nil {
		errs.Add(field, MsgRequired)
		return false
	}
	if strings.TrimSpace(*value) == "" {
		errs.Add(field, MsgBlank)
		return false
	}
	if maxLen > 0 && utf8.RuneCountInString(*value) > maxLen {
		errs.Add(field, MsgMaxLength(maxLen))
		return false
	}
	return true
}

func checkEmail(errs ValidationErrors, field string, value *string) {
	if !checkText(errs, field, value, MaxCharFieldLength) {
		return
	}
	if !IsValidEmail(*value) {
		errs.Add(field, MsgInvalidEmail)
	}
}

// IsValidEmail reports whether s is a bare address such as
// "cook@example.com", without a display name.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && at < len(s)-1
}
