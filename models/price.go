// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxPrice is the largest representable price in cents (999.99), matching
// the NUMERIC(5,2) column it is stored in.
const MaxPrice Price = 99999

// Sentinel errors returned by [ParsePrice].
var (
	ErrInvalidPrice         = errors.New("a valid number is required")
	ErrPriceTooManyDecimals = errors.New("ensure that there are no more than 2 decimal places")
	ErrPriceTooLarge        = errors.New("ensure that there are no more than 5 digits in total")
)

// Price is a fixed-point amount with two decimal places, held as an integer
// number of cents.
type Price int64

// ParsePrice parses a decimal string such as "5", "5.5" or "-12.30".
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidPrice
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, hasDot := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, ErrInvalidPrice
	}
	if whole == "" {
		whole = "0"
	}
	if hasDot && frac == "" {
		frac = "0"
	}
	if !isDigits(whole) || !isDigits(frac) {
		return 0, ErrInvalidPrice
	}

	frac = strings.TrimRight(frac, "0")
	if len(frac) > 2 {
		return 0, ErrPriceTooManyDecimals
	}
	frac += strings.Repeat("0", 2-len(frac))

	whole = strings.TrimLeft(whole, "0")
	if len(whole) > 3 {
		return 0, ErrPriceTooLarge
	}

	units, err := strconv.ParseInt("0"+whole+frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPrice, err)
	}

	if negative {
		units = -units
	}
	return Price(units), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String renders the price with exactly two decimal places, e.g. "5.50".
func (p Price) String() string {
	cents := int64(p)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// MarshalJSON encodes the price as a JSON string.
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts both JSON strings ("5.50") and numbers (5.5).
func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
	}

	parsed, err := ParsePrice(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value implements [driver.Valuer]. The decimal string form is accepted by
// both NUMERIC columns in Postgres and SQLite.
func (p Price) Value() (driver.Value, error) {
	return p.String(), nil
}

// Scan implements [sql.Scanner].
func (p *Price) Scan(src any) error {
	var (
		parsed Price
		err    error
	)

	switch v := src.(type) {
	case nil:
		*p = 0
		return nil
	case int64:
		parsed = Price(v * 100)
	case float64:
		parsed, err = ParsePrice(strconv.FormatFloat(v, 'f', 2, 64))
	case string:
		parsed, err = ParsePrice(v)
	case []byte:
		parsed, err = ParsePrice(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Price", src)
	}
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}
