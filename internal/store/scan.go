// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"
)

// sqliteTimeLayouts are the formats go-sqlite3 writes timestamps in.
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
}

// timestamp scans a time column. SQLite loses the declared column type on
// RETURNING clauses and hands back text instead of time.Time.
type timestamp struct {
	dst *time.Time
}

func scanTime(dst *time.Time) *timestamp {
	return &timestamp{dst: dst}
}

func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t.dst = time.Time{}
		return nil
	case time.Time:
		*t.dst = v
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into time.Time", src)
	}
}

func (t *timestamp) parse(s string) error {
	for _, layout := range sqliteTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t.dst = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as time", s)
}
