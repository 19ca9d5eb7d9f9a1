package repository

import (
	"encoding/base64"
	"time"
)

const (
	timeFormat = "2006-01-02T15:04:05.999Z07:00" // reduced precision RFC3339

	defaultNum = 10
	maxNum     = 30
)

// DecodeCursor will decode an opaque created_at cursor coming from the client.
func DecodeCursor(encodedTime string) (time.Time, error) {
	byt, err := base64.StdEncoding.DecodeString(encodedTime)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(timeFormat, string(byt))
	return t, err
}

// EncodeCursor will encode a created_at timestamp into an opaque cursor.
func EncodeCursor(t time.Time) string {
	return base64.StdEncoding.EncodeToString([]byte(t.Format(timeFormat)))
}

// PageVerify clamps the requested page size into a sane range.
func PageVerify(num *int64) {
	if *num <= 0 || *num > maxNum {
		*num = defaultNum
	}
}
