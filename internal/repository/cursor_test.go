package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelasbackend/forum-api/internal/repository"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2026, 8, 1, 12, 30, 15, 123000000, time.UTC)

	decoded, err := repository.DecodeCursor(repository.EncodeCursor(ts))

	require.NoError(t, err)
	assert.True(t, ts.Equal(decoded))
}

func TestDecodeCursorGarbage(t *testing.T) {
	_, err := repository.DecodeCursor("not-base64!!")
	assert.Error(t, err)
}

func TestPageVerify(t *testing.T) {
	cases := []struct {
		in   int64
		want int64
	}{
		{0, 10},
		{-5, 10},
		{15, 15},
		{31, 10},
	}
	for _, c := range cases {
		num := c.in
		repository.PageVerify(&num)
		assert.Equal(t, c.want, num)
	}
}
