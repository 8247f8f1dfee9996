// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFamilies(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		family error
	}{
		{"missing field", &MissingFieldError{Name: "DOI"}, ErrDecode},
		{"invalid type", &InvalidTypeError{Name: "title"}, ErrDecode},
		{"invalid message", &InvalidMessageTypeError{Description: "[]"}, ErrDecode},
		{"invalid result control", &InvalidResultControlError{Description: "rows=x"}, ErrRoute},
		{"config", &ConfigError{Description: "empty id"}, ErrRoute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.family)
			wrapped := fmt.Errorf("decoding work: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.family)
		})
	}
	assert.NotErrorIs(t, &MissingFieldError{Name: "DOI"}, ErrRoute)
	assert.NotErrorIs(t, &ConfigError{}, ErrDecode)
}

func TestWithFieldPrefix(t *testing.T) {
	err := WithFieldPrefix(&MissingFieldError{Name: "name"}, "author[2].affiliation[0]")
	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "author[2].affiliation[0].name", missing.Name)

	err = WithFieldPrefix(&InvalidTypeError{Name: "[3]"}, "title")
	var invalid *InvalidTypeError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "title[3]", invalid.Name)

	other := errors.New("boom")
	assert.Same(t, other, WithFieldPrefix(other, "x"))
}
