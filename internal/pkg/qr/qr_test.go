package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, "employee:42", Encode("42"))
	assert.Equal(t, "employee:a3f1c2d4", Encode("a3f1c2d4"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantID  string
		wantErr bool
	}{
		{name: "plain payload", payload: "employee:42", wantID: "42"},
		{name: "uuid id", payload: "employee:550e8400-e29b-41d4-a716-446655440000", wantID: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "uppercase prefix", payload: "EMPLOYEE:42", wantID: "42"},
		{name: "mixed case prefix", payload: "Employee:42", wantID: "42"},
		{name: "space after colon", payload: "employee: 42", wantID: "42"},
		{name: "surrounding whitespace", payload: "  employee:42  ", wantID: "42"},
		{name: "empty payload", payload: "", wantErr: true},
		{name: "missing prefix", payload: "42", wantErr: true},
		{name: "wrong prefix", payload: "badge:42", wantErr: true},
		{name: "missing id", payload: "employee:", wantErr: true},
		{name: "id with invalid characters", payload: "employee:42;DROP TABLE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.payload)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPayload)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	id, err := Parse(Encode("e7b2"))
	assert.NoError(t, err)
	assert.Equal(t, "e7b2", id)
}
