package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSchema = Schema{
	{Name: "name", Kind: KindString, Required: true},
	{Name: "price", Kind: KindNumber, Required: true},
	{Name: "image", Kind: KindString},
}

func TestSchemaValidate(t *testing.T) {
	cases := []struct {
		name    string
		doc     map[string]any
		wantErr string
	}{
		{"valid", map[string]any{"name": "Pencil", "price": 10.0}, ""},
		{"valid with optional", map[string]any{"name": "Pencil", "price": 10.0, "image": "a.jpg"}, ""},
		{"extras pass through", map[string]any{"name": "Pencil", "price": 10.0, "brand": "Faber"}, ""},
		{"missing required", map[string]any{"price": 10.0}, "name is required"},
		{"null required", map[string]any{"name": nil, "price": 10.0}, "name is required"},
		{"empty required string", map[string]any{"name": "", "price": 10.0}, "name is required"},
		{"wrong kind string", map[string]any{"name": 7.0, "price": 10.0}, "name must be a string"},
		{"wrong kind number", map[string]any{"name": "Pencil", "price": "ten"}, "price must be a number"},
		{"optional absent", map[string]any{"name": "Pencil", "price": 10.0}, ""},
		{"optional wrong kind", map[string]any{"name": "Pencil", "price": 10.0, "image": 1.0}, "image must be a string"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := testSchema.Validate(tc.doc)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.wantErr)
			}
		})
	}
}

func TestPasswordMatches(t *testing.T) {
	assert.True(t, passwordMatches("plain123", "plain123"))
	assert.False(t, passwordMatches("plain123", "other"))

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, passwordMatches(string(hash), "s3cret"))
	assert.False(t, passwordMatches(string(hash), "wrong"))
	// A stored hash never matches its own literal text.
	assert.False(t, passwordMatches(string(hash), string(hash)))
}
