package ident

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUser(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantID    int64
		wantLogin bool
		wantErr   bool
	}{
		{
			name:      "login",
			input:     "hashicorp",
			want:      "hashicorp",
			wantLogin: true,
		},
		{
			name:   "numeric id",
			input:  "42",
			want:   "42",
			wantID: 42,
		},
		{
			name:      "surrounding whitespace trimmed",
			input:     "  someuser ",
			want:      "someuser",
			wantLogin: true,
		},
		{
			name:      "leading zero only is a login",
			input:     "0",
			want:      "0",
			wantLogin: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "contains slash",
			input:   "owner/repo",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseUser(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())

			_, isLogin := u.Login()
			assert.Equal(t, tt.wantLogin, isLogin)

			if tt.wantID != 0 {
				id, ok := u.ID()
				assert.True(t, ok)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestUser_PathSegment(t *testing.T) {
	assert.Equal(t, "some%20user", UserByLogin("some user").PathSegment())
	assert.Equal(t, "7", UserByID(7).PathSegment())
	assert.Equal(t, "", User{}.PathSegment())
}

func TestUser_Equal(t *testing.T) {
	assert.True(t, UserByID(1).Equal(UserByID(1)))
	assert.False(t, UserByID(1).Equal(UserByLogin("1")))
	assert.True(t, User{}.IsZero())
}

func TestMustParseUser(t *testing.T) {
	assert.NotPanics(t, func() {
		MustParseUser("hashicorp")
	})
	assert.Panics(t, func() {
		MustParseUser("")
	})
}

func TestUser_JSON(t *testing.T) {
	t.Run("numeric round trip", func(t *testing.T) {
		data, err := json.Marshal(UserByID(12))
		require.NoError(t, err)
		assert.Equal(t, "12", string(data))

		var u User
		require.NoError(t, json.Unmarshal(data, &u))
		assert.True(t, u.Equal(UserByID(12)))
	})

	t.Run("login round trip", func(t *testing.T) {
		data, err := json.Marshal(UserByLogin("team"))
		require.NoError(t, err)
		assert.Equal(t, `"team"`, string(data))

		var u User
		require.NoError(t, json.Unmarshal(data, &u))
		assert.True(t, u.Equal(UserByLogin("team")))
	})

	t.Run("null", func(t *testing.T) {
		var u User
		require.NoError(t, json.Unmarshal([]byte("null"), &u))
		assert.True(t, u.IsZero())
	})

	t.Run("invalid type", func(t *testing.T) {
		var u User
		assert.Error(t, json.Unmarshal([]byte("true"), &u))
	})
}
