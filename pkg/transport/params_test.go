package transport

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type visibility int

func (v visibility) String() string {
	if v == 1 {
		return "public"
	}
	return "private"
}

type testParams struct {
	Name        string     `mapstructure:"name"`
	Login       string     `mapstructure:"login"`
	Description *string    `mapstructure:"description"`
	Offset      int        `mapstructure:"offset,omitempty"`
	Public      visibility `mapstructure:"public"`
	Membered    bool       `mapstructure:"include_membered"`
	Note        *string    `mapstructure:"note,omitempty"`
}

func TestEncodeValues(t *testing.T) {
	t.Run("nil pointer omitted", func(t *testing.T) {
		values, err := EncodeValues(testParams{Name: "Team", Login: "team-login"})
		require.NoError(t, err)

		assert.Equal(t, "Team", values.Get("name"))
		assert.Equal(t, "team-login", values.Get("login"))
		_, hasDescription := values["description"]
		assert.False(t, hasDescription)
		_, hasOffset := values["offset"]
		assert.False(t, hasOffset)
	})

	t.Run("enums encode numerically", func(t *testing.T) {
		values, err := EncodeValues(&testParams{Public: 1, Membered: true, Offset: 20})
		require.NoError(t, err)

		assert.Equal(t, "1", values.Get("public"))
		assert.Equal(t, "true", values.Get("include_membered"))
		assert.Equal(t, "20", values.Get("offset"))
	})

	t.Run("pointer values dereferenced", func(t *testing.T) {
		desc := "our team"
		note := ""
		values, err := EncodeValues(testParams{Description: &desc, Note: &note})
		require.NoError(t, err)

		assert.Equal(t, "our team", values.Get("description"))
		// A non-nil pointer to an empty string is an explicit value.
		_, hasNote := values["note"]
		assert.True(t, hasNote)
	})

	t.Run("url.Values copied", func(t *testing.T) {
		in := url.Values{"a": {"1"}}
		values, err := EncodeValues(in)
		require.NoError(t, err)
		values.Set("a", "2")
		assert.Equal(t, "1", in.Get("a"))
	})

	t.Run("nil params", func(t *testing.T) {
		values, err := EncodeValues(nil)
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("map params", func(t *testing.T) {
		values, err := EncodeValues(map[string]any{"raw": 1, "skip": nil})
		require.NoError(t, err)
		assert.Equal(t, "1", values.Get("raw"))
		_, hasSkip := values["skip"]
		assert.False(t, hasSkip)
	})

	t.Run("unsupported kind", func(t *testing.T) {
		_, err := EncodeValues(map[string]any{"list": []string{"a"}})
		assert.Error(t, err)
	})
}
