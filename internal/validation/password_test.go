package validation

import (
	"strings"
	"testing"

	"gochurch/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword_Rules(t *testing.T) {
	t.Parallel()
	cases := map[string]struct {
		password string
		wantMsg  string
	}{
		"accepts strong password":   {"Psalm23Shepherd!", ""},
		"accepts twelve characters": {"Grace4Peace!", ""},
		"accepts 128 characters":    {"G" + strings.Repeat("r", 125) + "7?", ""},
		"accepts non-ascii letters": {"ÉglisePasswd9#", ""},
		"rejects short":             {"Amen1!", "at least 12 characters"},
		"rejects 129 characters":    {"G" + strings.Repeat("r", 126) + "7?", "must not exceed 128"},
		"rejects missing upper":     {"fellowship42!", "uppercase"},
		"rejects missing lower":     {"FELLOWSHIP42!", "lowercase"},
		"rejects missing digit":     {"Fellowship!!", "digit"},
		"rejects missing special":   {"Fellowship420", "special character"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePassword(tc.password)
			if tc.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestValidateUsername_Rules(t *testing.T) {
	t.Parallel()
	cases := map[string]struct {
		username string
		ok       bool
	}{
		"plain":               {"ruth", true},
		"with separators":     {"deacon_mary-2", true},
		"thirty characters":   {strings.Repeat("a", 30), true},
		"too short":           {"jo", false},
		"too long":            {strings.Repeat("a", 31), false},
		"contains at sign":    {"choir@front", false},
		"contains space":      {"usher team", false},
		"leading hyphen":      {"-elder", false},
		"trailing underscore": {"elder_", false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := ValidateUsername(tc.username)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStruct_UsernameTag(t *testing.T) {
	t.Parallel()
	type signup struct {
		Username string `json:"username" validate:"required,username"`
	}

	assert.NoError(t, Struct(signup{Username: "pastor_ann"}))

	err := Struct(signup{Username: "_x"})
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeValidation))
	assert.Contains(t, err.Error(), "username must be")
}
