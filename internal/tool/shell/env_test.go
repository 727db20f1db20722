package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	content := `# database
DB_CONNECTION=mysql
DB_DATABASE=shop

DB_PASSWORD="secret12"
APP_NAME='Laravel'
EMPTY=
`
	env, err := ParseEnv(".env", content)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"DB_CONNECTION": "mysql",
		"DB_DATABASE":   "shop",
		"DB_PASSWORD":   "secret12",
		"APP_NAME":      "Laravel",
		"EMPTY":         "",
	}, env)
}

func TestParseEnv_ValueKeepsEquals(t *testing.T) {
	env, err := ParseEnv(".env", "APP_KEY=base64:abc==\n")

	require.NoError(t, err)
	assert.Equal(t, "base64:abc==", env["APP_KEY"])
}

func TestParseEnv_InvalidLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		line    int
	}{
		{"no separator", "DB_DATABASE=shop\nbroken line\n", 2},
		{"empty key", "=value", 1},
		{"space in key", "DB DATABASE=shop", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEnv(".env", tt.content)

			var parseErr *EnvParseError
			require.True(t, errors.As(err, &parseErr), "expected EnvParseError, got %v", err)
			assert.Equal(t, tt.line, parseErr.Line)
			assert.True(t, parseErr.InvalidInput())
		})
	}
}
