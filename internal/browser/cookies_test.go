package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCookies(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cookies.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadCookiesWrappedFormat(t *testing.T) {
	path := writeCookies(t, `{"cookies": [
		{"name": "auth_token", "value": "a", "domain": ".x.com", "path": "/", "secure": true, "sameSite": "Lax"},
		{"name": "ct0", "value": "b", "domain": ".x.com", "path": "/", "httpOnly": true, "expires": 1893456000}
	]}`)

	cookies, err := LoadCookies(path)
	require.NoError(t, err)
	require.Len(t, cookies, 2)
	assert.Equal(t, "auth_token", cookies[0].Name)
	assert.Equal(t, ".x.com", *cookies[0].Domain)
	assert.True(t, *cookies[0].Secure)
	assert.True(t, *cookies[1].HttpOnly)
}

func TestLoadCookiesBareArray(t *testing.T) {
	path := writeCookies(t, `[
		{"name": "auth_token", "value": "a"},
		{"name": "ct0", "value": "b"}
	]`)

	cookies, err := LoadCookies(path)
	require.NoError(t, err)
	assert.Len(t, cookies, 2)
}

func TestLoadCookiesMissingRequired(t *testing.T) {
	path := writeCookies(t, `{"cookies": [{"name": "ct0", "value": "b"}]}`)

	_, err := LoadCookies(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth_token")
}

func TestLoadCookiesInvalid(t *testing.T) {
	_, err := LoadCookies(writeCookies(t, "not json"))
	assert.Error(t, err)

	_, err = LoadCookies(writeCookies(t, `{"cookies": []}`))
	assert.Error(t, err)

	_, err = LoadCookies(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
