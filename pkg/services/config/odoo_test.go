package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/odoo-reporter/pkg/store/odoo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, url, db, uid, password, profile string) {
	t.Helper()
	t.Setenv(envURL, url)
	t.Setenv(envDatabase, db)
	t.Setenv(envUserID, uid)
	t.Setenv(envPassword, password)
	t.Setenv(envProfile, profile)
}

func TestLoadOdoo_FromEnvironment(t *testing.T) {
	setEnv(t, "https://odoo.example.com/jsonrpc", "prod", "2", "secret", "")

	cfg, err := LoadOdoo()

	require.NoError(t, err)
	assert.Equal(t, &odoo.Config{
		URL:      "https://odoo.example.com/jsonrpc",
		Database: "prod",
		UserID:   2,
		Password: "secret",
	}, cfg)
}

func TestLoadOdoo_MissingVariables(t *testing.T) {
	setEnv(t, "", "prod", "", "secret", "")

	cfg, err := LoadOdoo()

	require.Nil(t, cfg)
	var missing *MissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{envURL, envUserID}, missing.Vars)
	assert.Contains(t, err.Error(), "ODOO_URL")
}

func TestLoadOdoo_NonNumericUserID(t *testing.T) {
	setEnv(t, "https://odoo.example.com/jsonrpc", "prod", "admin", "secret", "")

	cfg, err := LoadOdoo()

	require.Nil(t, cfg)
	assert.ErrorContains(t, err, "ODOO_UID must be numeric")
}

func TestLoadOdoo_ProfileFileFillsGaps(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "odoo.cfg")
	require.NoError(t, os.WriteFile(profile, []byte(`[odoo]
url = https://profile.example.com/jsonrpc
db = staging
uid = 7
password = from-profile
`), 0o600))

	// Environment keeps precedence for the values it provides.
	setEnv(t, "", "prod", "", "", profile)

	cfg, err := LoadOdoo()

	require.NoError(t, err)
	assert.Equal(t, &odoo.Config{
		URL:      "https://profile.example.com/jsonrpc",
		Database: "prod",
		UserID:   7,
		Password: "from-profile",
	}, cfg)
}

func TestLoadOdoo_UnreadableProfile(t *testing.T) {
	setEnv(t, "", "", "", "", filepath.Join(t.TempDir(), "missing.cfg"))

	cfg, err := LoadOdoo()

	require.Nil(t, cfg)
	assert.ErrorContains(t, err, "failed to read odoo profile")
}
