package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/de-tools/odoo-reporter/pkg/store/odoo"
	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

// Environment variables read by LoadOdoo. ODOO_CONFIG may additionally point
// at an ini profile file supplying any variables the environment omits; the
// environment always wins.
const (
	envURL      = "ODOO_URL"
	envDatabase = "ODOO_DB"
	envUserID   = "ODOO_UID"
	envPassword = "ODOO_PASSWORD"
	envProfile  = "ODOO_CONFIG"

	profileSection = "odoo"
)

// MissingError reports required configuration that could not be resolved
// from any source. Construction of the reporter must not proceed past it.
type MissingError struct {
	Vars []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf(
		"missing Odoo configuration: ensure %s are set",
		strings.Join(e.Vars, ", "),
	)
}

// LoadOdoo resolves the backend credentials, failing fast when any value is
// absent or the user id is not numeric.
func LoadOdoo() (*odoo.Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	values := map[string]string{
		envURL:      v.GetString(envURL),
		envDatabase: v.GetString(envDatabase),
		envUserID:   v.GetString(envUserID),
		envPassword: v.GetString(envPassword),
	}

	if path := v.GetString(envProfile); path != "" {
		if err := fillFromProfile(path, values); err != nil {
			return nil, fmt.Errorf("failed to read odoo profile: %w", err)
		}
	}

	var missing []string
	for _, name := range []string{envURL, envDatabase, envUserID, envPassword} {
		if values[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingError{Vars: missing}
	}

	uid, err := strconv.Atoi(values[envUserID])
	if err != nil {
		return nil, fmt.Errorf("%s must be numeric: %w", envUserID, err)
	}

	return &odoo.Config{
		URL:      values[envURL],
		Database: values[envDatabase],
		UserID:   uid,
		Password: values[envPassword],
	}, nil
}

// fillFromProfile merges values from the [odoo] section of an ini profile
// file into any keys still empty.
func fillFromProfile(path string, values map[string]string) error {
	cfg, err := ini.Load(path)
	if err != nil {
		return err
	}

	section := cfg.Section(profileSection)
	keys := map[string]string{
		envURL:      "url",
		envDatabase: "db",
		envUserID:   "uid",
		envPassword: "password",
	}
	for env, key := range keys {
		if values[env] == "" {
			values[env] = section.Key(key).String()
		}
	}
	return nil
}
