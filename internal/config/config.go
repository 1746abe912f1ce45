package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Firebase
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	// Firebase holds the credentials for the document store connection.
	// Either the three service-account fields or a credentials file path
	// must be configured; startup fails loudly when neither is.
	Firebase struct {
		ProjectID       string
		ClientEmail     string
		PrivateKey      string
		CredentialsFile string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("firebase_project_id", "")
	v.SetDefault("firebase_client_email", "")
	v.SetDefault("firebase_private_key", "")
	v.SetDefault("google_application_credentials", "")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Firebase: Firebase{
			ProjectID:       v.GetString("FIREBASE_PROJECT_ID"),
			ClientEmail:     v.GetString("FIREBASE_CLIENT_EMAIL"),
			PrivateKey:      v.GetString("FIREBASE_PRIVATE_KEY"),
			CredentialsFile: v.GetString("GOOGLE_APPLICATION_CREDENTIALS"),
		},
	}
}

// HasCredentials reports whether any usable credential source is set.
func (f Firebase) HasCredentials() bool {
	if f.CredentialsFile != "" && f.ProjectID != "" {
		return true
	}
	return f.ProjectID != "" && f.ClientEmail != "" && f.PrivateKey != ""
}

// MissingCredentials names the unset credential variables, mirroring how
// validation errors elsewhere report every missing field at once.
func (f Firebase) MissingCredentials() []string {
	var missing []string
	if f.ProjectID == "" {
		missing = append(missing, "FIREBASE_PROJECT_ID")
	}
	if f.CredentialsFile != "" {
		return missing
	}
	if f.ClientEmail == "" {
		missing = append(missing, "FIREBASE_CLIENT_EMAIL")
	}
	if f.PrivateKey == "" {
		missing = append(missing, "FIREBASE_PRIVATE_KEY")
	}
	return missing
}
