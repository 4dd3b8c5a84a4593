package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const EnvVar = "ALPHALAB_ENV"

type Secrets struct {
	Db         DbSecrets `json:"db"`
	Backtester struct {
		Endpoint string `json:"endpoint"`
		ApiKey   string `json:"apiKey"`
	} `json:"backtester"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

func (t DbSecrets) IsSet() bool {
	return t.Host != ""
}

func secretsFile() string {
	switch strings.ToLower(os.Getenv(EnvVar)) {
	case "dev":
		return "secrets-dev.json"
	case "test":
		return "secrets-test.json"
	}
	return "secrets.json"
}

// LoadSecrets reads the secrets file for the current ALPHALAB_ENV. a
// missing file is not an error: file-backed runs need no secrets
func LoadSecrets() (*Secrets, error) {
	return LoadSecretsFile(secretsFile())
}

func LoadSecretsFile(path string) (*Secrets, error) {
	f, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Secrets{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &secrets, nil
}
