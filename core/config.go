package core

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultBaseURL  = "https://eaccountingapi.vismaonline.com/v2"
	DefaultAuthURL  = "https://identity.vismaonline.com/connect/authorize"
	DefaultTokenURL = "https://identity.vismaonline.com/connect/token"
)

type OAuthConfig struct {
	ClientID     string   `koanf:"client_id"     mapstructure:"client_id"`
	ClientSecret string   `koanf:"client_secret" mapstructure:"client_secret"`
	RedirectURI  string   `koanf:"redirect_uri"  mapstructure:"redirect_uri"`
	Scopes       []string `koanf:"scopes"        mapstructure:"scopes"`
	AuthURL      string   `koanf:"auth_url"      mapstructure:"auth_url"`
	TokenURL     string   `koanf:"token_url"     mapstructure:"token_url"`
}

type Config struct {
	BaseURL        string        `koanf:"base_url"        mapstructure:"base_url"`
	TokenPath      string        `koanf:"token_path"      mapstructure:"token_path"`
	RequestTimeout time.Duration `koanf:"request_timeout" mapstructure:"request_timeout"`
	OAuth          OAuthConfig   `koanf:"oauth"           mapstructure:"oauth"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		OAuth: OAuthConfig{
			AuthURL:  DefaultAuthURL,
			TokenURL: DefaultTokenURL,
		},
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("core: base_url is required")
	}
	return nil
}
