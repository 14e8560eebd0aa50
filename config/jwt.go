package config

type Jwt struct {
	Secret      string `json:"secret" yaml:"secret"`
	ExpiresTime int    `json:"expires_time" yaml:"expires_time"` // seconds
}
