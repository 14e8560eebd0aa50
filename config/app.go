package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// ReferralSalt seeds the hashid encoder that turns client ids into
	// public referral codes. Changing it invalidates every issued code.
	ReferralSalt string `json:"referral_salt" yaml:"referral_salt"`
}

// ReferralSalt is a distinct type so wire can provide it.
type ReferralSalt string

func ProvideReferralSalt(c *Config) ReferralSalt {
	return ReferralSalt(c.App.ReferralSalt)
}
