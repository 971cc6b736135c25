// Package config loads process configuration from the environment once at
// startup. Engine constants are handed to the engine as an immutable value;
// nothing deeper in the stack reads environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/supperclub-dev/supperclub/internal/engine"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	Domain      string `env:"DOMAIN"`

	// Reputation & referral constants
	DefaultTrustScore    int `env:"DEFAULT_TRUST_SCORE" envDefault:"100"`
	MinTrustScoreToHost  int `env:"MIN_TRUST_SCORE_TO_HOST" envDefault:"50"`
	FlakePenalty         int `env:"FLAKE_PENALTY" envDefault:"25"`
	SuccessfulEventBonus int `env:"SUCCESSFUL_EVENT_BONUS" envDefault:"10"`
	ReferralBonusPoints  int `env:"REFERRAL_BONUS_POINTS" envDefault:"100"`
	MaxReferralsPerUser  int `env:"MAX_REFERRALS_PER_USER" envDefault:"5"`

	// Event constants
	MinDaysBeforeEventToConfirm int `env:"MIN_DAYS_BEFORE_EVENT_TO_CONFIRM" envDefault:"3"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Engine returns the constants consulted by engine operations.
func (c Config) Engine() engine.Config {
	return engine.Config{
		DefaultTrustScore:           c.DefaultTrustScore,
		MinTrustScoreToHost:         c.MinTrustScoreToHost,
		FlakePenalty:                c.FlakePenalty,
		SuccessfulEventBonus:        c.SuccessfulEventBonus,
		ReferralBonusPoints:         c.ReferralBonusPoints,
		MaxReferralsPerUser:         c.MaxReferralsPerUser,
		MinDaysBeforeEventToConfirm: c.MinDaysBeforeEventToConfirm,
	}
}
