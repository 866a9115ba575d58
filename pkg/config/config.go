package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration values
type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	// SheetDBURL is the registration sink. Empty is allowed at startup and
	// reported as a configuration error when a visitor submits.
	SheetDBURL        string
	HTTPClientTimeout time.Duration

	SuccessResetDelay time.Duration
	SessionTTL        time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	CSRFKey            string
	CookieSecure       bool
	CORSAllowedOrigins []string

	// TrustedProxies lists proxy addresses or CIDRs whose forwarding headers
	// are believed when resolving the client IP. Empty trusts none.
	TrustedProxies []string
}

// Defaults
const (
	DefaultPort              = "8080"
	DefaultGinMode           = "debug"
	DefaultLogLevel          = "INFO"
	DefaultSuccessResetDelay = 5 * time.Second
	DefaultSessionTTL        = 30 * time.Minute
	DefaultRateLimitRPS      = 1.0
	DefaultRateLimitBurst    = 5
)

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("gin_mode", DefaultGinMode)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("sheetdb_url", "")
	v.SetDefault("vite_sheetdb_url", "")
	v.SetDefault("http_client_timeout", "0s")
	v.SetDefault("success_reset_delay", DefaultSuccessResetDelay.String())
	v.SetDefault("session_ttl", DefaultSessionTTL.String())
	v.SetDefault("rate_limit_rps", DefaultRateLimitRPS)
	v.SetDefault("rate_limit_burst", DefaultRateLimitBurst)
	v.SetDefault("csrf_key", "")
	v.SetDefault("cookie_secure", false)
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("trusted_proxies", "")
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	SetDefaults(v)
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	sheetURL := strings.TrimSpace(v.GetString("sheetdb_url"))
	if sheetURL == "" {
		// Name used by the previous front-end build.
		sheetURL = strings.TrimSpace(v.GetString("vite_sheetdb_url"))
	}

	return &Config{
		Port:               v.GetString("port"),
		GinMode:            v.GetString("gin_mode"),
		LogLevel:           v.GetString("log_level"),
		SheetDBURL:         sheetURL,
		HTTPClientTimeout:  duration(v, "http_client_timeout"),
		SuccessResetDelay:  atLeastSecond(duration(v, "success_reset_delay"), DefaultSuccessResetDelay),
		SessionTTL:         atLeastSecond(duration(v, "session_ttl"), DefaultSessionTTL),
		RateLimitRPS:       v.GetFloat64("rate_limit_rps"),
		RateLimitBurst:     v.GetInt("rate_limit_burst"),
		CSRFKey:            v.GetString("csrf_key"),
		CookieSecure:       v.GetBool("cookie_secure"),
		CORSAllowedOrigins: splitList(v.GetString("cors_allowed_origins")),
		TrustedProxies:     splitList(v.GetString("trusted_proxies")),
	}
}

// CSRFEnabled reports whether form posts are CSRF-protected. gorilla/csrf
// needs a 32-byte key.
func (c *Config) CSRFEnabled() bool {
	return len(c.CSRFKey) == 32
}

// duration reads key as a time.Duration. A bare integer is taken as
// seconds, so SUCCESS_RESET_DELAY=5 means five seconds rather than 5ns.
func duration(v *viper.Viper, key string) time.Duration {
	if n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key))); err == nil {
		return time.Duration(n) * time.Second
	}
	return v.GetDuration(key)
}

// atLeastSecond returns fallback for values under one second.
func atLeastSecond(d, fallback time.Duration) time.Duration {
	if d < time.Second {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
