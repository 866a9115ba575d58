package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SHEETDB_URL", "VITE_SHEETDB_URL", "SUCCESS_RESET_DELAY", "CORS_ALLOWED_ORIGINS", "CSRF_KEY"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.SheetDBURL)
	assert.Equal(t, 5*time.Second, cfg.SuccessResetDelay)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, DefaultRateLimitBurst, cfg.RateLimitBurst)
	assert.Zero(t, cfg.HTTPClientTimeout)
	assert.False(t, cfg.CSRFEnabled())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SHEETDB_URL", " https://sheetdb.io/api/v1/abc ")
	t.Setenv("SUCCESS_RESET_DELAY", "2s")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CSRF_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("COOKIE_SECURE", "true")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://sheetdb.io/api/v1/abc", cfg.SheetDBURL)
	assert.Equal(t, 2*time.Second, cfg.SuccessResetDelay)
	assert.InDelta(t, 0.5, cfg.RateLimitRPS, 1e-9)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.CSRFEnabled())
	assert.True(t, cfg.CookieSecure)
}

func TestViteSheetURLFallback(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("vite_sheetdb_url", "https://sheetdb.io/api/v1/legacy")

	assert.Equal(t, "https://sheetdb.io/api/v1/legacy", FromViper(v).SheetDBURL)
}

func TestNonPositiveDurationsFallBack(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("success_reset_delay", "-1s")
	v.Set("session_ttl", "0s")

	cfg := FromViper(v)
	assert.Equal(t, DefaultSuccessResetDelay, cfg.SuccessResetDelay)
	assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
}

func TestBareIntegerDurationsAreSeconds(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("success_reset_delay", "5")
	v.Set("session_ttl", "600")
	v.Set("http_client_timeout", "30")

	cfg := FromViper(v)
	assert.Equal(t, 5*time.Second, cfg.SuccessResetDelay)
	assert.Equal(t, 10*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.HTTPClientTimeout)
}

func TestSubSecondResetDelayFallsBack(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("success_reset_delay", "5ns")

	assert.Equal(t, DefaultSuccessResetDelay, FromViper(v).SuccessResetDelay)
}

func TestTrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "")
	assert.Empty(t, LoadConfig().TrustedProxies)

	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 127.0.0.1")
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, LoadConfig().TrustedProxies)
}
