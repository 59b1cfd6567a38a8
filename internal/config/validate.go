package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// EpochLayout is the date format of word_of_day.epoch.
const EpochLayout = "2006-01-02"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}

	if err := c.WordOfDay.validate(); err != nil {
		return fmt.Errorf("word_of_day: %w", err)
	}

	if c.WordList.RemoteURL != "" {
		if _, err := url.ParseRequestURI(c.WordList.RemoteURL); err != nil {
			return fmt.Errorf("word_list.remote_url: %w", err)
		}
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if !c.Metrics.Disabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (d *DictionaryConfig) validate() error {
	if strings.TrimSpace(d.APIKey) == "" {
		return fmt.Errorf("api_key is required")
	}
	u, err := url.ParseRequestURI(d.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be http or https (got %q)", u.Scheme)
	}
	if d.LookupTimeout < 0 {
		return fmt.Errorf("lookup_timeout must be >= 0 (got %v)", d.LookupTimeout)
	}
	if d.RateLimit < 0 {
		return fmt.Errorf("rate_limit must be >= 0 (got %d)", d.RateLimit)
	}
	return nil
}

func (w *WordOfDayConfig) validate() error {
	tz := strings.TrimSpace(w.Timezone)
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	w.Location = loc

	epoch, err := ParseEpoch(w.EpochRaw, loc)
	if err != nil {
		return fmt.Errorf("epoch: %w", err)
	}
	w.Epoch = epoch

	return nil
}

// ParseEpoch parses a YYYY-MM-DD date as midnight in loc.
func ParseEpoch(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(EpochLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return t, nil
}
