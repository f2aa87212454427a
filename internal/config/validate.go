package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Oracle.Deadline <= 0 {
		return fmt.Errorf("oracle.deadline must be > 0 (got %v)", c.Oracle.Deadline)
	}
	if c.Oracle.MaxRetries < 1 {
		return fmt.Errorf("oracle.max_retries must be >= 1 (got %d)", c.Oracle.MaxRetries)
	}
	if c.DailyWord.MaxAttempts < 1 {
		return fmt.Errorf("daily_word.max_attempts must be >= 1 (got %d)", c.DailyWord.MaxAttempts)
	}
	if c.Server.RateLimitPerMin < 1 {
		return fmt.Errorf("server.rate_limit_per_min must be >= 1 (got %d)", c.Server.RateLimitPerMin)
	}
	return nil
}
