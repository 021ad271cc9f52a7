package config

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Timeout: 120000, // 2 minutes, matching the library default
		Headers: nil,
		Output:  "console",
	}
}
