package config

// Warnings returns non-fatal configuration issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set - the ingest API accepts unauthenticated requests")
	}

	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if c.DiscordToken == ExampleDiscordToken {
		warnings = append(warnings, "DISCORD_TOKEN appears to be using the example value - notifications will fail")
	}

	if (c.DiscordToken == "") != (c.DiscordChannelID == "") {
		warnings = append(warnings, "DISCORD_TOKEN and DISCORD_CHANNEL_ID must both be set - notifications are disabled")
	}

	return warnings
}
