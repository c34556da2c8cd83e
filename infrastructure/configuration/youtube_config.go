package configuration

import (
	"encoding/json"
	"os"
	"strings"
)

// YouTubeConfig represents the resolved YouTube API configuration. API-key
// mode is the default; OAuth fields enable authenticated mode when present.
type YouTubeConfig struct {
	APIKey       string `mapstructure:"api_key"`
	ChannelID    string `mapstructure:"channel_id"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
	AccessToken  string `mapstructure:"access_token"`
	RefreshToken string `mapstructure:"refresh_token"`
}

// GetYouTubeConfig returns YouTube configuration from the JSON config with
// environment variable fallback. Missing credentials are not an error here;
// the client constructor decides what mode (or mock fallback) applies.
func GetYouTubeConfig() (*YouTubeConfig, error) {
	config := &YouTubeConfig{
		APIKey:       getConfigValue(C.YouTube.APIKey, "YOUTUBE_API_KEY", ""),
		ChannelID:    getConfigValue(C.YouTube.ChannelID, "YOUTUBE_CHANNEL_ID", ""),
		ClientID:     getConfigValue(C.YouTube.ClientID, "YOUTUBE_CLIENT_ID", ""),
		ClientSecret: getConfigValue(C.YouTube.ClientSecret, "YOUTUBE_CLIENT_SECRET", ""),
		RedirectURL:  getConfigValue(C.YouTube.RedirectURI, "YOUTUBE_REDIRECT_URL", ""),
		AccessToken:  getEnv("YOUTUBE_ACCESS_TOKEN", ""),
		RefreshToken: getEnv("YOUTUBE_REFRESH_TOKEN", ""),
	}

	// Fallback: read token.json produced by a previous OAuth flow.
	if config.AccessToken == "" || config.RefreshToken == "" {
		if data, err := os.ReadFile("token.json"); err == nil {
			var tokenFile struct {
				AccessToken  string `json:"access_token"`
				RefreshToken string `json:"refresh_token"`
			}
			if jsonErr := json.Unmarshal(data, &tokenFile); jsonErr == nil {
				if config.AccessToken == "" {
					config.AccessToken = tokenFile.AccessToken
				}
				if config.RefreshToken == "" {
					config.RefreshToken = tokenFile.RefreshToken
				}
			}
		}
	}

	return config, nil
}

// getConfigValue gets value from environment first, then config, then default.
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
