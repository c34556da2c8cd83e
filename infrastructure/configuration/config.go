package configuration

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"portfolio-site/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	YouTube     YouTube     `json:"youtube"`
	Cache       Cache       `json:"cache"`
	RedisClient RedisClient `json:"redisClient"`
	Database    Database    `json:"database"`
	Data        Data        `json:"data"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
	StaticDir string `json:"staticDir"`
}

type YouTube struct {
	APIKey       string `json:"apiKey"`
	ChannelID    string `json:"channelId"`
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	RedirectURI  string `json:"redirectURI"`
}

// Cache controls the Fetch Orchestrator's TTL and which backend the key/value
// store persists to: "memory", "file", "redis" or "postgres".
type Cache struct {
	TTLHours  int    `json:"ttlHours"`
	Namespace string `json:"namespace"`
	Backend   string `json:"backend"`
	FilePath  string `json:"filePath"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type Database struct {
	Psql Db `json:"psql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// Data locates the JSON content files (portfolio lists and the generated
// YouTube payload).
type Data struct {
	Dir          string `json:"dir"`
	SiteDataFile string `json:"siteDataFile"`
}

var C Config

func init() {
	LoadConfig()
	initApp(&C)
	initCache(&C)
	initData(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10001
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}
	if C.App.StaticDir == "" {
		C.App.StaticDir = "public"
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; admin endpoints will reject every token. Provide SECRET_KEY via environment.")
	}
}

func initCache(C *Config) {
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		C.Cache.Backend = v
	}
	if C.Cache.Backend == "" {
		C.Cache.Backend = "file"
	}
	if C.Cache.TTLHours == 0 {
		C.Cache.TTLHours = 24
	}
	if C.Cache.Namespace == "" {
		C.Cache.Namespace = "yt_cache"
	}
	if C.Cache.FilePath == "" {
		C.Cache.FilePath = "data/cache.json"
	}
	if C.RedisClient.Host == "" {
		C.RedisClient.Host = os.Getenv("REDIS_HOST")
	}
	if C.RedisClient.Port == "" {
		C.RedisClient.Port = os.Getenv("REDIS_PORT")
	}
	if C.Database.Psql.Name == "" {
		C.Database.Psql.Name = os.Getenv("DB_NAME")
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = os.Getenv("DB_HOST")
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = os.Getenv("DB_PORT")
	}
	if C.Database.Psql.User == "" {
		C.Database.Psql.User = os.Getenv("DB_USER")
	}
	if C.Database.Psql.Password == "" {
		C.Database.Psql.Password = os.Getenv("DB_PASSWORD")
	}
}

func initData(C *Config) {
	if v := os.Getenv("DATA_DIR"); v != "" {
		C.Data.Dir = v
	}
	if C.Data.Dir == "" {
		C.Data.Dir = "data"
	}
	if C.Data.SiteDataFile == "" {
		C.Data.SiteDataFile = "youtubeData.json"
	}
}

// CacheTTL returns the configured cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLHours) * time.Hour
}
