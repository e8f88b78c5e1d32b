package config

import (
    "fmt"
    "os"
    "strings"
    "time"

    "github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
    Addr      string
    LogLevel  string
    LogFormat string
    Database  DatabaseConfig
    DevSeed   bool
    ARAP      ARAPConfig
}

// DatabaseConfig holds postgres settings. An empty URL selects the in-memory
// store.
type DatabaseConfig struct {
    URL        string
    Migrations string
}

// ARAPConfig tunes the optimistic-concurrency retry loop.
type ARAPConfig struct {
    Retries int
    Backoff time.Duration
}

// Load reads configuration from an optional file and the environment.
// Env overrides use the DAFTAR_ prefix, e.g. DAFTAR_DATABASE_URL.
func Load() (Config, error) {
    v := viper.New()

    v.SetDefault("addr", ":8080")
    v.SetDefault("log.level", "info")
    v.SetDefault("log.format", "json")
    v.SetDefault("database.url", "")
    v.SetDefault("database.migrations", "db/migrations")
    v.SetDefault("dev.seed", false)
    v.SetDefault("arap.retries", 5)
    v.SetDefault("arap.backoff", 10*time.Millisecond)

    v.SetConfigType("yaml")
    if path := os.Getenv("DAFTAR_CONFIG"); path != "" {
        v.SetConfigFile(path)
        if err := v.ReadInConfig(); err != nil {
            return Config{}, fmt.Errorf("read config %s: %w", path, err)
        }
    } else {
        v.AddConfigPath(".")
        v.SetConfigName("daftar")
        _ = v.ReadInConfig()
    }

    v.SetEnvPrefix("DAFTAR")
    v.AutomaticEnv()
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

    return Config{
        Addr:      v.GetString("addr"),
        LogLevel:  v.GetString("log.level"),
        LogFormat: v.GetString("log.format"),
        Database: DatabaseConfig{
            URL:        v.GetString("database.url"),
            Migrations: v.GetString("database.migrations"),
        },
        DevSeed: v.GetBool("dev.seed"),
        ARAP: ARAPConfig{
            Retries: v.GetInt("arap.retries"),
            Backoff: v.GetDuration("arap.backoff"),
        },
    }, nil
}
