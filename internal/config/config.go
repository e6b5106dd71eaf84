package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	ServiceKey     = "service_key"
	ListenAddr     = "listen_addr"
	BatchSize      = "batch_size"
	TimeoutSeconds = "timeout_seconds"
	DebugMode      = "debug"
)

// InitConfig initializes the configuration
func InitConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	viper.AddConfigPath(home)
	viper.SetConfigType("yaml")
	viper.SetConfigName(".bizstat")

	viper.SetDefault(ListenAddr, ":8080")
	viper.SetDefault(BatchSize, 100)
	viper.SetDefault(TimeoutSeconds, 10)

	// The service key issued by data.go.kr comes from the environment
	// unless stored in the config file via `bizstat config set-key`.
	_ = viper.BindEnv(ServiceKey, "NTS_SERVICE_KEY")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		// fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// Config is an explicit snapshot of the settings the rest of the
// program depends on. It is built once and injected into constructors;
// nothing outside this package reads ambient configuration state.
type Config struct {
	ServiceKey     string
	ListenAddr     string
	BatchSize      int
	RequestTimeout time.Duration
	DebugMode      bool
}

// Load snapshots the current viper state into a Config.
func Load() Config {
	return Config{
		ServiceKey:     viper.GetString(ServiceKey),
		ListenAddr:     viper.GetString(ListenAddr),
		BatchSize:      viper.GetInt(BatchSize),
		RequestTimeout: time.Duration(viper.GetInt(TimeoutSeconds)) * time.Second,
		DebugMode:      viper.GetBool(DebugMode),
	}
}

// SetServiceKey stores the service key in the configuration file
func SetServiceKey(key string) error {
	viper.Set(ServiceKey, key)
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(home, ".bizstat.yaml")
	return viper.WriteConfigAs(configPath)
}

// GetServiceKey returns the service key from the configuration
func GetServiceKey() string {
	return viper.GetString(ServiceKey)
}
