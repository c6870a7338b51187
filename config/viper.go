package config

import (
	"time"

	"github.com/spf13/viper"
)

// ViperConfig reads the global viper registry.
type ViperConfig struct{}

func (v *ViperConfig) Set(key string, value interface{}) {
	viper.Set(key, value)
}

func (v *ViperConfig) IsSet(key string) bool {
	return viper.IsSet(key)
}

func (v *ViperConfig) Get(key string) interface{} {
	return viper.Get(key)
}

func (v *ViperConfig) GetInt(key string) int {
	return viper.GetInt(key)
}

func (v *ViperConfig) GetString(key string) string {
	return viper.GetString(key)
}

func (v *ViperConfig) GetBool(key string) bool {
	return viper.GetBool(key)
}

func (v *ViperConfig) GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func (v *ViperConfig) GetBytes(key string) []byte {
	s := viper.GetString(key)
	if s == "" {
		return nil
	}
	return []byte(s)
}
