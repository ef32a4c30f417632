package env

import (
	"os"

	"github.com/spf13/viper"
)

// PodName example: k8ssta-gallery-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName is the env_name config key, ENV_NAME when unset
func EnvName() string {
	return lookup("env_name", "ENV_NAME")
}

// AppName is the app_name config key, APP_NAME when unset
func AppName() string {
	return lookup("app_name", "APP_NAME")
}

func lookup(key, envKey string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return os.Getenv(envKey)
}
