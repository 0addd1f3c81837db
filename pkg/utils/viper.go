package utils

import "github.com/spf13/viper"

func ViperGetIntWithDefault(key string, defaultValue int) int {
	v := viper.GetInt(key)
	if v == 0 {
		return defaultValue
	}
	return v
}

func ViperGetStringWithDefault(key string, defaultValue string) string {
	v := viper.GetString(key)
	if len(v) == 0 {
		return defaultValue
	}
	return v
}

// ViperGetOptionalBool returns nil when key is not set at all
func ViperGetOptionalBool(key string) *bool {
	if !viper.IsSet(key) {
		return nil
	}
	v := viper.GetBool(key)
	return &v
}
