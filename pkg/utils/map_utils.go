package utils

import (
	"github.com/spf13/cast"
)

// GetMap returns the nested object stored under key. JSON decoders yield
// map[string]interface{} while YAML ones may yield map[interface{}]interface{}.
func GetMap(m map[string]interface{}, key string) (map[string]interface{}, bool) {
	switch v := m[key].(type) {
	case map[string]interface{}:
		return v, true
	case map[interface{}]interface{}:
		result := make(map[string]interface{}, len(v))
		for _, k := range GetKeysFromInterfaceMap(v) {
			result[cast.ToString(k)] = v[k]
		}
		return result, true
	}
	return nil, false
}

// GetString returns the value under key as a string, empty when it is missing or nil.
func GetString(m map[string]interface{}, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	return cast.ToString(v)
}

// GetFloat64 returns nil when key is missing or not numeric.
func GetFloat64(m map[string]interface{}, key string) *float64 {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil
	}
	return &f
}

func GetKeysFromInterfaceMap(v map[interface{}]interface{}) []interface{} {
	keys := make([]interface{}, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}

	return keys
}
