package registry

import (
	"fmt"
)

// Helpers para leer GeneratorConfig.Options dentro de las factories.
// Options viene de YAML, así que las listas llegan como []interface{} y los
// escalares con el tipo que eligió el decoder.

// GetStringConfig extracts a string value from the options map with a default fallback.
// Returns the default value if:
//   - options map is nil
//   - key doesn't exist
//   - value is not a string
//   - value is an empty string
func GetStringConfig(options map[string]interface{}, key, defaultValue string) string {
	if options == nil {
		return defaultValue
	}

	if val, ok := options[key].(string); ok && val != "" {
		return val
	}

	return defaultValue
}

// GetBoolConfig extracts a bool value from the options map with a default fallback.
// Returns the default value if:
//   - options map is nil
//   - key doesn't exist
//   - value is not a bool
func GetBoolConfig(options map[string]interface{}, key string, defaultValue bool) bool {
	if options == nil {
		return defaultValue
	}

	if val, ok := options[key].(bool); ok {
		return val
	}

	return defaultValue
}

// GetSliceConfig extracts a []string slice from the options map with a default fallback.
// Converts []interface{} to []string if necessary.
// Returns the default value if:
//   - options map is nil
//   - key doesn't exist
//   - value cannot be converted to []string
func GetSliceConfig(options map[string]interface{}, key string, defaultValue []string) []string {
	if options == nil {
		return defaultValue
	}

	val, exists := options[key]
	if !exists {
		return defaultValue
	}

	if slice, ok := val.([]string); ok {
		return slice
	}

	// YAML sequences decode as []interface{}
	if interfaceSlice, ok := val.([]interface{}); ok {
		stringSlice := make([]string, 0, len(interfaceSlice))
		for _, item := range interfaceSlice {
			str, ok := item.(string)
			if !ok {
				return defaultValue
			}
			stringSlice = append(stringSlice, str)
		}
		return stringSlice
	}

	return defaultValue
}

// ValidateEnum validates that a string value is one of the allowed options.
// Returns an error if the value is not in the allowed list.
func ValidateEnum(fieldName, value string, allowed []string) error {
	for _, option := range allowed {
		if value == option {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %v, got %s", fieldName, allowed, value)
}
