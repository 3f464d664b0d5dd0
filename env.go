package toolbox

import "os"

// ReadEnv Read an environment variable or a default value
func ReadEnv(envName, defaultValue string) string {
	value, ok := os.LookupEnv(envName)
	if !ok {
		value = defaultValue
	}
	return value
}

// ReadEnvInt64 Read an integer environment variable or a default value if it is not set.
// A value that is not a valid 64 bit integer result in `ErrInvalidFormat`
func ReadEnvInt64(envName string, defaultValue int64) (int64, error) {
	value, ok := os.LookupEnv(envName)
	if !ok {
		return defaultValue, nil
	}
	return ParseInt64Token(value)
}
