package world

import "fmt"

// Configuration error codes.
const (
	CodeInvalidWorld       = "INVALID_WORLD"
	CodeNoPlatforms        = "NO_PLATFORMS"
	CodeInvalidPlatform    = "INVALID_PLATFORM"
	CodeCastleOutOfBounds  = "CASTLE_OUT_OF_BOUNDS"
	CodeInvalidTimeLimit   = "INVALID_TIME_LIMIT"
	CodeInvalidPlayerStart = "INVALID_PLAYER_START"
	CodeNoCoinPlatforms    = "NO_COIN_PLATFORMS"
	CodeCoinsUnsatisfiable = "COINS_UNSATISFIABLE"
	CodeInvalidEnemy       = "INVALID_ENEMY"
)

// ConfigurationError reports malformed or inconsistent level data.
// A session never starts from a level that produces one.
type ConfigurationError struct {
	Code    string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func configErr(code, format string, args ...any) error {
	return &ConfigurationError{Code: code, Message: fmt.Sprintf(format, args...)}
}
