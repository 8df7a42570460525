package config

import "os"

// Configuration variables. These aren't user facing and never change game
// rules; they only tune where logs and metrics go when enabled.
var (
	LogFile          = getEnvStr("TERMSNAKE_LOG_FILE", "")
	PrometheusListen = getEnvStr("TERMSNAKE_PROM_LISTEN", ":9000")
)

func getEnvStr(varName string, defaults string) string {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	return val
}
