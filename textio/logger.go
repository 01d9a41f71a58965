package textio

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/reeveci/fwdlist/exe"
)

const (
	LogLevelEnv = "FWDLIST_LOG_LEVEL"
	LogJSONEnv  = "FWDLIST_LOG_JSON"
)

// DefaultLogger builds the logger used when none is configured. Logging is
// off unless FWDLIST_LOG_LEVEL names an hclog level.
func DefaultLogger() hclog.Logger {
	level := hclog.LevelFromString(exe.GetEnvDef(LogLevelEnv, "off"))
	if level == hclog.Off || level == hclog.NoLevel {
		return hclog.NewNullLogger()
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "fwdlist",
		Level:      level,
		Output:     os.Stderr,
		JSONFormat: exe.GetBoolEnvDef(LogJSONEnv, false),
	})
}
