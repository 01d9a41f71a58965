package exe

import (
	"os"
	"strconv"
	"strings"
)

func GetEnvDef(name, def string) (result string) {
	result = os.Getenv(name)
	if result == "" {
		result = def
	}
	return
}

func GetBoolEnvDef(name string, def bool) (result bool) {
	value := strings.ToLower(os.Getenv(name))
	if value == "" {
		return def
	}
	result, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return
}
