package config

import "os"

func IsDebug() bool {
	return os.Getenv("DAYBOOK_DEBUG") == "1"
}
