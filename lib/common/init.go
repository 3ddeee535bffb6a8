package common

import (
	logging "github.com/inconshreveable/log15"
)

var log logging.Logger = logging.New("module", "common")

func init() {
	if v := GetENVValue("AGORA_LOG_LEVEL", ""); v != "" {
		if lvl, err := logging.LvlFromString(v); err == nil {
			DefaultLogLevel = lvl
		}
	}

	SetLogging(DefaultLogLevel, DefaultLogHandler)
}

func SetLogging(level logging.Lvl, handler logging.Handler) {
	log.SetHandler(logging.LvlFilterHandler(level, handler))
}
