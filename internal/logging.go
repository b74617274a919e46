package internal

import (
	"os"

	"github.com/op/go-logging"
)

var Log = logging.MustGetLogger("pat")

const logFormat = "%{color}%{time:15:04:05} %{level:.7s}%{color:reset} %{message}"

func InitLogging(level int) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.NewBackendFormatter(backend, logging.MustStringFormatter(logFormat))
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(level), "")
	logging.SetBackend(leveled)
}
