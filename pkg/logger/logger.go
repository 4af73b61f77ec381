// Package logger настраивает глобальный logrus-логгер сервера Lurhook.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - глобальный экземпляр логгера для всего приложения.
var Log *logrus.Logger

// Init инициализирует глобальный логгер. Вызывается один раз при
// старте сервера (cmd/server), до первого лога.
func Init() {
	Log = logrus.New()

	// Уровень логирования берется из окружения. По умолчанию "info";
	// для разбора реплеев и дуэлей полезен "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// Форматтер: "json" для продакшена и сбора логов,
	// текст с цветами - для локальной разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}
