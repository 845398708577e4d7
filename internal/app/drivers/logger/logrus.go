package logger

import (
	"os"

	"consultant-discovery/internal/app/config"
	"consultant-discovery/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the access logger used by the gateway request logger middleware.
func NewLogrusLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		logger.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile(driverConfig.Logger.AccessLogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logger.SetOutput(file)
		} else {
			logger.Info("Failed to log to file, using default stderr")
		}
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
