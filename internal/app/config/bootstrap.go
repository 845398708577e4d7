package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	AccessLogger   *logrus.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// AppStop is called during Shutdown to wait for in-flight consultant queries
	AppStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.AppStop != nil {
		b.AppStop()
		log.Println("Successfully stopped discovery client")
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	err := b.Logger.Sync()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
