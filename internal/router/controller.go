package router

import (
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	"github.com/wishpay/backend/internal/auth"
	"github.com/wishpay/backend/internal/config"
	v1 "github.com/wishpay/backend/internal/controllers/v1"
	"github.com/wishpay/backend/internal/events"
	"github.com/wishpay/backend/internal/ledger"
	"github.com/wishpay/backend/internal/lock"
	"github.com/wishpay/backend/internal/models"
)

// NewController wires the services for the handlers on top of models.DB.
// The returned function closes all connections to external services.
func NewController(cfg config.Config) (v1.Controller, func(), error) {
	var closers []func() error
	cleanup := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Warn().Err(err).Msg("closing connection failed")
			}
		}
	}

	var locker lock.Locker = lock.NewLocal()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		closers = append(closers, client.Close)
		locker = lock.NewRedis(client)
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis for user locks")
	}

	var publisher events.Publisher = events.Log{Logger: log.Logger}
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := events.NewKafka(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			cleanup()
			return v1.Controller{}, nil, err
		}
		closers = append(closers, kafka.Close)
		publisher = events.Multi{publisher, kafka}
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("publishing events to kafka")
	}

	if cfg.EventsFilter != "" {
		publisher = events.Filter{
			Next:     publisher,
			Patterns: events.ParsePatterns(cfg.EventsFilter),
		}
	}

	formatter, err := events.NewFormatter(cfg.Currency, cfg.Locale)
	if err != nil {
		cleanup()
		return v1.Controller{}, nil, err
	}

	issuer, err := auth.NewIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)
	if err != nil {
		cleanup()
		return v1.Controller{}, nil, err
	}

	co := v1.Controller{
		Ledger: ledger.New(models.DB,
			ledger.WithLocker(locker),
			ledger.WithPublisher(publisher),
			ledger.WithFormatter(formatter),
		),
		Auth: auth.NewService(models.DB, issuer),
	}

	return co, cleanup, nil
}
