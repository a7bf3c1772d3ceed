package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wishpay/backend/internal/config"
	"github.com/wishpay/backend/internal/models"
	"github.com/wishpay/backend/internal/router"
)

//	@title						WishPay
//	@description				The backend for WishPay. Track savings goals and fund them from your wallet and bank accounts.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				"Bearer " followed by the token returned by /v1/auth/login
func main() {
	if err := run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create the data directory for SQLite databases
	if cfg.DBDriver == models.DriverSQLite {
		err = os.MkdirAll(filepath.Dir(cfg.DBDSN), os.ModePerm)
		if err != nil {
			return err
		}
	}

	err = models.ConnectDriver(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return err
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		return err
	}
	defer teardown()

	co, cleanup, err := router.NewController(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	router.AttachRoutes(co, r.Group("/"))

	return r.Run()
}
