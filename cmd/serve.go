package cmd

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/sahaltools/sahal-ledger/internal/api"
	"github.com/sahaltools/sahal-ledger/internal/config"
	"github.com/sahaltools/sahal-ledger/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the transcript analysis HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, e.g. :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	log := logger.New(cfg.LogLevel)
	api.SetLogger(log)

	app := fiber.New(fiber.Config{
		AppName:   "sahal-ledger",
		BodyLimit: 32 << 20,
	})
	api.Register(app)

	log.Info().Str("addr", cfg.Server.Addr).Msg("starting analysis API")
	return app.Listen(cfg.Server.Addr)
}
