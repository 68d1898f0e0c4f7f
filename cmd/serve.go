package cmd

import (
	"strings"

	"csvdiff/core/loader"
	"csvdiff/core/logger"
	"csvdiff/core/middleware/auth"
	"csvdiff/core/middleware/rayid"
	"csvdiff/feature/diff"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "csvdiff/docs/swagger"
)

// @title csvdiff API
// @version 1.0
// @description Keyed comparison of CSV snapshots.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP comparison service",
	Long:  `Starts the HTTP server and loads the diff endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.log.Sync()
		zap.ReplaceGlobals(a.log)
		a.loader.EnableCache(a.cfg.Server.CacheTTL())

		srv := newServer(a, diff.NewFeature(a.service))
		loaded, err := srv.mgr.LoadAll(srv.fiber)
		if err != nil {
			return err
		}
		a.log.Info("Features loaded", zap.Strings("features", loaded))

		errCh := make(chan error, 1)
		go func() {
			a.log.Info("Starting server", zap.String("port", a.cfg.Server.Port), zap.Bool("protected", a.cfg.Server.IsProtected()))
			errCh <- srv.fiber.Listen(":" + a.cfg.Server.Port)
		}()

		select {
		case err := <-errCh:
			return err
		case <-cmd.Context().Done():
		}

		a.log.Info("Shutting down server...")
		return srv.fiber.Shutdown()
	},
}

type server struct {
	fiber *fiber.App
	mgr   *loader.Manager
}

// newServer builds the Fiber app with middleware; features are registered
// but not yet loaded.
func newServer(a *app, features ...loader.Feature) *server {
	f := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             a.cfg.Server.BodyLimit(),
	})

	mgr := loader.NewManager()
	for _, feat := range features {
		mgr.Register(feat)
	}

	f.Use(rayid.New())

	f.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(a.log, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	f.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	f.Get("/swagger/*", swagger.HandlerDefault)

	f.Use(auth.New(auth.Config{
		ApiKey: a.cfg.Server.ApiKey,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health" || strings.HasPrefix(c.Path(), "/swagger")
		},
	}))

	return &server{fiber: f, mgr: mgr}
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
