package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	appMigrations "github.com/yigit/coursehub/internal/app/migrations"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/db"
	pkgAuth "github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "coursectl",
		Usage: "administrative tasks for the CourseHub API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultPath,
				Usage: "path to the YAML config file",
			},
		},
		Before: func(c *cli.Context) error {
			_ = godotenv.Load()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "apply pending schema migrations",
				Action: migrateAction,
			},
			{
				Name:  "reset",
				Usage: "drop every table and recreate the schema empty",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Usage: "confirm that all data will be lost"},
				},
				Action: resetAction,
			},
			{
				Name:  "token",
				Usage: "issue a signed bearer token for a user",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "user", Required: true, Usage: "user id placed in the token"},
					&cli.StringFlag{Name: "role", Required: true, Usage: "student or teacher"},
					&cli.DurationFlag{Name: "ttl", Usage: "token lifetime, defaults to auth.token_ttl"},
				},
				Action: tokenAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("coursectl failed")
		os.Exit(1)
	}
}

func openDatabase(c *cli.Context) (*config.Config, *db.PostgresDB, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	database, err := db.NewPostgresDB(c.Context, cfg, logger.Get())
	if err != nil {
		return nil, nil, err
	}
	return cfg, database, nil
}

func migrateAction(c *cli.Context) error {
	_, database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	return appMigrations.NewMigrator(database.Pool, logger.Get()).Migrate(c.Context)
}

func resetAction(c *cli.Context) error {
	if !c.Bool("yes") {
		return errors.New("refusing to reset without --yes")
	}

	cfg, database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.IsProduction() {
		return errors.New("reset is disabled in production mode")
	}

	ctx, cancel := context.WithTimeout(c.Context, time.Minute)
	defer cancel()
	return appMigrations.NewMigrator(database.Pool, logger.Get()).Reset(ctx)
}

func tokenAction(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if cfg.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is not configured")
	}

	role := models.Role(c.String("role"))
	if !role.Valid() {
		return fmt.Errorf("unknown role %q", role)
	}

	ttl := c.Duration("ttl")
	if ttl == 0 {
		ttl = cfg.TokenTTLDuration()
	}

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Auth.JWTSecret,
		TokenTTL:    ttl,
		TokenIssuer: cfg.Auth.Issuer,
	})
	token, expiresAt, err := jwtService.GenerateToken(c.Int64("user"), role)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, token)
	logger.Info().Time("expiresAt", expiresAt).Msg("Token issued")
	return nil
}
