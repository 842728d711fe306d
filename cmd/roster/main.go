package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eion/roster/internal/config"
	"github.com/eion/roster/internal/users"
)

func main() {
	// Load configuration
	config.Load()

	logger := initLogger()
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("locale", config.Report().Locale),
		zap.Int("seed_users", len(config.Seed())))

	if err := run(context.Background(), os.Stdout, logger); err != nil {
		logger.Fatal("Failed to generate user report", zap.Error(err))
	}
}

// run seeds a fresh store from config and writes the report to out
func run(ctx context.Context, out io.Writer, logger *zap.Logger) error {
	userService := users.NewUserService(users.NewInMemoryStore(), config.Report().Locale, logger)

	created := seedUsers(ctx, userService, config.Seed(), logger)
	logger.Info("Seed users created", zap.Int("count", created))

	if _, err := fmt.Fprint(out, userService.GenerateUserReport(ctx)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// seedUsers creates every valid seed entry and returns how many were stored.
// Invalid entries are logged and skipped.
func seedUsers(ctx context.Context, svc users.UserService, seed []config.SeedUser, logger *zap.Logger) int {
	created := 0
	for i, entry := range seed {
		req := &users.CreateUserRequest{
			Name:    entry.Name,
			Email:   entry.Email,
			Age:     entry.Age,
			IsAdmin: entry.Admin,
		}

		user, err := svc.CreateUser(ctx, req)
		if err != nil {
			logger.Warn("Skipping seed user",
				zap.Int("index", i),
				zap.String("name", entry.Name),
				zap.Error(err))
			continue
		}

		logger.Debug("Seed user created", zap.String("user_id", user.ID))
		created++
	}
	return created
}

func initLogger() *zap.Logger {
	logConfig := config.Logger()

	var config zap.Config
	if logConfig.Format == "json" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	// Set log level
	switch logConfig.Level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	// Report goes to stdout, logs stay on stderr
	config.OutputPaths = []string{"stderr"}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	return logger
}
