package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/contact-assistant/internal/assistant"
	"github.com/username/contact-assistant/internal/calendar"
	"github.com/username/contact-assistant/internal/config"
	"github.com/username/contact-assistant/internal/contacts"
)

var (
	configPath   string
	logger       *zap.Logger
	appConfig    *config.Config
	appConfigErr error

	loadConfig = config.Load
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "assistant-bot",
		Short: "Contact assistant",
		Long:  "Keep contacts with phones and birthdays and find whom to congratulate in the coming days",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config once; commands read appConfig
			appConfig, appConfigErr = loadConfig(configPath)
			if appConfigErr == nil {
				appConfig.ExpandEnvVars()
			}

			if appConfigErr == nil && appConfig.Log.File != "" {
				var err error
				logger, err = initFileLogger(appConfig.Log.File, appConfig.Log.Level)
				if err != nil {
					initLogger("info") // Fallback to console
				}
			} else if appConfigErr == nil {
				initLogger(appConfig.Log.Level)
			} else {
				initLogger("info") // Default console logger
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, book, err := loadDirectory()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("Starting interactive session", zap.Int("contacts", book.Len()))

			bot := assistant.NewBot(book, initializeCalculator(cfg), logger)
			return bot.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: config.yaml in ., $HOME/.contact-assistant or /etc/contact-assistant)")

	rootCmd.AddCommand(birthdaysCmd())
	rootCmd.AddCommand(remindCmd())

	return rootCmd
}

// loadDirectory returns the loaded config and the contacts it lists
func loadDirectory() (*config.Config, *contacts.Directory, error) {
	if appConfigErr != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", appConfigErr)
	}
	cfg := appConfig

	book, err := cfg.BuildDirectory()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	return cfg, book, nil
}

// initializeCalculator builds the birthday calculator for the configured calendar
func initializeCalculator(cfg *config.Config) contacts.Calculator {
	calc := contacts.Calculator{WindowDays: cfg.Birthdays.GetWindowDays()}

	switch cfg.Calendar.Type {
	case "file":
		logger.Info("Using days off file", zap.String("file", cfg.Calendar.File))
		primaryCal := calendar.NewFileCalendar(cfg.Calendar.File, logger)
		compositeCal := calendar.NewCompositeCalendar(primaryCal, calendar.Weekends{}, logger)

		if err := compositeCal.LoadPrimary(); err != nil {
			logger.Warn("Failed to load days off file, continuing with weekends only",
				zap.Error(err))
			return calc
		}
		calc.Calendar = compositeCal

	default:
		logger.Debug("Using weekends calendar")
	}

	return calc
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err == nil {
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
