package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/contact-assistant/internal/daemon"
	"github.com/username/contact-assistant/pkg/dateutil"
)

func birthdaysCmd() *cobra.Command {
	var dateStr string
	var days int
	var teeOutput string

	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "List contacts to congratulate in the coming days",
		Long:  "List contacts whose birthday falls within the window starting at --date. Weekend birthdays are congratulated on the next working day.",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := dateutil.Today()
			if dateStr != "" {
				var err error
				today, err = dateutil.ParseDate(dateStr)
				if err != nil {
					return fmt.Errorf("invalid date: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			if teeOutput != "" {
				if err := os.MkdirAll(filepath.Dir(teeOutput), 0o755); err != nil {
					return fmt.Errorf("failed to create tee path: %w", err)
				}
				f, err := os.OpenFile(teeOutput, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open tee-output file: %w", err)
				}
				defer f.Close()
				out = io.MultiWriter(out, f)
			}

			cfg, book, err := loadDirectory()
			if err != nil {
				return err
			}

			calc := initializeCalculator(cfg)
			if days > 0 {
				calc.WindowDays = days
			}

			logger.Info("Looking for upcoming birthdays",
				zap.String("date", dateutil.FormatDate(today)),
				zap.Int("window_days", calc.WindowDays),
				zap.Int("contacts", book.Len()))

			upcoming := book.UpcomingBirthdaysWith(calc, today)
			if len(upcoming) == 0 {
				fmt.Fprintln(out, "No upcoming birthdays.")
				return nil
			}
			for _, c := range upcoming {
				fmt.Fprintln(out, c.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Start date DD.MM.YYYY (default: today)")
	cmd.Flags().IntVar(&days, "days", 0, "Look-ahead in days (default: birthdays.window_days)")
	cmd.Flags().StringVar(&teeOutput, "tee-output", "", "Mirror output to file")

	return cmd
}

func remindCmd() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run the daily birthday reminder",
		Long:  "Check upcoming birthdays every day at daemon.daily_time (local time) and log them. Shows a tray icon on Windows when daemon.system_tray is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, book, err := loadDirectory()
			if err != nil {
				return err
			}

			hour, minute := cfg.Daemon.GetDailyTime()
			d := daemon.NewScheduledDaemon(book, initializeCalculator(cfg), hour, minute, cfg.Daemon.SystemTray, logger)

			if once {
				d.RemindNow()
				return nil
			}

			logger.Info("Starting reminder daemon",
				zap.String("daily_time", fmt.Sprintf("%02d:%02d", hour, minute)),
				zap.Bool("system_tray", cfg.Daemon.SystemTray))

			started := time.Now()
			if err := d.Start(); err != nil {
				return fmt.Errorf("daemon failed: %w", err)
			}
			logger.Info("Reminder daemon exited", zap.Duration("uptime", time.Since(started)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Check once and exit")

	return cmd
}
