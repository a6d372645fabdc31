package daemon

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/username/contact-assistant/internal/contacts"
	"github.com/username/contact-assistant/pkg/dateutil"
)

// Daemon reminds about upcoming birthdays once a day.
// The directory is only read, so it must not be changed while the daemon runs.
type Daemon struct {
	book          *contacts.Directory
	calc          contacts.Calculator
	dailyHour     int  // Hour to run daily reminder (0-23, local time)
	dailyMinute   int  // Minute to run daily reminder (0-59)
	systemTray    bool // Show system tray icon
	logger        *zap.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	trayApp       *TrayApp
	now           func() time.Time
	checkInterval time.Duration

	mu          sync.Mutex // Serializes runs; one run per day
	lastRunDate string    // Last day a reminder ran, YYYY-MM-DD
	lastRunTime time.Time
	lastResult  []contacts.Congratulation
}

// NewScheduledDaemon creates a new daemon instance with daily schedule
func NewScheduledDaemon(book *contacts.Directory, calc contacts.Calculator, dailyHour, dailyMinute int, systemTray bool, logger *zap.Logger) *Daemon {
	ctx, cancel := context.WithCancel(context.Background())

	return &Daemon{
		book:          book,
		calc:          calc,
		dailyHour:     dailyHour,
		dailyMinute:   dailyMinute,
		systemTray:    systemTray,
		logger:        logger,
		ctx:           ctx,
		cancel:        cancel,
		now:           time.Now,
		checkInterval: time.Minute,
	}
}

// Start runs the daemon until Stop is called or a termination signal arrives
func (d *Daemon) Start() error {
	// Initialize system tray if enabled (Windows only)
	if d.systemTray {
		d.logger.Info("Initializing system tray")
		trayApp, err := NewTrayApp(d, d.logger)
		if err != nil {
			d.logger.Warn("Failed to initialize system tray", zap.Error(err))
			d.runScheduledLogic()
			return nil
		}
		d.trayApp = trayApp
		// Run tray (blocks until Quit)
		d.trayApp.Run()
		return nil
	}

	d.logger.Info("Running without system tray")
	d.runScheduledLogic()
	return nil
}

// Stop stops the daemon
func (d *Daemon) Stop() {
	d.cancel()
}

// runScheduledLogic runs the reminder schedule (called from tray or standalone)
func (d *Daemon) runScheduledLogic() {
	d.logger.Info("Daemon scheduled logic started",
		zap.Int("daily_hour", d.dailyHour),
		zap.Int("daily_minute", d.dailyMinute))

	// Run now if the scheduled time already passed today
	now := d.now()
	if d.shouldRunAt(now) && !d.ranOn(now) {
		d.logger.Info("Scheduled time already passed today, running reminder now",
			zap.Time("scheduled_time", d.scheduledOn(now)),
			zap.Time("current_time", now))
		d.remind()
	}

	d.logNextRun()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(d.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-d.ctx.Done():
			d.logger.Info("Daemon stopped")
			if d.trayApp != nil {
				d.trayApp.Stop()
			}
			return

		case sig := <-sigChan:
			d.logger.Info("Received signal, shutting down",
				zap.String("signal", sig.String()))
			if d.trayApp != nil {
				d.trayApp.Stop()
			}
			d.Stop()
			return

		case <-ticker.C:
			now := d.now()
			if !d.shouldRunAt(now) || d.ranOn(now) {
				continue
			}

			d.logger.Info("Starting scheduled reminder", zap.Time("time", now))
			d.remind()
			d.logNextRun()
		}
	}
}

// remind runs the reminder and notifies about the result
func (d *Daemon) remind() {
	if upcoming := d.runReminder(); upcoming != nil {
		d.notify("Upcoming Birthdays", formatUpcoming(upcoming))
	}
}

// RemindNow triggers an immediate reminder (called from tray menu)
func (d *Daemon) RemindNow() {
	d.logger.Info("Manual reminder triggered from tray")
	d.remind()
}

// runReminder computes upcoming birthdays for today and logs each one.
// A second call on the same day does nothing and returns nil.
func (d *Daemon) runReminder() []contacts.Congratulation {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	today := now.Format("2006-01-02")
	if d.lastRunDate == today {
		d.logger.Info("Already reminded today, skipping",
			zap.String("last_run_date", d.lastRunDate),
			zap.Time("last_run_time", d.lastRunTime))
		return nil
	}

	upcoming := d.book.UpcomingBirthdaysWith(d.calc, now)
	for _, c := range upcoming {
		d.logger.Info("Upcoming birthday",
			zap.String("name", c.Name),
			zap.String("congratulate_on", c.FormattedDate()))
	}

	d.logger.Info("Reminder completed",
		zap.String("date", dateutil.FormatDate(now)),
		zap.Int("contacts", d.book.Len()),
		zap.Int("upcoming", len(upcoming)))

	if upcoming == nil {
		upcoming = []contacts.Congratulation{}
	}
	d.lastRunDate = today
	d.lastRunTime = now
	d.lastResult = upcoming

	return upcoming
}

func (d *Daemon) ranOn(now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastRunDate == now.Format("2006-01-02")
}

func (d *Daemon) notify(title, message string) {
	if d.trayApp != nil {
		d.trayApp.ShowNotification(title, message)
	}
}

func (d *Daemon) logNextRun() {
	nextRun := d.calculateNextRun()
	d.logger.Info("Next reminder scheduled",
		zap.Time("next_run", nextRun),
		zap.Duration("wait_duration", nextRun.Sub(d.now())))
}

// GetStatus returns daemon status
func (d *Daemon) GetStatus() map[string]interface{} {
	d.mu.Lock()
	defer d.mu.Unlock()

	status := map[string]interface{}{
		"running":  d.ctx.Err() == nil,
		"next_run": d.calculateNextRun().Format("2006-01-02 15:04"),
		"contacts": d.book.Len(),
	}
	if d.lastRunDate != "" {
		status["last_run"] = map[string]interface{}{
			"date":     d.lastRunDate,
			"time":     d.lastRunTime.Format("15:04:05"),
			"upcoming": formatUpcoming(d.lastResult),
		}
	}
	return status
}

// calculateNextRun calculates the next scheduled run time in local time
func (d *Daemon) calculateNextRun() time.Time {
	now := d.now()
	today := d.scheduledOn(now)

	// If target time already passed today, schedule for tomorrow
	if !now.Before(today) {
		return today.AddDate(0, 0, 1)
	}

	return today
}

// shouldRunAt reports whether today's scheduled time has been reached.
// A tick that misses the exact minute (e.g. after resume) still fires.
func (d *Daemon) shouldRunAt(now time.Time) bool {
	return !now.Before(d.scheduledOn(now))
}

// scheduledOn returns the scheduled time on the day of now
func (d *Daemon) scheduledOn(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(),
		d.dailyHour, d.dailyMinute, 0, 0, now.Location())
}

func formatUpcoming(upcoming []contacts.Congratulation) string {
	if len(upcoming) == 0 {
		return "No upcoming birthdays."
	}
	lines := make([]string, len(upcoming))
	for i, c := range upcoming {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}
