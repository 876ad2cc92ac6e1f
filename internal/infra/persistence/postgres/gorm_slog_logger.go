package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"logistics/config"
	deliverycontext "logistics/internal/delivery/context"
	"logistics/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through slog. Statements run inside a
// request go to the request-scoped logger so they carry its request_id.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	l := &gormSlogLogger{
		logger:        base,
		level:         gormlogger.Warn,
		slowThreshold: defaultSlowQueryThreshold,
	}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = gormlogger.Info
	}
	if cfg.Postgres != nil && cfg.Postgres.SlowQueryThreshold > 0 {
		l.slowThreshold = cfg.Postgres.SlowQueryThreshold
	}

	return l
}

func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, min gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < min {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements as errors and slow ones as warnings. Every
// other statement is logged at debug level when the logger runs in Info mode.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logger == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case l.level >= gormlogger.Error && isUnexpected(err):
		l.trace(ctx, slog.LevelError, "Query failed", fc, elapsed, slog.String("error", err.Error()))
	case l.level >= gormlogger.Warn && l.slowThreshold > 0 && elapsed > l.slowThreshold:
		l.trace(ctx, slog.LevelWarn, "Slow query", fc, elapsed, slog.Duration("threshold", l.slowThreshold))
	case l.level >= gormlogger.Info:
		l.trace(ctx, slog.LevelDebug, "Query", fc, elapsed)
	}
}

func (l *gormSlogLogger) trace(
	ctx context.Context,
	level slog.Level,
	msg string,
	fc func() (string, int64),
	elapsed time.Duration,
	extra ...slog.Attr,
) {
	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.from(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

// isUnexpected filters out errors that translateError turns into client responses.
func isUnexpected(err error) bool {
	if err == nil {
		return false
	}

	return !errors.Is(err, gorm.ErrRecordNotFound) &&
		!errors.Is(err, gorm.ErrDuplicatedKey) &&
		!errors.Is(err, gorm.ErrForeignKeyViolated)
}
