package sqlstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pos/config"
	"pos/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// maxLoggedSQL caps statements in logs; upserts inline whole JSON documents.
const maxLoggedSQL = 200

// queryLogger is the GORM logger.Interface backed by slog.
type queryLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
	slow   time.Duration
}

// newGormSlogLogger reports failed and slow statements. Every statement is
// logged at debug level when env.debug is set or the log level is debug.
func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	ql := &queryLogger{
		logger: base.With(slog.String("component", "sqlstore")),
		level:  logger.Warn,
	}
	if cfg != nil {
		ql.slow = cfg.Storage.SlowQuery
		if cfg.Env.Debug || strings.EqualFold(cfg.Env.Log.Level, "debug") {
			ql.level = logger.Info
		}
	}

	return ql
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold {
		return
	}
	l.logger.Log(ctx, level, fmt.Sprintf(msg, args...))
}

// Trace is called by GORM after every statement.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.LogAttrs(ctx, slog.LevelError, "SQL statement failed",
			append(statementAttrs(fc, elapsed), slog.Any("error", err))...)

	case l.slow > 0 && elapsed > l.slow && l.level >= logger.Warn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Slow SQL statement",
			append(statementAttrs(fc, elapsed), slog.Duration("threshold", l.slow))...)

	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "SQL statement", statementAttrs(fc, elapsed)...)
	}
}

func statementAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()
	if len(sql) > maxLoggedSQL {
		sql = sql[:maxLoggedSQL] + "..."
	}

	return []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
}
