package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// multiTracer allows chaining multiple tracers.
//
// pgx supports a single Tracer in ConnConfig. This adapter runs every
// tracer that implements TraceQueryStart / TraceQueryEnd, in order.
type multiTracer struct {
	tracers []any
}

// TraceQueryStart implements pgx.QueryTracer.
//
// Some tracers attach values to ctx for TraceQueryEnd, so ctx is
// threaded through each call.
func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

// TraceQueryEnd implements pgx.QueryTracer.
func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

type slowQueryKey struct{}

type slowQueryStart struct {
	at  time.Time
	sql string
}

// slowQueryTracer warns about statements slower than threshold.
type slowQueryTracer struct {
	threshold time.Duration
	log       *zerolog.Logger
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, slowQueryKey{}, slowQueryStart{at: time.Now(), sql: data.SQL})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(slowQueryKey{}).(slowQueryStart)
	if !ok {
		return
	}

	elapsed := time.Since(start.at)
	if elapsed < t.threshold {
		return
	}

	t.log.Warn().
		Dur("duration", elapsed).
		Dur("threshold", t.threshold).
		Str("sql", start.sql).
		Str("command_tag", data.CommandTag.String()).
		Err(data.Err).
		Msg("slow query")
}
