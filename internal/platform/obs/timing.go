package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID stores the request id on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id stored on the context, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs how long the named operation took through the context logger,
// flagging the error if *errp is set by the time the returned func runs.
// Use it with a named error return:
//
//	defer obs.Time(ctx, "loading.plan")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	log := zerolog.Ctx(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Error().Str("op", name).Dur("dur", dur).Err(*errp).Msg("operation failed")
			return
		}
		log.Debug().Str("op", name).Dur("dur", dur).Msg("operation timed")
	}
}
