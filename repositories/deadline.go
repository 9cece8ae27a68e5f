package repositories

import (
	"context"
	"time"
)

// queryTimeout bounds a single database operation when the caller's context
// carries no deadline of its own.
const queryTimeout = 5 * time.Second

func withQueryDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, queryTimeout)
}
