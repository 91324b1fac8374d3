package booking

import "context"

type contextKey string

const flowIDKey contextKey = "bookingFlowID"

func NewContextWithFlowID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, flowIDKey, id)
}

func FlowIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(flowIDKey).(string)

	return id, ok
}
