package requestid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

const Header = "X-Request-Id"

func New() string {
	return uuid.NewString()
}

func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func From(ctx context.Context) string {
	v, _ := ctx.Value(ctxKey{}).(string)
	return v
}
