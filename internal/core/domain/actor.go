package domain

import "context"

// DefaultActor is used when a request carries no admin identity.
const DefaultActor = "admin"

type actorKey struct{}

// WithActor returns a copy of ctx carrying the admin name.
func WithActor(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, actorKey{}, name)
}

// ActorFrom returns the admin name stored in ctx or [DefaultActor].
func ActorFrom(ctx context.Context) string {
	if name, ok := ctx.Value(actorKey{}).(string); ok && name != "" {
		return name
	}
	return DefaultActor
}
