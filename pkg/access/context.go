package access

import "context"

// userCtxKey is the context key for storing the acting user.
type userCtxKey struct{}

// WithUser stores the acting user in the context.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

// UserFromContext retrieves the acting user from the context.
func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userCtxKey{}).(User)
	return u, ok
}
