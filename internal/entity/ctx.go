package entity

import (
	"context"
)

type CtxKey int

const (
	CtxKeyUser CtxKey = iota
)

func CtxWithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, CtxKeyUser, user)
}

// UserFromCtx returns the caller identity or ErrUnauthenticated if none
// was resolved by the auth middleware.
func UserFromCtx(ctx context.Context) (User, error) {
	user, ok := ctx.Value(CtxKeyUser).(User)
	if !ok {
		return user, ErrUnauthenticated
	}

	return user, nil
}
