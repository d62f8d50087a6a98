package tx

import (
	"context"
	"fmt"
	"net/http"
)

type key string

const KeyTx = key("tx")

type DBRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DBRepo
}

// TxExecute runs cb inside a database transaction carried through the context.
// The repository implementing WithTx must have been attached to the context by
// TxMiddlewareHTTP beforehand.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return fmt.Errorf("no transaction executor in context")
	}

	return t.DbRepo.WithTx(ctx, cb)
}

func TxMiddlewareHTTP(repo DBRepo) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
