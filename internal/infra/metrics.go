package infra

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/advice-service/internal/config"
)

// MetricsHTTP counts requests and carries the metrics handle in the context.
// A nil handle (graphite unreachable at startup) degrades to a pass-through.
func MetricsHTTP(next http.Handler, metrics *pkg.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		metrics.Increment(fmt.Sprintf("rest.%s", normalizeMethod(r.Method)))

		ctx := context.WithValue(r.Context(), config.KeyMetrics, metrics)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func normalizeMethod(method string) string {
	return strings.ToLower(method)
}
