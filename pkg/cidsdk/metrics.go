package cidsdk

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

// observeRequest records one daemon request. A nil resp counts as code "error".
func observeRequest(method, route string, resp *http.Response, start time.Time) {
	code := "error"
	if resp != nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	requestsTotal(method, route, code).Inc()
	metrics.GetOrCreateHistogram(
		fmt.Sprintf(`cidsdk_request_duration_seconds{route=%q}`, route),
	).UpdateDuration(start)
}

func requestsTotal(method, route, code string) *metrics.Counter {
	return metrics.GetOrCreateCounter(
		fmt.Sprintf(`cidsdk_requests_total{method=%q,route=%q,code=%q}`, method, route, code),
	)
}

// WriteMetrics writes the request metrics in Prometheus text format.
func WriteMetrics(w io.Writer) {
	metrics.WritePrometheus(w, false)
}
