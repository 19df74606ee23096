package app

import (
	"context"
	"io"
	"time"

	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/services"
)

type instrumentedRelay struct {
	inner   services.UploadRelay
	metrics *observability.Metrics
}

func instrumentRelay(inner services.UploadRelay, metrics *observability.Metrics) services.UploadRelay {
	if inner == nil || metrics == nil {
		return inner
	}
	return &instrumentedRelay{inner: inner, metrics: metrics}
}

func (r *instrumentedRelay) Name() string { return r.inner.Name() }

func (r *instrumentedRelay) Upload(ctx context.Context, filename, mimeType string, body io.Reader) (string, error) {
	start := time.Now()
	link, err := r.inner.Upload(ctx, filename, mimeType, body)
	status := "success"
	if err != nil {
		status = "error"
	}
	r.metrics.ObserveUpload(r.inner.Name(), status, time.Since(start))
	return link, err
}
