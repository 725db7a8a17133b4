package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"vast-core/internal/core/domain"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	doc := &domain.VAST{Ads: []domain.Ad{
		{Detail: &domain.InLine{}},
		{Detail: &domain.Wrapper{}},
		{Detail: &domain.Wrapper{}},
	}}
	m.ObserveSuccess(doc, time.Millisecond)
	m.ObserveFailure("xml-syntax", time.Millisecond)
	m.ObserveFailure("xml-syntax", time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.parses.WithLabelValues("ok", "")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.parses.WithLabelValues("error", "xml-syntax")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ads.WithLabelValues("inline")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ads.WithLabelValues("wrapper")))
}
