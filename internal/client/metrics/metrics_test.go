package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveGatewayRequest(t *testing.T) {
	before := testutil.ToFloat64(gatewayRequests.WithLabelValues("menu_list", "200"))
	ObserveGatewayRequest("menu_list", 200, 15*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(gatewayRequests.WithLabelValues("menu_list", "200")))
}

func TestImageCacheCounters(t *testing.T) {
	hits := testutil.ToFloat64(imageCache.WithLabelValues("hit"))
	misses := testutil.ToFloat64(imageCache.WithLabelValues("miss"))

	ImageCacheHit()
	ImageCacheMiss()
	ImageCacheMiss()

	assert.Equal(t, hits+1, testutil.ToFloat64(imageCache.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(imageCache.WithLabelValues("miss")))
}

func TestOrderOutcome(t *testing.T) {
	before := testutil.ToFloat64(orders.WithLabelValues("InvalidPaymentCard"))
	OrderOutcome("InvalidPaymentCard")
	assert.Equal(t, before+1, testutil.ToFloat64(orders.WithLabelValues("InvalidPaymentCard")))
}

func TestRegistry_Gathers(t *testing.T) {
	ObserveGatewayRequest("order_get", 0, time.Millisecond)
	mfs, err := Registry.Gather()
	assert.NoError(t, err)
	assert.NotEmpty(t, mfs)
}
