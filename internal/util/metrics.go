package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_orders_created_total",
		Help: "Total number of orders committed to the ledger",
	})

	CheckoutFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_checkout_failed_total",
		Help: "Total number of failed checkout attempts",
	}, []string{"reason"})

	OrderTotalAmount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pos_order_total_dollars",
		Help:    "Distribution of committed order totals",
		Buckets: []float64{10, 25, 50, 75, 100, 150, 250},
	})

	ProductsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_products_created_total",
		Help: "Total number of products added to the catalog",
	})

	ProductsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_products_deleted_total",
		Help: "Total number of products removed from the catalog",
	})

	CatalogMutationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_catalog_mutations_failed_total",
		Help: "Total number of failed catalog mutations",
	}, []string{"reason"})

	CartLines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pos_cart_lines",
		Help: "Number of lines currently in the working cart",
	})

	ReceiptsPrintedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_receipts_printed_total",
		Help: "Total number of receipts printed",
	})

	ReceiptsFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_receipts_failed_total",
		Help: "Total number of receipt print attempts that failed",
	})

	CatalogCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_catalog_cache_requests_total",
		Help: "Catalog list cache lookups by outcome",
	}, []string{"outcome"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
