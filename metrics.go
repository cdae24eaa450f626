package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// This file defines the Prometheus metrics that are exposed by the application.

// httpRequestsTotal is a Prometheus counter vector that tracks the total number of HTTP requests.
// It is partitioned by the request's URL path, HTTP method, and the resulting status code.
var httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "packlist_http_requests_total",
	Help: "Total number of HTTP requests by path, method and code.",
}, []string{"path", "method", "code"})

// packingListsGenerated counts generator runs that completed, labeled by
// whether a forecast was available for the trip.
var packingListsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "packlist_packing_lists_generated_total",
	Help: "Total number of packing lists generated, by forecast availability.",
}, []string{"forecast"})

// externalRequestDuration is a histogram of outbound geocoding and forecast
// request durations, partitioned by target host.
var externalRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "packlist_external_request_duration_seconds",
	Help:    "Duration of outbound API requests by host.",
	Buckets: prometheus.DefBuckets,
}, []string{"host"})
