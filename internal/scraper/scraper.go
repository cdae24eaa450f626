// This file implements a standalone metrics scraper for the packlist service.
// It is deployed as its own serverless container and triggered periodically by
// an external scheduler.
//
// Each trigger makes the scraper fetch the service's Prometheus /metrics
// endpoint, parse the exposition format, convert the samples into the shape
// Google Cloud's Managed Service for Prometheus expects, and ingest them into
// Cloud Monitoring. Scraping lives outside the main service so a slow or
// failing ingest never affects request handling.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"time"

	monitoring "cloud.google.com/go/monitoring/apiv3/v2"
	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/genproto/googleapis/api/distribution"
	"google.golang.org/genproto/googleapis/api/metric"
	"google.golang.org/genproto/googleapis/api/monitoredres"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// scrapeTarget holds everything one scrape run needs, read once per request
// from the environment.
type scrapeTarget struct {
	metricsURL string
	projectID  string
	location   string
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("starting scraper", "port", port)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		scrapeHandler(w, r, logger)
	})

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}

func scrapeHandler(w http.ResponseWriter, r *http.Request, logger *slog.Logger) {
	logger.Info("scrape request received")
	target, err := targetFromEnv()
	if err != nil {
		logger.Error("scraper misconfigured", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := scrapeAndIngest(r.Context(), target, logger); err != nil {
		logger.Error("error during scrape and ingest", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	logger.Info("successfully scraped and ingested metrics")
	fmt.Fprintln(w, "Success")
}

func targetFromEnv() (scrapeTarget, error) {
	target := scrapeTarget{
		metricsURL: os.Getenv("METRICS_URL"),
		projectID:  os.Getenv("PROJECT_ID"),
		location:   os.Getenv("MONITORING_LOCATION"),
	}
	if target.metricsURL == "" {
		return scrapeTarget{}, fmt.Errorf("environment variable METRICS_URL must be set")
	}
	if target.projectID == "" {
		return scrapeTarget{}, fmt.Errorf("environment variable PROJECT_ID must be set")
	}
	if target.location == "" {
		target.location = "europe-west1"
	}
	return target, nil
}

func scrapeAndIngest(ctx context.Context, target scrapeTarget, logger *slog.Logger) error {
	timeSeries, err := collectTimeSeries(ctx, target, logger)
	if err != nil {
		return fmt.Errorf("failed to fetch and convert metrics: %w", err)
	}

	if len(timeSeries) == 0 {
		logger.Info("no metric samples found to ingest")
		return nil
	}

	if err := ingestMetrics(ctx, target.projectID, timeSeries); err != nil {
		return fmt.Errorf("failed to ingest metrics: %w", err)
	}

	return nil
}

// collectTimeSeries scrapes the Prometheus endpoint and converts every
// Counter, Gauge, Untyped and Histogram sample into a Cloud Monitoring
// TimeSeries. Summaries are skipped.
func collectTimeSeries(ctx context.Context, target scrapeTarget, logger *slog.Logger) ([]*monitoringpb.TimeSeries, error) {
	httpClient := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.metricsURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http request failed with status code %d", resp.StatusCode)
	}

	var parser expfmt.TextParser
	metricFamilies, err := parser.TextToMetricFamilies(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prometheus metrics: %w", err)
	}

	resource := &monitoredres.MonitoredResource{
		Type: "prometheus_target",
		Labels: map[string]string{
			"project_id": target.projectID,
			"location":   target.location,
			"cluster":    "__gce__",
			"namespace":  "packlist",
			"job":        "packlist",
			"instance":   target.metricsURL,
		},
	}

	var timeSeriesList []*monitoringpb.TimeSeries
	now := timestamppb.New(time.Now())

	for name, mf := range metricFamilies {
		for _, m := range mf.GetMetric() {
			labels := make(map[string]string)
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}

			ts := &monitoringpb.TimeSeries{
				Metric: &metric.Metric{
					Type:   "prometheus.googleapis.com/" + name,
					Labels: labels,
				},
				Resource: resource,
			}

			var point *monitoringpb.Point
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				point = samplePoint(now, m.GetCounter().GetValue())
			case dto.MetricType_GAUGE:
				point = samplePoint(now, m.GetGauge().GetValue())
			case dto.MetricType_UNTYPED:
				point = samplePoint(now, m.GetUntyped().GetValue())
			case dto.MetricType_HISTOGRAM:
				point = histogramPoint(now, m.GetHistogram(), logger)
			case dto.MetricType_SUMMARY:
				logger.Debug("skipping metric with unhandled summary type", "metric", name)
				continue
			default:
				logger.Warn("skipping metric with unhandled type", "metric", name, "type", mf.GetType())
				continue
			}

			ts.Points = []*monitoringpb.Point{point}
			timeSeriesList = append(timeSeriesList, ts)
		}
	}
	return timeSeriesList, nil
}

// samplePoint wraps a scalar sample as a double-valued point.
func samplePoint(timestamp *timestamppb.Timestamp, value float64) *monitoringpb.Point {
	return &monitoringpb.Point{
		Interval: &monitoringpb.TimeInterval{
			EndTime: timestamp,
		},
		Value: &monitoringpb.TypedValue{
			Value: &monitoringpb.TypedValue_DoubleValue{
				DoubleValue: value,
			},
		},
	}
}

// histogramPoint converts a Prometheus histogram DTO into a Cloud Monitoring
// Distribution point. Prometheus buckets are cumulative; Cloud Monitoring
// wants per-bucket counts, so the running total is subtracted out.
func histogramPoint(timestamp *timestamppb.Timestamp, h *dto.Histogram, logger *slog.Logger) *monitoringpb.Point {
	promBuckets := h.GetBucket()
	bounds := make([]float64, len(promBuckets)-1)
	bucketCounts := make([]int64, len(promBuckets))
	var lastCumulativeCount uint64

	for i, b := range promBuckets {
		// The final Prometheus bucket is +Inf and carries no explicit bound.
		if i < len(promBuckets)-1 {
			bounds[i] = b.GetUpperBound()
		}
		cumulativeCount := b.GetCumulativeCount()
		countInBucket := cumulativeCount - lastCumulativeCount
		if countInBucket > math.MaxInt64 {
			logger.Warn("histogram bucket count exceeds MaxInt64, capping value", "bucket", i, "value", countInBucket)
			bucketCounts[i] = math.MaxInt64
		} else {
			bucketCounts[i] = int64(countInBucket)
		}
		lastCumulativeCount = cumulativeCount
	}

	sampleCount := h.GetSampleCount()
	var finalSampleCount int64
	if sampleCount > math.MaxInt64 {
		logger.Warn("histogram sample count exceeds MaxInt64, capping value", "value", sampleCount)
		finalSampleCount = math.MaxInt64
	} else {
		finalSampleCount = int64(sampleCount)
	}

	dist := &distribution.Distribution{
		Count: finalSampleCount,
		Mean:  h.GetSampleSum() / float64(h.GetSampleCount()),
		BucketOptions: &distribution.Distribution_BucketOptions{
			Options: &distribution.Distribution_BucketOptions_ExplicitBuckets{
				ExplicitBuckets: &distribution.Distribution_BucketOptions_Explicit{
					Bounds: bounds,
				},
			},
		},
		BucketCounts: bucketCounts,
	}

	return &monitoringpb.Point{
		Interval: &monitoringpb.TimeInterval{
			EndTime: timestamp,
		},
		Value: &monitoringpb.TypedValue{
			Value: &monitoringpb.TypedValue_DistributionValue{
				DistributionValue: dist,
			},
		},
	}
}

// ingestMetrics writes the TimeSeries data to the Cloud Monitoring API.
func ingestMetrics(ctx context.Context, projectID string, timeSeries []*monitoringpb.TimeSeries) error {
	client, err := monitoring.NewMetricClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create monitoring client: %w", err)
	}
	defer client.Close()

	req := &monitoringpb.CreateTimeSeriesRequest{
		Name:       "projects/" + projectID,
		TimeSeries: timeSeries,
	}

	if err := client.CreateTimeSeries(ctx, req); err != nil {
		return fmt.Errorf("failed to write time series data: %w", err)
	}
	return nil
}
