package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clinicore/clinic-system/internal/api/metrics"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

const reportKey = "report:doctors_patients"

// ReportCache stores the doctor-patient statistics report in Redis with a TTL,
// so repeated dashboard reads do not refold the whole dataset.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache wraps the given Redis client. A non-positive ttl disables
// expiry.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

// GetDoctorPatientReport returns the cached report, or (nil, nil) on a miss.
// A corrupt entry is treated as a miss so the caller rebuilds it.
func (c *ReportCache) GetDoctorPatientReport(ctx context.Context) (*ports.DoctorPatientReport, error) {
	raw, err := c.client.Get(ctx, reportKey).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ReportCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("report cache get: %w", err)
	}

	var report ports.DoctorPatientReport
	if err := json.Unmarshal(raw, &report); err != nil {
		metrics.ReportCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	metrics.ReportCacheTotal.WithLabelValues("hit").Inc()
	return &report, nil
}

// SetDoctorPatientReport stores the report until the TTL lapses.
func (c *ReportCache) SetDoctorPatientReport(ctx context.Context, report *ports.DoctorPatientReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("report cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, reportKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("report cache set: %w", err)
	}
	return nil
}
