package scheduler

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Gunal77/web-hackathon/aggregate"
	"github.com/Gunal77/web-hackathon/api"
	"github.com/Gunal77/web-hackathon/databases"
	"github.com/Gunal77/web-hackathon/models"
	"github.com/Gunal77/web-hackathon/performance"
)

// DigestTimeout bounds a single digest run
const DigestTimeout = time.Minute

// Digest is the SLA summary logged on each run
type Digest struct {
	Open              int
	OpenPastSLA       int
	Critical          int
	RedDistricts      []string
	DistrictsByColour map[models.RiskColor]int
}

// Scheduler runs the periodic SLA digest over the manu store
type Scheduler struct {
	cron       *cron.Cron
	DB         databases.ManuDatabase
	Metrics    *api.Metrics
	instanceID string
}

// NewScheduler creates a new scheduler instance. metrics may be nil.
func NewScheduler(db databases.ManuDatabase, metrics *api.Metrics) *Scheduler {
	instanceID := os.Getenv("HOSTNAME")
	if instanceID == "" {
		instanceID = fmt.Sprintf("instance-%d", time.Now().UnixNano())
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		DB:         db,
		Metrics:    metrics,
		instanceID: instanceID,
	}
}

// Start registers the digest job on schedule and starts the cron runner
func (s *Scheduler) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.runDigest); err != nil {
		return fmt.Errorf("failed to register sla digest job: %w", err)
	}
	s.cron.Start()
	zap.S().Infow("SLA digest scheduler started", "schedule", schedule, "instance", s.instanceID)
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("SLA digest scheduler stopped")
}

func (s *Scheduler) runDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), DigestTimeout)
	defer cancel()

	if _, err := s.RunDigest(ctx); err != nil {
		zap.S().Errorw("sla digest failed", "error", err, "instance", s.instanceID)
	}
}

// RunDigest computes the digest, logs it and refreshes the case gauges
func (s *Scheduler) RunDigest(ctx context.Context) (Digest, error) {
	manus, err := s.DB.Find(ctx, databases.ManuFilter{})
	if err != nil {
		return Digest{}, fmt.Errorf("failed to load manus: %w", err)
	}

	d := Summarize(manus)
	zap.S().Infow("SLA digest",
		"open", d.Open,
		"openPastSla", d.OpenPastSLA,
		"critical", d.Critical,
		"redDistricts", d.RedDistricts)

	if s.Metrics != nil {
		s.Metrics.DigestRuns.Inc()
		s.Metrics.SetCaseGauges(api.CaseSnapshot{
			Open:              d.Open,
			OpenPastSLA:       d.OpenPastSLA,
			Critical:          d.Critical,
			DistrictsByColour: d.DistrictsByColour,
		})
	}
	return d, nil
}

// Summarize builds the digest for a set of manus. Open means not resolved;
// past SLA means open for more than performance.SLATargetDays.
func Summarize(manus []models.Manu) Digest {
	d := Digest{
		RedDistricts: make([]string, 0),
		DistrictsByColour: map[models.RiskColor]int{
			models.RiskColorGreen:  0,
			models.RiskColorYellow: 0,
			models.RiskColorRed:    0,
		},
	}
	for _, m := range manus {
		if m.IsCritical() {
			d.Critical++
		}
		if m.Status == models.StatusResolved {
			continue
		}
		d.Open++
		if m.PendingDays > performance.SLATargetDays {
			d.OpenPastSLA++
		}
	}
	for _, ds := range aggregate.DistrictStats(manus) {
		d.DistrictsByColour[ds.RiskColor]++
		if ds.RiskColor == models.RiskColorRed {
			d.RedDistricts = append(d.RedDistricts, ds.District)
		}
	}
	return d
}
