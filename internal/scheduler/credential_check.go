package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly"
	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist"
	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist/lemlistclient"
	"github.com/clearpipe/outreach-insights-api/infrastructure/repository"
	"github.com/clearpipe/outreach-insights-api/internal/config"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// CredentialCheckResult is the outcome of validating one tenant source.
type CredentialCheckResult struct {
	Tenant  string    `json:"tenant"`
	Source  string    `json:"source"`
	Valid   bool      `json:"valid"`
	Error   string    `json:"error,omitempty"`
	Checked time.Time `json:"checkedAt"`
}

// CredentialCheckStatus is the scheduler state exposed by the cron endpoints.
type CredentialCheckStatus struct {
	Enabled         bool                    `json:"enabled"`
	Running         bool                    `json:"running"`
	CronSchedule    string                  `json:"cronSchedule"`
	LastStartedAt   *time.Time              `json:"lastStartedAt,omitempty"`
	LastCompletedAt *time.Time              `json:"lastCompletedAt,omitempty"`
	LastResults     []CredentialCheckResult `json:"lastResults,omitempty"`
}

// CredentialCheckService periodically validates every tenant's configured
// platform credentials so that broken keys are noticed before a tenant opens
// their dashboard.
type CredentialCheckService struct {
	scheduler        *gocron.Scheduler
	cfg              *config.Config
	tenantRepo       repository.TenantRepository
	instantlyService instantly.Integrator
	lemlistService   lemlist.Integrator

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastResults     []CredentialCheckResult
}

func NewCredentialCheckService(
	tenantRepo repository.TenantRepository,
	instantlyService instantly.Integrator,
	lemlistService lemlist.Integrator,
	cfg *config.Config,
) *CredentialCheckService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CredentialCheck.CronSchedule,
		"enabled":       cfg.CredentialCheck.Enabled,
	}).Info("credential check scheduler configured")

	return &CredentialCheckService{
		scheduler:        gocron.NewScheduler(time.Local),
		cfg:              cfg,
		tenantRepo:       tenantRepo,
		instantlyService: instantlyService,
		lemlistService:   lemlistService,
	}
}

// Start schedules the periodic check and stops it when the context ends.
// Disabled by configuration by default; Run stays callable either way.
func (s *CredentialCheckService) Start(ctx context.Context) error {
	if !s.cfg.CredentialCheck.Enabled {
		logrus.Info("credential check scheduler disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.cfg.CredentialCheck.CronSchedule).Do(func() {
		s.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule credential check: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping credential check scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// Run validates every tenant's configured sources. Concurrent invocations
// collapse into one; the second caller returns immediately.
func (s *CredentialCheckService) Run(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("credential check already running, skipping")
		return
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.lastCompletedAt = time.Now()
		s.mu.Unlock()
	}()

	tenants, err := s.tenantRepo.ListTenants()
	if err != nil {
		logrus.WithError(err).Error("credential check: failed to list tenants")
		return
	}

	maxConcurrent := s.cfg.Fetch.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 8
	}

	var (
		wg      sync.WaitGroup
		sem     = make(chan struct{}, maxConcurrent)
		mu      sync.Mutex
		results []CredentialCheckResult
	)

	for _, tenant := range tenants {
		for _, source := range tenant.EnabledSources() {
			wg.Add(1)
			go func(tenant *domain.Tenant, source string) {
				defer wg.Done()

				sem <- struct{}{}
				defer func() { <-sem }()

				result := s.checkSource(ctx, tenant, source)

				mu.Lock()
				results = append(results, result)
				mu.Unlock()

				if !result.Valid {
					logrus.WithFields(logrus.Fields{
						"tenant": tenant.Subdomain,
						"source": source,
						"error":  result.Error,
					}).Warn("credential check: tenant credentials invalid")
				}
			}(tenant, source)
		}
	}

	wg.Wait()

	s.mu.Lock()
	s.lastResults = results
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"tenants": len(tenants),
		"checks":  len(results),
	}).Info("credential check completed")
}

func (s *CredentialCheckService) checkSource(ctx context.Context, tenant *domain.Tenant, source string) CredentialCheckResult {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout())
	defer cancel()

	var err error
	switch source {
	case domain.SourceEmail:
		err = s.instantlyService.ValidateKey(ctx, tenant.APIKeys.Instantly)
	case domain.SourceLemlist:
		err = s.lemlistService.ValidateKey(ctx, lemlistclient.Credentials{
			Email:  tenant.APIKeys.LemlistAccountEmail,
			APIKey: tenant.APIKeys.Lemlist,
		})
	}

	result := CredentialCheckResult{
		Tenant:  tenant.Subdomain,
		Source:  source,
		Valid:   err == nil,
		Checked: time.Now(),
	}
	if err != nil {
		result.Error = err.Error()
	}

	return result
}

// Status snapshots the scheduler state for the cron inspection endpoint.
func (s *CredentialCheckService) Status() CredentialCheckStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := CredentialCheckStatus{
		Enabled:      s.cfg.CredentialCheck.Enabled,
		Running:      s.running,
		CronSchedule: s.cfg.CredentialCheck.CronSchedule,
		LastResults:  s.lastResults,
	}

	if !s.lastStartedAt.IsZero() {
		started := s.lastStartedAt
		status.LastStartedAt = &started
	}

	if !s.lastCompletedAt.IsZero() {
		completed := s.lastCompletedAt
		status.LastCompletedAt = &completed
	}

	return status
}
