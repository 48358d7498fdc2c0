package service

import (
	"time"

	"github.com/go-co-op/gocron"
	"github.com/lequan2902/codeprep/config"
	"github.com/lequan2902/codeprep/internal/model"
	"github.com/lequan2902/codeprep/internal/repository"
	"github.com/rs/zerolog/log"
)

// JanitorService periodically abandons active sessions whose start time is
// older than the configured cutoff. Clients that vanish mid-practice would
// otherwise leave sessions active forever.
type JanitorService interface {
	Start()
	Stop()
}

type janitorService struct {
	sessionRepo repository.SessionRepository
	scheduler   *gocron.Scheduler
	maxAge      time.Duration
	interval    time.Duration
}

func NewJanitorService(sessionRepo repository.SessionRepository, cfg *config.Config) JanitorService {
	return &janitorService{
		sessionRepo: sessionRepo,
		scheduler:   gocron.NewScheduler(time.UTC),
		maxAge:      time.Duration(cfg.Janitor.MaxSessionAgeMinutes) * time.Minute,
		interval:    time.Duration(cfg.Janitor.SweepIntervalMinutes) * time.Minute,
	}
}

func (j *janitorService) Start() {
	j.scheduler.Every(j.interval).Do(j.sweep)
	j.scheduler.StartAsync()
	log.Info().Dur("interval", j.interval).Dur("maxAge", j.maxAge).Msg("Session janitor started")
}

func (j *janitorService) Stop() {
	j.scheduler.Stop()
}

func (j *janitorService) sweep() {
	cutoff := time.Now().Add(-j.maxAge)
	stale, err := j.sessionRepo.FindStaleActive(cutoff)
	if err != nil {
		log.Error().Err(err).Msg("Janitor sweep: failed to scan for stale sessions")
		return
	}
	if len(stale) == 0 {
		return
	}

	abandoned := 0
	for i := range stale {
		session := &stale[i]
		now := time.Now()
		session.Status = model.SessionStatusAbandoned
		session.EndTime = &now
		if err := j.sessionRepo.Update(session); err != nil {
			log.Error().Err(err).Str("sessionID", session.ID).Msg("Janitor sweep: failed to abandon session")
			continue
		}
		abandoned++
	}
	log.Info().Int("abandoned", abandoned).Int("found", len(stale)).Msg("Janitor sweep finished")
}
