// Package cron schedules background maintenance jobs.
package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/shopgrid/admin-api/internal/core/ports"
)

const sweepTimeout = 30 * time.Second

// Sweeper runs the coupon expiry sweep on a cron schedule.
type Sweeper struct {
	cron    *cron.Cron
	coupons ports.CouponService
	log     zerolog.Logger
}

func NewSweeper(coupons ports.CouponService, log zerolog.Logger) *Sweeper {
	return &Sweeper{cron: cron.New(), coupons: coupons, log: log}
}

// Start registers the sweep under spec (e.g. "@every 10m") and starts the
// scheduler. The first sweep runs immediately so a restart never leaves
// expired coupons active for a full interval.
func (s *Sweeper) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	go s.sweep()
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := s.coupons.SweepExpired(ctx); err != nil {
		s.log.Error().Err(err).Msg("scheduled coupon sweep failed")
	}
}
