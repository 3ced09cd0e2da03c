package usecase

import (
	"context"
	"time"

	"github.com/shophub/backend/internal/domain"
)

// Remaining returns the time left until end, clamped at zero once the
// deal has expired.
func Remaining(now, end time.Time) time.Duration {
	d := end.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Progress returns how far through [start, end] now is, as a percentage
// clamped to [0, 100].
func Progress(now, start, end time.Time) float64 {
	total := end.Sub(start)
	if total <= 0 {
		return 100
	}
	p := float64(now.Sub(start)) / float64(total) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// DealView is a flash deal together with its countdown state
type DealView struct {
	domain.FlashDeal
	RemainingSeconds int     `json:"remainingSeconds"`
	Progress         float64 `json:"progress"`
	Expired          bool    `json:"expired"`
}

// DealsService serves the time-limited flash deals built from the
// sale-flagged products in the catalog
type DealsService struct {
	catalog domain.Catalog
	now     func() time.Time
	window  time.Duration

	started time.Time
}

// NewDealsService creates a deals service. Deal windows open at
// construction time and close one window apart per deal. now is
// injectable for tests; nil selects the real clock.
func NewDealsService(catalog domain.Catalog, window time.Duration, now func() time.Time) *DealsService {
	if now == nil {
		now = time.Now
	}
	if window <= 0 {
		window = 4 * time.Hour
	}
	return &DealsService{
		catalog: catalog,
		now:     now,
		window:  window,
		started: now(),
	}
}

// Deals returns the current flash deals with remaining time and progress
// recomputed from the fixed end timestamps.
func (s *DealsService) Deals(ctx context.Context) ([]DealView, error) {
	products, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := []DealView{}
	n := 0
	for _, p := range products {
		if !p.IsSale {
			continue
		}
		end := s.started.Add(s.window + time.Duration(n)*time.Hour)
		n++

		remaining := Remaining(now, end)
		views = append(views, DealView{
			FlashDeal: domain.FlashDeal{
				Product: p,
				EndTime: end,
				Sold:    p.ReviewCount % 50,
				Stock:   100,
			},
			RemainingSeconds: int(remaining / time.Second),
			Progress:         Progress(now, s.started, end),
			Expired:          remaining == 0,
		})
	}

	return views, nil
}

// Countdown is a recurring tick loop owned by a single view. Stop must
// be called when the view unmounts so no ticker goroutine leaks.
type Countdown struct {
	ticker *time.Ticker
	quit   chan struct{}
	done   chan struct{}
}

// StartCountdown invokes fn once per interval with the current tick time
// until Stop is called.
func StartCountdown(interval time.Duration, fn func(now time.Time)) *Countdown {
	c := &Countdown{
		ticker: time.NewTicker(interval),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(c.done)
		for {
			select {
			case now := <-c.ticker.C:
				fn(now)
			case <-c.quit:
				return
			}
		}
	}()

	return c
}

// Stop tears the countdown down and waits for its loop to exit
func (c *Countdown) Stop() {
	c.ticker.Stop()
	close(c.quit)
	<-c.done
}
