package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"inventory-tracker/internal/inventory/repository"
	"inventory-tracker/pkg/log"
)

const (
	defaultSuccessTTL = 5 * time.Second

	// pendingExpiryCap bounds the expiry cache. Success notifications live
	// for seconds, so the cap is never a practical limit.
	pendingExpiryCap = 128
)

// Config holds the fixed values of the inventory engine.
type Config struct {
	// EscalationContact is named in low-stock alert details.
	EscalationContact string
	// SuccessNotificationTTL is how long a success notification stays before
	// auto-dismissal. Defaults to 5 seconds.
	SuccessNotificationTTL time.Duration
}

// implUseCase is the private implementation of inventory.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	cfg  Config

	// mu serializes mutating operations so each mutate, alert recompute and
	// history append sequence completes before the next caller observes
	// state. A failed operation returns before any mutation.
	mu sync.Mutex

	// expiry schedules auto-removal of success notifications. Eviction
	// (TTL or explicit Remove) drops the notification from the repository;
	// removal of an absent id is a no-op, so a manual dismissal racing the
	// timer is harmless. The eviction callback must never take mu: Create
	// adds entries and Dismiss evicts them while holding it.
	expiry *expirable.LRU[string, struct{}]
}

// New creates a new inventory UseCase implementation.
func New(repo repository.Repository, l log.Logger, cfg Config) *implUseCase {
	if cfg.SuccessNotificationTTL <= 0 {
		cfg.SuccessNotificationTTL = defaultSuccessTTL
	}

	uc := &implUseCase{
		repo: repo,
		l:    l,
		cfg:  cfg,
	}
	uc.expiry = expirable.NewLRU[string, struct{}](
		pendingExpiryCap,
		func(id string, _ struct{}) {
			_ = repo.RemoveNotification(context.Background(), id)
		},
		cfg.SuccessNotificationTTL,
	)
	return uc
}
