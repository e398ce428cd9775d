package auth

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ResetCodeSweeper periodically unsets lapsed reset codes so stale secrets
// do not linger in the users collection. Verification never consults the
// sweeper; it checks expiry itself.
type ResetCodeSweeper struct {
	users  UserStore
	logger *zap.Logger
}

func NewResetCodeSweeper(users UserStore, logger *zap.Logger) *ResetCodeSweeper {
	return &ResetCodeSweeper{users: users, logger: logger}
}

// Start hooks the sweep loop to the fx lifecycle.
func (s *ResetCodeSweeper) Start(lc fx.Lifecycle) {
	ticker := time.NewTicker(time.Minute)
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.logger.Info("starting reset-code sweeper")
			go func() {
				for {
					select {
					case <-ticker.C:
						s.sweep()
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.logger.Info("stopping reset-code sweeper")
			ticker.Stop()
			close(done)
			return nil
		},
	})
}

func (s *ResetCodeSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cleared, err := s.users.ClearExpiredResetCodes(ctx, time.Now())
	if err != nil {
		s.logger.Error("reset-code sweep failed", zap.Error(err))
		return
	}
	if cleared > 0 {
		s.logger.Info("cleared expired reset codes", zap.Int64("count", cleared))
	}
}
