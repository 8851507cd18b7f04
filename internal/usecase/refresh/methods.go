package refresh

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"explorerCache/internal/domain"
)

// MaxFailuresLimit — верхняя граница выборки истории сбоев.
const MaxFailuresLimit = 500

// OnRefresh вызывается кэшем после каждого обновления. Ошибки только логируются: кэш от них не зависит.
func (u *UseCase) OnRefresh(ctx context.Context, report domain.RefreshReport) {
	if u.mirror != nil {
		for _, res := range report.Results {
			if !res.OK {
				continue
			}
			if err := u.withTimeout(ctx, func(ctx context.Context) error {
				return u.mirror.SetSlot(ctx, res.Slot, res.Value)
			}); err != nil {
				u.log.Warn("mirror slot", "slot", res.Slot, "seq", report.Seq, "error", err)
			}
		}
	}

	if failures := report.Failures(); u.repo != nil && len(failures) > 0 {
		if err := u.withTimeout(ctx, func(ctx context.Context) error {
			return u.repo.SaveFailures(ctx, failures)
		}); err != nil {
			u.log.Warn("save failures", "seq", report.Seq, "count", len(failures), "error", err)
		} else {
			u.log.Info("upstream failures saved", "seq", report.Seq, "count", len(failures))
		}
	}

	if u.broker != nil {
		value, err := json.Marshal(report)
		if err != nil {
			u.log.Error("marshal refresh report", "seq", report.Seq, "error", err)
			return
		}
		key := []byte(strconv.FormatUint(report.Seq, 10))
		if err := u.withTimeout(ctx, func(ctx context.Context) error {
			return u.broker.Send(ctx, key, value)
		}); err != nil {
			u.log.Warn("broker send", "seq", report.Seq, "error", err)
		}
	}
}

// Failures — последние сбои апстрима, новые сначала.
func (u *UseCase) Failures(ctx context.Context, limit int) ([]domain.RefreshRecord, error) {
	if u.repo == nil {
		return nil, domain.ErrHistoryDisabled
	}
	if limit <= 0 || limit > MaxFailuresLimit {
		return nil, fmt.Errorf("%w: must be in 1..%d, got %d", domain.ErrInvalidLimit, MaxFailuresLimit, limit)
	}
	return u.repo.Failures(ctx, limit)
}

// HandleRefreshEvent вызывается консьюмером при получении отчёта из топика (часть IRefreshUseCase).
func (u *UseCase) HandleRefreshEvent(ctx context.Context, report domain.RefreshReport) error {
	if u.analytics == nil {
		return nil
	}
	if err := u.analytics.WriteRefresh(ctx, report); err != nil {
		u.log.Warn("analytics write", "seq", report.Seq, "error", err)
		return err
	}
	u.log.Debug("refresh stored to click", "seq", report.Seq, "results", len(report.Results))
	return nil
}

func (u *UseCase) withTimeout(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	return fn(ctx)
}
