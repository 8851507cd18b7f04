package homecache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"explorerCache/internal/domain"
)

const refreshKey = "refresh"

// Read возвращает текущий снимок всех слотов.
// Пока ни один слот не наполнен, сначала синхронно обновляет кэш: задержку апстрима платит только первый читатель.
func (c *Cache) Read(ctx context.Context) domain.Snapshot {
	c.warmUp(ctx)
	return c.snapshot()
}

// Slot возвращает значение одного слота; nil — слот ещё холодный.
func (c *Cache) Slot(ctx context.Context, name domain.Slot) (json.RawMessage, error) {
	s, ok := c.bySlot[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSlot, name)
	}
	c.warmUp(ctx)
	if e := s.entry.Load(); e != nil {
		return e.value, nil
	}
	return nil, nil
}

// Refresh опрашивает все слоты параллельно. Ошибки не возвращаются: слот просто остаётся прежним.
// Если обновление уже идёт, вызов дожидается его, а не запускает второе.
func (c *Cache) Refresh(ctx context.Context) {
	c.flight.Do(refreshKey, func() (any, error) {
		c.refresh(ctx)
		return nil, nil
	})
}

// Cold — ни один слот ещё ни разу не был наполнен.
func (c *Cache) Cold() bool {
	for _, s := range c.slots {
		if s.entry.Load() != nil {
			return false
		}
	}
	return true
}

// Status отдаёт счётчики сбоев и время последнего обновления по каждому слоту.
func (c *Cache) Status() domain.CacheStatus {
	st := domain.CacheStatus{
		Refreshes: c.refreshes.Load(),
		Slots:     make([]domain.SlotStatus, 0, len(c.slots)),
	}
	for _, s := range c.slots {
		st.Slots = append(st.Slots, s.status())
	}
	return st
}

// Start запускает периодическое обновление до отмены ctx или вызова Stop.
func (c *Cache) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done != nil {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	// тикер создаём до горутины, чтобы фейковые часы в тестах видели его сразу после Start
	ticker := c.clock.NewTicker(c.interval)
	go c.loop(ctx, ticker, c.done)

	c.log.Info("home cache started", "interval", c.interval.String(), "slots", len(c.slots))
	return nil
}

// Stop останавливает таймер, ждёт завершения текущего обновления и доставки уже принятых отчётов.
// Отчёты обновлений после Stop слушателю не передаются.
func (c *Cache) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.mu.Unlock()
	if cancel != nil {
		cancel()
		<-done
	}
	c.stopNotify()
}

// loop — единственный источник периодических обновлений. Пока обновление идёт, тикер теряет тики, а не копит их.
func (c *Cache) loop(ctx context.Context, ticker clockwork.Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	if c.warmOnStart {
		c.Refresh(ctx)
	}
	for {
		select {
		case <-ctx.Done():
			c.log.Info("home cache stopped")
			return
		case <-ticker.Chan():
			c.Refresh(ctx)
		}
	}
}

// warmUp обновляет кэш, только пока он холодный. Отмена запроса читателя не обрывает общее обновление.
func (c *Cache) warmUp(ctx context.Context) {
	if !c.Cold() {
		return
	}
	ctx = context.WithoutCancel(ctx)
	c.flight.Do(refreshKey, func() (any, error) {
		// пока ждали своей очереди, кэш мог прогреться
		if c.Cold() {
			c.refresh(ctx)
		}
		return nil, nil
	})
}

func (c *Cache) snapshot() domain.Snapshot {
	snap := make(domain.Snapshot, len(c.slots))
	for _, s := range c.slots {
		var value json.RawMessage
		if e := s.entry.Load(); e != nil {
			value = e.value
		}
		snap[s.name] = value
	}
	return snap
}

func (c *Cache) refresh(ctx context.Context) {
	seq := c.seq.Add(1)
	started := c.clock.Now()

	results := make([]domain.SlotResult, len(c.slots))
	var g errgroup.Group
	for i, s := range c.slots {
		i, s := i, s
		g.Go(func() error {
			results[i] = c.fetch(ctx, s, seq)
			return nil
		})
	}
	_ = g.Wait()

	report := domain.RefreshReport{
		Seq:       seq,
		StartedAt: started,
		Duration:  c.clock.Since(started),
		Results:   results,
	}
	c.refreshes.Add(1)
	c.metrics.RefreshCompleted(report.Duration)
	c.log.Debug("home cache refreshed", "seq", seq, "latency_ms", report.Duration.Milliseconds())

	c.notify(report)
}

// notify ставит отчёт в очередь слушателя и сразу возвращается.
func (c *Cache) notify(report domain.RefreshReport) {
	if c.listener == nil {
		return
	}
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if c.notifyClosed {
		return
	}
	if c.reports == nil {
		c.reports = make(chan domain.RefreshReport, notifyQueue)
		c.notifyDone = make(chan struct{})
		go c.notifyLoop(c.reports, c.notifyDone)
	}
	select {
	case c.reports <- report:
	default:
		c.log.Warn("refresh listener is behind, report dropped", "seq", report.Seq, "queue", notifyQueue)
	}
}

// notifyLoop отдаёт отчёты слушателю по порядку. Контекст не связан с обновлением:
// отчёт, принятый до Stop, доставляется целиком, сроки шагов ограничивает сам слушатель.
func (c *Cache) notifyLoop(reports <-chan domain.RefreshReport, done chan<- struct{}) {
	defer close(done)
	for report := range reports {
		c.listener.OnRefresh(context.Background(), report)
	}
}

func (c *Cache) stopNotify() {
	c.notifyMu.Lock()
	c.notifyClosed = true
	reports, done := c.reports, c.notifyDone
	c.reports = nil
	c.notifyMu.Unlock()
	if reports == nil {
		return
	}
	close(reports)
	<-done
}

func (c *Cache) fetch(ctx context.Context, s *slot, seq uint64) (res domain.SlotResult) {
	res.Slot = s.name
	start := c.clock.Now()

	value, err := c.call(ctx, s)
	res.Latency = c.clock.Since(start)
	if err == nil && len(value) == 0 {
		err = domain.ErrEmptyValue
	}
	c.metrics.FetchObserved(s.name, err == nil, res.Latency)

	if err != nil {
		n := s.fail(err, c.clock.Now())
		res.Error = err.Error()
		c.log.Warn("upstream fetch failed",
			"slot", s.name,
			"seq", seq,
			"consecutive_failures", n,
			"warm", s.entry.Load() != nil,
			"error", err,
		)
		return res
	}

	s.consecutive.Store(0)
	res.OK = true
	res.Value = value
	stored, wasCold := s.store(&entry{value: value, seq: seq, updatedAt: c.clock.Now()})
	if stored && wasCold {
		c.metrics.SlotWarmed(s.name)
		c.log.Info("slot warmed", "slot", s.name, "seq", seq)
	}
	return res
}

// call защищает обновление от паники в апстриме.
func (c *Cache) call(ctx context.Context, s *slot) (value json.RawMessage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("upstream panic: %v", r)
		}
	}()
	return s.upstream.Fetch(ctx)
}
