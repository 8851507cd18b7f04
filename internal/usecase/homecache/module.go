package homecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"explorerCache/internal/domain"
	"explorerCache/internal/ports"
)

// DefaultInterval — период опроса апстрима.
const DefaultInterval = time.Second

// notifyQueue — сколько отчётов может ждать слушателя. Сверх этого отчёты отбрасываются.
const notifyQueue = 4

var (
	// ErrNoSources — кэш без слотов бессмысленен.
	ErrNoSources = errors.New("homecache: no sources")
	// ErrAlreadyStarted — Start вызывают один раз за жизнь кэша.
	ErrAlreadyStarted = errors.New("homecache: already started")
)

var _ ports.IHomeCache = (*Cache)(nil)

// Source связывает слот с апстримом, который его наполняет.
type Source struct {
	Slot     domain.Slot
	Upstream ports.IUpstream
}

// Option настраивает кэш при создании.
type Option func(*Cache)

// WithInterval задаёт период обновления.
func WithInterval(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithClock подменяет часы (в тестах — clockwork.NewFakeClock()).
func WithClock(clock clockwork.Clock) Option {
	return func(c *Cache) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithMetrics подключает счётчики кэша.
func WithMetrics(m ports.ICacheMetrics) Option {
	return func(c *Cache) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithListener подключает получателя отчётов об обновлениях.
// Отчёты доставляются по одному в отдельной горутине: ни обновление, ни читатели слушателя не ждут.
func WithListener(l ports.IRefreshListener) Option {
	return func(c *Cache) {
		c.listener = l
	}
}

// WithWarmOnStart — первое обновление сразу при Start, не дожидаясь тика.
func WithWarmOnStart() Option {
	return func(c *Cache) {
		c.warmOnStart = true
	}
}

// Cache — опрашивающий кэш агрегатов главной страницы.
// Обновляет все слоты по таймеру и отдаёт последний удачный снимок без ожидания апстрима.
// Неудачный запрос оставляет прежнее значение слота: слот, однажды наполненный, пустым уже не станет.
type Cache struct {
	slots       []*slot
	bySlot      map[domain.Slot]*slot
	interval    time.Duration
	clock       clockwork.Clock
	metrics     ports.ICacheMetrics
	listener    ports.IRefreshListener
	warmOnStart bool
	log         *slog.Logger

	// flight не даёт обновлениям перекрываться: тик и холодные читатели делят одно обновление.
	flight    singleflight.Group
	seq       atomic.Uint64
	refreshes atomic.Uint64

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	// слушатель работает в своей горутине, запускается при первом отчёте
	notifyMu     sync.Mutex
	notifyClosed bool
	reports      chan domain.RefreshReport
	notifyDone   chan struct{}
}

// New создаёт кэш. Таймер не запускается, пока не вызван Start.
func New(sources []Source, log *slog.Logger, opts ...Option) (*Cache, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if log == nil {
		log = slog.Default()
	}
	c := &Cache{
		bySlot:   make(map[domain.Slot]*slot, len(sources)),
		interval: DefaultInterval,
		clock:    clockwork.NewRealClock(),
		metrics:  noopMetrics{},
		log:      log,
	}
	for _, src := range sources {
		if src.Upstream == nil {
			return nil, fmt.Errorf("homecache: nil upstream for slot %q", src.Slot)
		}
		if _, dup := c.bySlot[src.Slot]; dup {
			return nil, fmt.Errorf("homecache: duplicate slot %q", src.Slot)
		}
		s := &slot{name: src.Slot, upstream: src.Upstream}
		c.slots = append(c.slots, s)
		c.bySlot[src.Slot] = s
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// slot — одна ячейка кэша. Значение меняется только заменой указателя целиком.
type slot struct {
	name     domain.Slot
	upstream ports.IUpstream

	entry       atomic.Pointer[entry]
	lastErr     atomic.Pointer[failure]
	failures    atomic.Uint64
	consecutive atomic.Uint64
}

type entry struct {
	value     json.RawMessage
	seq       uint64
	updatedAt time.Time
}

type failure struct {
	msg string
	at  time.Time
}

// store кладёт значение, только если оно из более нового обновления. wasCold — слот был пуст до этого.
func (s *slot) store(e *entry) (stored, wasCold bool) {
	for {
		cur := s.entry.Load()
		if cur != nil && cur.seq >= e.seq {
			return false, false
		}
		if s.entry.CompareAndSwap(cur, e) {
			return true, cur == nil
		}
	}
}

// fail фиксирует сбой и возвращает число сбоев подряд.
func (s *slot) fail(err error, at time.Time) uint64 {
	s.failures.Add(1)
	s.lastErr.Store(&failure{msg: err.Error(), at: at})
	return s.consecutive.Add(1)
}

func (s *slot) status() domain.SlotStatus {
	st := domain.SlotStatus{
		Slot:                s.name,
		Failures:            s.failures.Load(),
		ConsecutiveFailures: s.consecutive.Load(),
	}
	if e := s.entry.Load(); e != nil {
		st.Warm = true
		st.Seq = e.seq
		st.UpdatedAt = e.updatedAt
	}
	if f := s.lastErr.Load(); f != nil {
		st.LastError = f.msg
		st.LastErrorAt = f.at
	}
	return st
}

type noopMetrics struct{}

func (noopMetrics) RefreshCompleted(time.Duration)                {}
func (noopMetrics) FetchObserved(domain.Slot, bool, time.Duration) {}
func (noopMetrics) SlotWarmed(domain.Slot)                        {}
