package homecache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"explorerCache/internal/domain"
	"explorerCache/internal/mocks"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeUpstream считает вызовы и отвечает тем, что в него положили. gate, если задан, держит ответ.
type fakeUpstream struct {
	mu    sync.Mutex
	calls int
	value json.RawMessage
	err   error
	gate  chan struct{}
	panic bool
}

func okUpstream(v string) *fakeUpstream {
	return &fakeUpstream{value: json.RawMessage(v)}
}

func failingUpstream(err error) *fakeUpstream {
	return &fakeUpstream{err: err}
}

func (f *fakeUpstream) Fetch(ctx context.Context) (json.RawMessage, error) {
	f.mu.Lock()
	f.calls++
	value, err, gate, p := f.value, f.err, f.gate, f.panic
	f.mu.Unlock()

	if p {
		panic("upstream exploded")
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return value, err
}

func (f *fakeUpstream) set(v string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = json.RawMessage(v)
	f.err = err
}

func (f *fakeUpstream) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// blockingListener держит каждый отчёт, пока тест не вызовет unblock.
type blockingListener struct {
	release chan struct{}
	once    sync.Once
	mu      sync.Mutex
	seqs    []uint64
}

func newBlockingListener() *blockingListener {
	return &blockingListener{release: make(chan struct{})}
}

func (l *blockingListener) OnRefresh(_ context.Context, report domain.RefreshReport) {
	<-l.release
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seqs = append(l.seqs, report.Seq)
}

func (l *blockingListener) unblock() {
	l.once.Do(func() { close(l.release) })
}

func (l *blockingListener) Seqs() []uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]uint64(nil), l.seqs...)
}

func newTestCache(t *testing.T, home, lists *fakeUpstream, opts ...Option) *Cache {
	t.Helper()
	c, err := New([]Source{
		{Slot: domain.SlotHome, Upstream: home},
		{Slot: domain.SlotHomeLists, Upstream: lists},
	}, newTestLogger(), opts...)
	require.NoError(t, err)
	t.Cleanup(c.Stop)
	return c
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, newTestLogger())
	assert.ErrorIs(t, err, ErrNoSources)

	_, err = New([]Source{{Slot: domain.SlotHome}}, newTestLogger())
	assert.Error(t, err, "апстрим обязателен")

	up := okUpstream(`1`)
	_, err = New([]Source{
		{Slot: domain.SlotHome, Upstream: up},
		{Slot: domain.SlotHome, Upstream: up},
	}, newTestLogger())
	assert.Error(t, err, "слоты не должны повторяться")
}

// Холодный старт: первый Read наполняет оба слота.
func TestRead_ColdStart(t *testing.T) {
	home, lists := okUpstream(`{"blocks":10}`), okUpstream(`{"txs":[]}`)
	c := newTestCache(t, home, lists)

	snap := c.Read(context.Background())

	assert.JSONEq(t, `{"blocks":10}`, string(snap[domain.SlotHome]))
	assert.JSONEq(t, `{"txs":[]}`, string(snap[domain.SlotHomeLists]))
	assert.Equal(t, 1, home.Calls())
	assert.Equal(t, 1, lists.Calls())
	assert.False(t, c.Cold())
}

// Холодный старт со сбоем: оба слота пустые, паники и ошибки нет.
func TestRead_ColdStartFailure(t *testing.T) {
	home, lists := failingUpstream(errors.New("down")), failingUpstream(errors.New("down"))
	c := newTestCache(t, home, lists)

	var snap domain.Snapshot
	require.NotPanics(t, func() { snap = c.Read(context.Background()) })

	require.Len(t, snap, 2, "холодные слоты всё равно присутствуют в снимке")
	assert.Nil(t, snap[domain.SlotHome])
	assert.Nil(t, snap[domain.SlotHomeLists])
	assert.True(t, c.Cold())

	st := c.Status()
	assert.Equal(t, uint64(1), st.Refreshes)
	for _, s := range st.Slots {
		assert.False(t, s.Warm)
		assert.Equal(t, uint64(1), s.Failures)
		assert.Equal(t, "down", s.LastError)
	}
}

// Пока кэш холодный, каждый Read пробует снова.
func TestRead_ColdRetriesUntilWarm(t *testing.T) {
	home, lists := failingUpstream(errors.New("down")), failingUpstream(errors.New("down"))
	c := newTestCache(t, home, lists)

	c.Read(context.Background())
	home.set(`"h"`, nil)
	snap := c.Read(context.Background())

	assert.Equal(t, json.RawMessage(`"h"`), snap[domain.SlotHome])
	assert.Nil(t, snap[domain.SlotHomeLists])
	assert.Equal(t, 2, lists.Calls())

	// один тёплый слот — кэш уже не холодный, Read больше не ходит в апстрим
	c.Read(context.Background())
	assert.Equal(t, 2, home.Calls())
}

// Сбой слота оставляет прежнее значение, соседний слот обновляется.
func TestRefresh_StaleOnFailure(t *testing.T) {
	home, lists := okUpstream(`"home-v1"`), okUpstream(`"lists-v1"`)
	c := newTestCache(t, home, lists)
	c.Refresh(context.Background())

	home.set("", errors.New("timeout"))
	lists.set(`"lists-v2"`, nil)
	c.Refresh(context.Background())

	snap := c.Read(context.Background())
	assert.Equal(t, json.RawMessage(`"home-v1"`), snap[domain.SlotHome])
	assert.Equal(t, json.RawMessage(`"lists-v2"`), snap[domain.SlotHomeLists])

	st := c.Status()
	require.Len(t, st.Slots, 2)
	assert.Equal(t, domain.SlotHome, st.Slots[0].Slot)
	assert.True(t, st.Slots[0].Warm)
	assert.Equal(t, uint64(1), st.Slots[0].Seq, "значение осталось от первого обновления")
	assert.Equal(t, uint64(1), st.Slots[0].ConsecutiveFailures)
	assert.Equal(t, "timeout", st.Slots[0].LastError)
	assert.Equal(t, uint64(2), st.Slots[1].Seq)
	assert.Zero(t, st.Slots[1].ConsecutiveFailures)
}

// Успех сбрасывает счётчик сбоев подряд, общий счётчик остаётся.
func TestRefresh_RecoveryResetsConsecutive(t *testing.T) {
	home, lists := failingUpstream(errors.New("down")), okUpstream(`1`)
	c := newTestCache(t, home, lists)
	c.Refresh(context.Background())
	c.Refresh(context.Background())

	home.set(`"back"`, nil)
	c.Refresh(context.Background())

	st := c.Status().Slots[0]
	assert.True(t, st.Warm)
	assert.Equal(t, uint64(2), st.Failures)
	assert.Zero(t, st.ConsecutiveFailures)
}

// В тёплом состоянии Read не ходит в апстрим.
func TestRead_WarmDoesNotFetch(t *testing.T) {
	home, lists := okUpstream(`1`), okUpstream(`2`)
	c := newTestCache(t, home, lists)
	c.Read(context.Background())

	for i := 0; i < 10; i++ {
		c.Read(context.Background())
		_, err := c.Slot(context.Background(), domain.SlotHomeLists)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, home.Calls())
	assert.Equal(t, 1, lists.Calls())
}

// Два Read подряд без обновления отдают одинаковые снимки.
func TestRead_Idempotent(t *testing.T) {
	c := newTestCache(t, okUpstream(`{"a":[1,2]}`), okUpstream(`{"b":null}`))

	first := c.Read(context.Background())
	second := c.Read(context.Background())

	assert.Equal(t, first, second)
}

// Одновременные холодные читатели делят одно обновление.
func TestRead_ConcurrentColdReadersShareRefresh(t *testing.T) {
	home, lists := okUpstream(`1`), okUpstream(`2`)
	gate := make(chan struct{})
	home.gate = gate
	c := newTestCache(t, home, lists)

	const readers = 16
	var wg sync.WaitGroup
	snaps := make([]domain.Snapshot, readers)
	for i := 0; i < readers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			snaps[i] = c.Read(context.Background())
		}()
	}

	require.Eventually(t, func() bool { return home.Calls() == 1 }, time.Second, time.Millisecond)
	close(gate)
	wg.Wait()

	assert.Equal(t, 1, home.Calls())
	assert.Equal(t, 1, lists.Calls())
	for _, snap := range snaps {
		assert.Equal(t, json.RawMessage(`1`), snap[domain.SlotHome])
	}
}

// Отмена запроса холодного читателя не обрывает обновление.
func TestRead_CancelledReaderStillWarmsCache(t *testing.T) {
	c := newTestCache(t, okUpstream(`1`), okUpstream(`2`))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap := c.Read(ctx)

	assert.Equal(t, json.RawMessage(`1`), snap[domain.SlotHome])
}

func TestRefresh_UpstreamPanicIsSwallowed(t *testing.T) {
	home := &fakeUpstream{panic: true}
	lists := okUpstream(`"ok"`)
	c := newTestCache(t, home, lists)

	require.NotPanics(t, func() { c.Refresh(context.Background()) })

	snap := c.Read(context.Background())
	assert.Nil(t, snap[domain.SlotHome])
	assert.Equal(t, json.RawMessage(`"ok"`), snap[domain.SlotHomeLists])
	assert.Contains(t, c.Status().Slots[0].LastError, "upstream panic")
}

// Пустой ответ без ошибки считается сбоем и не делает слот снова холодным.
func TestRefresh_EmptyValueKeepsSlot(t *testing.T) {
	home, lists := okUpstream(`"v1"`), okUpstream(`1`)
	c := newTestCache(t, home, lists)
	c.Refresh(context.Background())

	home.set("", nil)
	c.Refresh(context.Background())

	got, err := c.Slot(context.Background(), domain.SlotHome)
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`"v1"`), got)
	assert.Equal(t, domain.ErrEmptyValue.Error(), c.Status().Slots[0].LastError)
}

func TestSlot_Unknown(t *testing.T) {
	home := okUpstream(`1`)
	c := newTestCache(t, home, okUpstream(`2`))

	_, err := c.Slot(context.Background(), "blocks")

	assert.ErrorIs(t, err, domain.ErrUnknownSlot)
	assert.Zero(t, home.Calls(), "неизвестный слот не должен греть кэш")
}

// Более старое значение не перетирает более новое.
func TestSlotStore_NewestWins(t *testing.T) {
	s := &slot{name: domain.SlotHome}

	stored, wasCold := s.store(&entry{value: json.RawMessage(`2`), seq: 2})
	assert.True(t, stored)
	assert.True(t, wasCold)

	stored, _ = s.store(&entry{value: json.RawMessage(`1`), seq: 1})
	assert.False(t, stored)
	assert.Equal(t, json.RawMessage(`2`), s.entry.Load().value)

	stored, wasCold = s.store(&entry{value: json.RawMessage(`3`), seq: 3})
	assert.True(t, stored)
	assert.False(t, wasCold)
}

// За N интервалов апстрим вызывается ровно N раз.
func TestStart_Periodicity(t *testing.T) {
	clock := clockwork.NewFakeClock()
	home, lists := okUpstream(`1`), okUpstream(`2`)
	c := newTestCache(t, home, lists, WithClock(clock), WithInterval(time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.Start(ctx))
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	assert.Zero(t, home.Calls(), "до первого тика апстрим не вызывается")

	const ticks = 5
	for i := 1; i <= ticks; i++ {
		clock.Advance(time.Second)
		require.Eventually(t, func() bool {
			return home.Calls() == i && lists.Calls() == i
		}, time.Second, time.Millisecond, "тик %d", i)
	}

	c.Stop()
	assert.Equal(t, ticks, home.Calls())
	assert.Equal(t, ticks, lists.Calls())
	assert.Equal(t, uint64(ticks), c.Status().Refreshes)
}

func TestStart_WarmOnStart(t *testing.T) {
	clock := clockwork.NewFakeClock()
	home, lists := okUpstream(`1`), okUpstream(`2`)
	c := newTestCache(t, home, lists, WithClock(clock), WithWarmOnStart())

	require.NoError(t, c.Start(context.Background()))

	require.Eventually(t, func() bool { return !c.Cold() }, time.Second, time.Millisecond)
	assert.Equal(t, 1, home.Calls())
}

func TestStart_Twice(t *testing.T) {
	c := newTestCache(t, okUpstream(`1`), okUpstream(`2`), WithClock(clockwork.NewFakeClock()))

	require.NoError(t, c.Start(context.Background()))
	assert.ErrorIs(t, c.Start(context.Background()), ErrAlreadyStarted)
}

// Stop прерывает зависшее обновление: запрос получает отмену контекста.
func TestStop_CancelsInFlightRefresh(t *testing.T) {
	clock := clockwork.NewFakeClock()
	home, lists := okUpstream(`1`), okUpstream(`2`)
	home.gate = make(chan struct{})
	c := newTestCache(t, home, lists, WithClock(clock))

	ctx := context.Background()
	require.NoError(t, c.Start(ctx))
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Second)
	require.Eventually(t, func() bool { return home.Calls() == 1 }, time.Second, time.Millisecond)

	c.Stop()

	st := c.Status().Slots[0]
	assert.False(t, st.Warm)
	assert.Contains(t, st.LastError, context.Canceled.Error())
}

func TestStop_WithoutStart(t *testing.T) {
	c := newTestCache(t, okUpstream(`1`), okUpstream(`2`))
	assert.NotPanics(t, c.Stop)
}

func TestRefresh_NotifiesListener(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mocks.NewMockIRefreshListener(ctrl)

	reports := make(chan domain.RefreshReport, 1)
	listener.EXPECT().
		OnRefresh(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, r domain.RefreshReport) { reports <- r }).
		Times(1)

	c := newTestCache(t, okUpstream(`"h"`), failingUpstream(errors.New("lists down")), WithListener(listener))
	c.Refresh(context.Background())

	var got domain.RefreshReport
	select {
	case got = <-reports:
	case <-time.After(time.Second):
		t.Fatal("слушатель не получил отчёт")
	}
	assert.Equal(t, uint64(1), got.Seq)
	require.Len(t, got.Results, 2)
	assert.Equal(t, domain.SlotResult{Slot: domain.SlotHome, OK: true, Value: json.RawMessage(`"h"`), Latency: got.Results[0].Latency}, got.Results[0])
	assert.False(t, got.Results[1].OK)
	assert.Equal(t, "lists down", got.Results[1].Error)
}

// SlotWarmed срабатывает один раз на переход слота из холодного в тёплый.
func TestRefresh_MetricsSlotWarmedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockICacheMetrics(ctrl)

	m.EXPECT().RefreshCompleted(gomock.Any()).Times(3)
	m.EXPECT().FetchObserved(domain.SlotHome, true, gomock.Any()).Times(3)
	m.EXPECT().FetchObserved(domain.SlotHomeLists, false, gomock.Any()).Times(3)
	m.EXPECT().SlotWarmed(domain.SlotHome).Times(1)

	c := newTestCache(t, okUpstream(`1`), failingUpstream(errors.New("down")), WithMetrics(m))
	for i := 0; i < 3; i++ {
		c.Refresh(context.Background())
	}
}

// Зависший слушатель не задерживает ни холодное чтение, ни тики.
func TestRefresh_ListenerDoesNotBlockReadersAndTicks(t *testing.T) {
	listener := newBlockingListener()
	defer listener.unblock()
	clock := clockwork.NewFakeClock()
	home, lists := okUpstream(`1`), okUpstream(`2`)
	c := newTestCache(t, home, lists, WithClock(clock), WithListener(listener))

	read := make(chan domain.Snapshot, 1)
	go func() { read <- c.Read(context.Background()) }()
	select {
	case snap := <-read:
		assert.Equal(t, json.RawMessage(`1`), snap[domain.SlotHome])
	case <-time.After(time.Second):
		t.Fatal("холодное чтение ждёт слушателя")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.Start(ctx))
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	for i := 2; i <= 4; i++ {
		clock.Advance(time.Second)
		require.Eventually(t, func() bool {
			return home.Calls() == i && lists.Calls() == i
		}, time.Second, time.Millisecond, "тик %d", i)
	}
	assert.Empty(t, listener.Seqs(), "слушатель всё ещё занят первым отчётом")

	listener.unblock()
	require.Eventually(t, func() bool { return len(listener.Seqs()) == 4 }, time.Second, time.Millisecond)
	assert.Equal(t, []uint64{1, 2, 3, 4}, listener.Seqs(), "отчёты доставляются по порядку")
}

// Переполненная очередь отбрасывает новые отчёты, Stop дожидается уже принятых.
func TestRefresh_ListenerQueueOverflow(t *testing.T) {
	listener := newBlockingListener()
	c := newTestCache(t, okUpstream(`1`), okUpstream(`2`), WithListener(listener))

	// первый отчёт забирает горутина слушателя, notifyQueue ждут в очереди, остальные теряются
	c.Refresh(context.Background())
	require.Eventually(t, func() bool {
		c.notifyMu.Lock()
		defer c.notifyMu.Unlock()
		return len(c.reports) == 0
	}, time.Second, time.Millisecond)

	total := 1 + notifyQueue + 2
	for i := 1; i < total; i++ {
		c.Refresh(context.Background())
	}
	assert.Equal(t, uint64(total), c.Status().Refreshes)

	listener.unblock()
	c.Stop()

	assert.Len(t, listener.Seqs(), 1+notifyQueue)

	c.Refresh(context.Background())
	assert.Len(t, listener.Seqs(), 1+notifyQueue, "после Stop отчёты не доставляются")
}

