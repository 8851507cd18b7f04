package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnknownSlot возвращается для имени слота, которого нет в кэше.
	ErrUnknownSlot = errors.New("unknown slot")
	// ErrEmptyValue — апстрим ответил без ошибки, но пустым значением.
	ErrEmptyValue = errors.New("upstream returned empty value")
	// ErrUpstreamStatus — апстрим ответил не 200.
	ErrUpstreamStatus = errors.New("unexpected upstream status")
	// ErrUpstreamPayload — тело ответа апстрима не является JSON.
	ErrUpstreamPayload = errors.New("invalid upstream payload")
	// ErrHistoryDisabled — хранилище истории сбоев не настроено.
	ErrHistoryDisabled = errors.New("failure history disabled")
	// ErrInvalidLimit — размер выборки истории вне допустимого диапазона.
	ErrInvalidLimit = errors.New("invalid limit")
)

// Slot — имя закэшированного агрегата.
type Slot string

// Слоты главной страницы эксплорера.
const (
	SlotHome      Slot = "home"
	SlotHomeLists Slot = "homeLists"
)

// Slots — все известные слоты в порядке отдачи.
var Slots = []Slot{SlotHome, SlotHomeLists}

// ParseSlot проверяет имя слота.
func ParseSlot(s string) (Slot, error) {
	for _, slot := range Slots {
		if string(slot) == s {
			return slot, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSlot, s)
}

// Snapshot — последние успешные значения слотов. Холодный слот хранится как nil и в JSON отдаётся null.
// Значения разделяются между читателями, менять их нельзя.
type Snapshot map[Slot]json.RawMessage

// SlotStatus — состояние одного слота для операторов.
type SlotStatus struct {
	Slot                Slot      `json:"slot"`
	Warm                bool      `json:"warm"`
	Seq                 uint64    `json:"seq"`
	UpdatedAt           time.Time `json:"updatedAt,omitzero"`
	Failures            uint64    `json:"failures"`
	ConsecutiveFailures uint64    `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastErrorAt         time.Time `json:"lastErrorAt,omitzero"`
}

// CacheStatus — состояние кэша целиком.
type CacheStatus struct {
	Refreshes uint64       `json:"refreshes"`
	Slots     []SlotStatus `json:"slots"`
}

// SlotResult — итог одного запроса к апстриму внутри обновления.
type SlotResult struct {
	Slot    Slot            `json:"slot"`
	OK      bool            `json:"ok"`
	Error   string          `json:"error,omitempty"`
	Latency time.Duration   `json:"latency"`
	Value   json.RawMessage `json:"-"`
}

// RefreshReport — итог одного обновления кэша. Seq растёт монотонно.
type RefreshReport struct {
	Seq       uint64        `json:"seq"`
	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"duration"`
	Results   []SlotResult  `json:"results"`
}

// Failures возвращает неудачные запросы обновления в виде записей истории.
func (r RefreshReport) Failures() []RefreshRecord {
	var out []RefreshRecord
	for _, res := range r.Results {
		if res.OK {
			continue
		}
		out = append(out, RefreshRecord{
			Seq:       r.Seq,
			Slot:      res.Slot,
			Error:     res.Error,
			Latency:   res.Latency,
			StartedAt: r.StartedAt,
		})
	}
	return out
}

// RefreshRecord — запись истории сбоев апстрима.
type RefreshRecord struct {
	ID        int
	Seq       uint64
	Slot      Slot
	Error     string
	Latency   time.Duration
	StartedAt time.Time
}
