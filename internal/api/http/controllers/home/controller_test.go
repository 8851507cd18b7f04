package home

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"explorerCache/internal/domain"
	"explorerCache/internal/mocks"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIHomeCache, *mocks.MockIRefreshUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockIHomeCache(ctrl)
	uc := mocks.NewMockIRefreshUseCase(ctrl)

	r := gin.New()
	New(cache, uc, slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))).RegisterRoutes(r)
	return r, cache, uc
}

func get(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestSnapshot(t *testing.T) {
	r, cache, _ := newTestRouter(t)
	cache.EXPECT().Read(gomock.Any()).Return(domain.Snapshot{
		domain.SlotHome:      json.RawMessage(`{"blocks":10}`),
		domain.SlotHomeLists: nil,
	})

	w := get(r, "/api/v1/cache")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"home":{"blocks":10},"homeLists":null}`, w.Body.String())
}

// Холодный кэш после неудачного прогрева — всё равно 200.
func TestSnapshot_Cold(t *testing.T) {
	r, cache, _ := newTestRouter(t)
	cache.EXPECT().Read(gomock.Any()).Return(domain.Snapshot{
		domain.SlotHome:      nil,
		domain.SlotHomeLists: nil,
	})

	w := get(r, "/api/v1/cache")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"home":null,"homeLists":null}`, w.Body.String())
}

func TestSlot(t *testing.T) {
	r, cache, _ := newTestRouter(t)
	cache.EXPECT().Slot(gomock.Any(), domain.SlotHomeLists).Return(json.RawMessage(`[1,2,3]`), nil)

	w := get(r, "/api/v1/cache/slots/homeLists")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `[1,2,3]`, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestSlot_Cold(t *testing.T) {
	r, cache, _ := newTestRouter(t)
	cache.EXPECT().Slot(gomock.Any(), domain.SlotHome).Return(nil, nil)

	w := get(r, "/api/v1/cache/slots/home")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestSlot_Unknown(t *testing.T) {
	r, _, _ := newTestRouter(t)
	// имя проверяется до обращения к кэшу: мок без ожиданий упадёт на любом вызове

	w := get(r, "/api/v1/cache/slots/stats")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown slot")
}

// Слот известен домену, но кэш его не держит.
func TestSlot_NotConfigured(t *testing.T) {
	r, cache, _ := newTestRouter(t)
	cache.EXPECT().Slot(gomock.Any(), domain.SlotHomeLists).
		Return(nil, fmt.Errorf("%w: %q", domain.ErrUnknownSlot, domain.SlotHomeLists))

	w := get(r, "/api/v1/cache/slots/homeLists")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSlot_StoreError(t *testing.T) {
	r, cache, _ := newTestRouter(t)
	cache.EXPECT().Slot(gomock.Any(), domain.SlotHome).Return(nil, errors.New("boom"))

	w := get(r, "/api/v1/cache/slots/home")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStatus(t *testing.T) {
	r, cache, _ := newTestRouter(t)
	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache.EXPECT().Status().Return(domain.CacheStatus{
		Refreshes: 3,
		Slots: []domain.SlotStatus{
			{Slot: domain.SlotHome, Warm: true, Seq: 3, UpdatedAt: updated},
			{Slot: domain.SlotHomeLists, Failures: 3, ConsecutiveFailures: 3, LastError: "timeout"},
		},
	})

	w := get(r, "/api/v1/cache/status")

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.CacheStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, uint64(3), got.Refreshes)
	require.Len(t, got.Slots, 2)
	assert.True(t, got.Slots[0].Warm)
	assert.Equal(t, "timeout", got.Slots[1].LastError)
}

func TestFailures_DefaultLimit(t *testing.T) {
	r, _, uc := newTestRouter(t)
	uc.EXPECT().Failures(gomock.Any(), DefaultFailuresLimit).Return([]domain.RefreshRecord{
		{ID: 1, Seq: 4, Slot: domain.SlotHome, Error: "timeout", Latency: 1500 * time.Millisecond},
	}, nil)

	w := get(r, "/api/v1/cache/failures")

	require.Equal(t, http.StatusOK, w.Code)
	var got FailuresResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(1500), got.Items[0].LatencyMs)
	assert.Equal(t, domain.SlotHome, got.Items[0].Slot)
}

func TestFailures_Limit(t *testing.T) {
	r, _, uc := newTestRouter(t)
	uc.EXPECT().Failures(gomock.Any(), 5).Return(nil, nil)

	w := get(r, "/api/v1/cache/failures?limit=5")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[]}`, w.Body.String())
}

func TestFailures_Errors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		err      error
		wantCode int
	}{
		{"не число", "?limit=abc", nil, http.StatusBadRequest},
		{"вне диапазона", "?limit=1000", fmt.Errorf("%w: too big", domain.ErrInvalidLimit), http.StatusBadRequest},
		{"история отключена", "", domain.ErrHistoryDisabled, http.StatusNotFound},
		{"ошибка хранилища", "", errors.New("pg down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, uc := newTestRouter(t)
			if tt.err != nil {
				uc.EXPECT().Failures(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			}

			w := get(r, "/api/v1/cache/failures"+tt.query)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
