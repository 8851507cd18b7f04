package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Slot
		wantErr bool
	}{
		{name: "главная", in: "home", want: SlotHome},
		{name: "списки главной", in: "homeLists", want: SlotHomeLists},
		{name: "регистр важен", in: "Home", wantErr: true},
		{name: "пустое имя", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSlot(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownSlot)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Холодный слот обязан сериализоваться как null, а не пропадать из ответа.
func TestSnapshot_ColdSlotIsNull(t *testing.T) {
	snap := Snapshot{
		SlotHome:      json.RawMessage(`{"blocks":1}`),
		SlotHomeLists: nil,
	}

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"home":{"blocks":1},"homeLists":null}`, string(data))
}

func TestRefreshReport_Failures(t *testing.T) {
	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	report := RefreshReport{
		Seq:       7,
		StartedAt: started,
		Results: []SlotResult{
			{Slot: SlotHome, OK: true, Value: json.RawMessage(`1`)},
			{Slot: SlotHomeLists, Error: "boom", Latency: time.Second},
		},
	}

	got := report.Failures()

	require.Len(t, got, 1)
	assert.Equal(t, RefreshRecord{
		Seq:       7,
		Slot:      SlotHomeLists,
		Error:     "boom",
		Latency:   time.Second,
		StartedAt: started,
	}, got[0])
}

// Значения слотов не должны уходить в брокер вместе с отчётом.
func TestRefreshReport_JSONOmitsValues(t *testing.T) {
	report := RefreshReport{
		Seq:     1,
		Results: []SlotResult{{Slot: SlotHome, OK: true, Value: json.RawMessage(`{"big":"payload"}`)}},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "payload")

	var back RefreshReport
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, SlotHome, back.Results[0].Slot)
	assert.True(t, back.Results[0].OK)
}
