package service

import (
	"testing"
	"time"
)

func TestCancellationCharges(t *testing.T) {
	tests := []struct {
		name            string
		timeToDeparture time.Duration
		wantFee         float64
	}{
		{
			name:            "more than a week out",
			timeToDeparture: 10 * 24 * time.Hour,
			wantFee:         50.0,
		},
		{
			name:            "exactly seven days out",
			timeToDeparture: 7 * 24 * time.Hour,
			wantFee:         125.0,
		},
		{
			name:            "five days out",
			timeToDeparture: 5 * 24 * time.Hour,
			wantFee:         125.0,
		},
		{
			name:            "exactly three days out",
			timeToDeparture: 3 * 24 * time.Hour,
			wantFee:         250.0,
		},
		{
			name:            "two days out",
			timeToDeparture: 2 * 24 * time.Hour,
			wantFee:         250.0,
		},
		{
			name:            "twelve hours out",
			timeToDeparture: 12 * time.Hour,
			wantFee:         375.0,
		},
		{
			name:            "departure already passed",
			timeToDeparture: -2 * time.Hour,
			wantFee:         375.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := CancellationCharges(tt.timeToDeparture)
			if fee != tt.wantFee {
				t.Errorf("CancellationCharges(%v) = %v, want %v", tt.timeToDeparture, fee, tt.wantFee)
			}

			refund := BaseFare - fee
			if refund != BaseFare-tt.wantFee {
				t.Errorf("refund = %v, want %v", refund, BaseFare-tt.wantFee)
			}
		})
	}
}
