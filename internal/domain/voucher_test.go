package domain

import (
	"testing"
	"time"
)

func TestVoucherStatus(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	expires := created.AddDate(0, 0, ValidityDays)

	tests := []struct {
		name string
		used bool
		now  time.Time
		want VoucherStatus
	}{
		{"fresh voucher is active", false, created.Add(time.Hour), VoucherStatusActive},
		{"last day still active", false, expires, VoucherStatusActive},
		{"past expiry", false, expires.Add(time.Second), VoucherStatusExpired},
		{"used wins over expiry", true, expires.AddDate(0, 0, 5), VoucherStatusUsed},
		{"used inside window", true, created.Add(time.Hour), VoucherStatusUsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Voucher{CreatedAt: created, ExpiresAt: expires, Used: tt.used}
			if got := v.Status(tt.now); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVoucherWithinValidity(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	expires := created.AddDate(0, 0, ValidityDays)
	v := &Voucher{CreatedAt: created, ExpiresAt: expires}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"at creation", created, true},
		{"mid window", created.AddDate(0, 0, 15), true},
		{"at expiry boundary", expires, true},
		{"before creation", created.Add(-time.Minute), false},
		{"after expiry", expires.Add(time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.WithinValidity(tt.now); got != tt.want {
				t.Errorf("WithinValidity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name         string
		price        float64
		discountType DiscountType
		value        float64
		want         float64
	}{
		{"percentage 20 off 100", 100.00, DiscountPercentage, 20, 80.00},
		{"percentage 0 keeps price", 100.00, DiscountPercentage, 0, 100.00},
		{"percentage 100 is free", 100.00, DiscountPercentage, 100, 0},
		{"fixed amount subtracts", 100.00, DiscountFixedAmount, 30, 70.00},
		{"fixed amount clamps at zero", 100.00, DiscountFixedAmount, 150, 0},
		{"fixed amount exact price", 100.00, DiscountFixedAmount, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FinalPrice(tt.price, tt.discountType, tt.value)
			if got != tt.want {
				t.Errorf("FinalPrice(%v, %q, %v) = %v, want %v",
					tt.price, tt.discountType, tt.value, got, tt.want)
			}
		})
	}
}
