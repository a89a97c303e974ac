package model_test

import (
	"testing"

	"viagem/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "confirmed", want: model.StatusConfirmed},
		{raw: "CONFIRMED", want: model.StatusConfirmed},
		{raw: " Confirmed ", want: model.StatusConfirmed},
		{raw: "cancelled", want: model.StatusCancelled},
		{raw: "canceled", want: model.StatusCancelled},
		{raw: "CANCELED", want: model.StatusCancelled},
		{raw: "pending", want: model.StatusPending},
		{raw: "Pending", want: model.StatusPending},
		{raw: "garbage", want: model.StatusPending},
		{raw: "", want: model.StatusPending},
		{raw: "paid", want: model.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, model.NormalizeStatus(tt.raw))
		})
	}
}

func TestNormalizePaymentStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "paid", want: model.PaymentStatusPaid},
		{raw: "PAID", want: model.PaymentStatusPaid},
		{raw: "refunded", want: model.PaymentStatusRefunded},
		{raw: "pending", want: model.PaymentStatusPending},
		{raw: "garbage", want: model.PaymentStatusPending},
		{raw: "", want: model.PaymentStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, model.NormalizePaymentStatus(tt.raw))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		guests    int
		want      float64
	}{
		{name: "two guests at 500", unitPrice: 500, guests: 2, want: 1000},
		{name: "single guest", unitPrice: 150.50, guests: 1, want: 150.50},
		{name: "four guests", unitPrice: 499.99, guests: 4, want: 1999.96},
		{name: "free item", unitPrice: 0, guests: 3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, model.TotalPrice(tt.unitPrice, tt.guests), 1e-9)
		})
	}
}
