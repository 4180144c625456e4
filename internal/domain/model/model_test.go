package model

import (
	"testing"
	"time"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{499.50, 49950},
		{19.99, 1999},
		{0.1 + 0.2, 30},
		{1, 100},
		{0, 0},
	}

	for _, tc := range cases {
		if got := ToMinorUnits(tc.amount); got != tc.want {
			t.Fatalf("ToMinorUnits(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestOrderApplyPaymentSuccess(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	order := &Order{ID: 1}
	order.ApplyPayment(PaymentOutcome{
		Paid: true,
		Result: PaymentResult{
			ID:                "pay_1",
			Status:            PaymentStatusCompleted,
			RazorpayOrderID:   "order_1",
			RazorpayPaymentID: "pay_1",
			RazorpaySignature: "sig",
		},
	}, now)

	if !order.IsPaid {
		t.Fatal("expected order to be paid")
	}
	if order.PaidAt == nil || !order.PaidAt.Equal(now) {
		t.Fatalf("unexpected paidAt %v", order.PaidAt)
	}
	if order.PaymentResult == nil || order.PaymentResult.ID != "pay_1" || !order.PaymentResult.UpdateTime.Equal(now) {
		t.Fatalf("unexpected payment result %+v", order.PaymentResult)
	}
}

func TestOrderApplyPaymentFailureStillStampsPaidAt(t *testing.T) {
	now := time.Now()
	order := &Order{ID: 1}
	order.ApplyPayment(PaymentOutcome{Paid: false, Result: PaymentResult{ID: "pay_2", Status: PaymentStatusFailed}}, now)

	if order.IsPaid {
		t.Fatal("expected order to stay unpaid")
	}
	if order.PaidAt == nil {
		t.Fatal("expected paidAt to be stamped")
	}
	if order.PaymentResult.Status != PaymentStatusFailed {
		t.Fatalf("unexpected status %q", order.PaymentResult.Status)
	}
}

func TestOrderApplyPaymentKeepsSettledPayment(t *testing.T) {
	paidAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	order := &Order{ID: 1}
	order.ApplyPayment(PaymentOutcome{Paid: true, Result: PaymentResult{ID: "pay_1", Status: PaymentStatusCompleted}}, paidAt)
	order.ApplyPayment(PaymentOutcome{Paid: false, Result: PaymentResult{ID: "pay_2", Status: PaymentStatusFailed}}, paidAt.Add(time.Hour))

	if !order.IsPaid {
		t.Fatal("paid order must not be reverted")
	}
	if order.PaidAt == nil || !order.PaidAt.Equal(paidAt) {
		t.Fatalf("expected paidAt %v, got %v", paidAt, order.PaidAt)
	}
	if order.PaymentResult.ID != "pay_1" || order.PaymentResult.Status != PaymentStatusCompleted || !order.PaymentResult.UpdateTime.Equal(paidAt) {
		t.Fatalf("expected settled payment result, got %+v", order.PaymentResult)
	}
}

func TestOrderMarkDelivered(t *testing.T) {
	now := time.Now()
	order := &Order{}
	order.MarkDelivered(now)
	if !order.IsDelivered || order.DeliveredAt == nil || !order.DeliveredAt.Equal(now) {
		t.Fatalf("unexpected delivery state: %+v", order)
	}
}
