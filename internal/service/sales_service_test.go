package service

import (
	"errors"
	"testing"

	"pringles-wms/internal/model"
)

func TestRecordSale(t *testing.T) {
	machines := &fakeMachineRepo{machines: []model.Machine{{ID: "M-01", Location: "Schule"}}}
	sales := &fakeSaleRepo{}
	events := &recordingPublisher{}
	svc := NewSalesService(sales, machines, fixedToday("2026-10-14"), events, nil)

	sale, err := svc.RecordSale("M-01", 5, dec("12.50"))
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}
	if sale.Date != "2026-10-14" || sale.Quantity != 5 || !sale.CashCollected.Equal(dec("12.5")) {
		t.Fatalf("unexpected sale %+v", sale)
	}
	if len(events.events) != 1 || events.events[0].Type != "sale_recorded" {
		t.Fatalf("events = %+v", events.events)
	}
}

func TestRecordSaleValidation(t *testing.T) {
	machines := &fakeMachineRepo{machines: []model.Machine{{ID: "M-01"}}}
	sales := &fakeSaleRepo{}
	svc := NewSalesService(sales, machines, fixedToday("2026-10-14"), nil, nil)

	if _, err := svc.RecordSale("nope", 1, dec("1")); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("unknown machine err = %v", err)
	}
	if _, err := svc.RecordSale("M-01", 0, dec("1")); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity err = %v", err)
	}
	if _, err := svc.RecordSale("M-01", 1, dec("-0.01")); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("negative cash err = %v", err)
	}
	if len(sales.sales) != 0 {
		t.Fatalf("rejected sales were stored: %+v", sales.sales)
	}
}
