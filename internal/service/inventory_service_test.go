package service

import (
	"errors"
	"reflect"
	"testing"

	"pringles-wms/internal/model"
)

func newInventory() (*inventoryService, *fakeFlavorRepo, *fakeStockRepo, *recordingPublisher) {
	flavors := &fakeFlavorRepo{}
	stock := &fakeStockRepo{flavors: flavors}
	events := &recordingPublisher{}
	svc := NewInventoryService(flavors, stock, fixedToday("2026-10-14"), events, nil).(*inventoryService)
	return svc, flavors, stock, events
}

func TestRegisterFlavorIsIdempotent(t *testing.T) {
	svc, flavors, _, events := newInventory()

	first, created, err := svc.RegisterFlavor("Original")
	if err != nil || !created {
		t.Fatalf("first register: created=%v err=%v", created, err)
	}
	second, created, err := svc.RegisterFlavor("  Original ")
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if created {
		t.Fatal("duplicate name reported as created")
	}
	if first.ID != second.ID {
		t.Fatalf("ids differ: %d vs %d", first.ID, second.ID)
	}
	if len(flavors.flavors) != 1 {
		t.Fatalf("stored %d flavors, want 1", len(flavors.flavors))
	}
	if got := events.actions(); !reflect.DeepEqual(got, []string{"flavor_created"}) {
		t.Fatalf("events = %v", got)
	}
}

func TestRegisterFlavorRejectsBlankName(t *testing.T) {
	svc, _, _, _ := newInventory()
	if _, _, err := svc.RegisterFlavor("   "); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("err = %v, want ErrInvalidName", err)
	}
}

func TestIntakeCreatesDistinctUnits(t *testing.T) {
	svc, _, stock, _ := newInventory()
	flavor, _, _ := svc.RegisterFlavor("Paprika")

	units, err := svc.Intake(flavor.ID, "2027-03-01", 12)
	if err != nil {
		t.Fatalf("Intake: %v", err)
	}
	if len(units) != 12 || len(stock.units) != 12 {
		t.Fatalf("created %d units (stored %d), want 12", len(units), len(stock.units))
	}

	seen := map[string]bool{}
	for _, u := range units {
		if u.Status != model.StatusInStock || u.StoredOn != "2026-10-14" || u.ExpiryDate != "2027-03-01" {
			t.Fatalf("unexpected unit %+v", u)
		}
		seen[u.ID.String()] = true
	}
	if len(seen) != 12 {
		t.Fatalf("got %d distinct ids, want 12", len(seen))
	}

	levels, _ := svc.CurrentStock()
	want := []model.StockLevel{{FlavorID: flavor.ID, FlavorName: "Paprika", ExpiryDate: "2027-03-01", Count: 12}}
	if !reflect.DeepEqual(levels, want) {
		t.Fatalf("CurrentStock = %+v, want %+v", levels, want)
	}
}

func TestIntakeValidation(t *testing.T) {
	svc, _, stock, _ := newInventory()
	flavor, _, _ := svc.RegisterFlavor("Original")

	tests := []struct {
		name     string
		flavorID uint
		expiry   string
		quantity int
		want     error
	}{
		{"zero quantity", flavor.ID, "2027-01-01", 0, ErrInvalidQuantity},
		{"negative quantity", flavor.ID, "2027-01-01", -3, ErrInvalidQuantity},
		{"above limit", flavor.ID, "2027-01-01", MaxIntakeQuantity + 1, ErrInvalidQuantity},
		{"bad date", flavor.ID, "01.01.2027", 7, ErrInvalidDate},
		{"unknown flavor", 99, "2027-01-01", 7, ErrInvalidReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Intake(tt.flavorID, tt.expiry, tt.quantity); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if len(stock.units) != 0 {
		t.Fatalf("rejected intakes stored %d units", len(stock.units))
	}
}

func TestIntakePropagatesStoreError(t *testing.T) {
	svc, _, stock, events := newInventory()
	flavor, _, _ := svc.RegisterFlavor("Original")
	stock.err = errStore

	if _, err := svc.Intake(flavor.ID, "2027-01-01", 7); !errors.Is(err, errStore) {
		t.Fatalf("err = %v, want store error", err)
	}
	if got := events.actions(); !reflect.DeepEqual(got, []string{"flavor_created"}) {
		t.Fatalf("failed intake published events: %v", got)
	}
}

func TestRestockPlanUsesCurrentStock(t *testing.T) {
	svc, _, _, _ := newInventory()
	a, _, _ := svc.RegisterFlavor("A")
	b, _, _ := svc.RegisterFlavor("B")
	c, _, _ := svc.RegisterFlavor("C")
	for _, in := range []struct {
		id  uint
		qty int
	}{{a.ID, 10}, {b.ID, 7}, {c.ID, 3}, {a.ID, 4}} {
		if _, err := svc.Intake(in.id, "2027-01-01", in.qty); err != nil {
			t.Fatalf("Intake: %v", err)
		}
	}

	plan, err := svc.RestockPlan()
	if err != nil {
		t.Fatalf("RestockPlan: %v", err)
	}
	var got []string
	for _, e := range plan {
		got = append(got, e.FlavorName)
	}
	if !reflect.DeepEqual(got, []string{"A", "B", "A"}) || plan.Total() != 21 {
		t.Fatalf("plan = %+v", plan)
	}
}
