package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"pringles-wms/internal/model"
	"pringles-wms/internal/restock"
	"pringles-wms/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var errDiskFull = errors.New("disk I/O error")

type brokenInventory struct{}

func (brokenInventory) RegisterFlavor(string) (*model.Flavor, bool, error) {
	return nil, false, errDiskFull
}
func (brokenInventory) ListFlavors() ([]model.Flavor, error) { return nil, errDiskFull }
func (brokenInventory) Intake(uint, string, int) ([]model.StockUnit, error) {
	return nil, errDiskFull
}
func (brokenInventory) CurrentStock() ([]model.StockLevel, error) { return nil, errDiskFull }
func (brokenInventory) RestockPlan() (restock.Plan, error)        { return nil, errDiskFull }

type brokenSummary struct{}

func (brokenSummary) FinancialSummary() (*model.FinancialSummary, error) { return nil, errDiskFull }

func TestStoreFailuresAreLogged(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	log := zap.New(core)

	app := fiber.New()
	inv := NewInventoryHandler(brokenInventory{}, log)
	dash := NewDashboardHandler(brokenSummary{}, log)
	app.Get("/flavors", inv.GetFlavors)
	app.Get("/stock", inv.GetStock)
	app.Get("/summary", dash.GetSummary)

	for _, path := range []string{"/flavors", "/stock", "/summary"} {
		status, body := call(t, app, http.MethodGet, path, "")
		if status != 500 {
			t.Fatalf("GET %s status = %d, want 500", path, status)
		}
		if msg, _ := body["error"].(string); msg == errDiskFull.Error() {
			t.Fatalf("GET %s leaked the store error to the client", path)
		}
	}

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("logged %d errors, want 3", len(entries))
	}
	for _, e := range entries {
		found := false
		for _, f := range e.Context {
			if f.Key == "error" {
				if err, ok := f.Interface.(error); ok && errors.Is(err, errDiskFull) {
					found = true
				}
			}
		}
		if !found {
			t.Fatalf("log entry %q has no error field: %+v", e.Message, e.Context)
		}
	}
}

func TestDomainErrorsAreNotLogged(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	log := zap.New(core)

	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return respondError(c, log, fmt.Errorf("sale: %w", service.ErrInvalidAmount))
	})

	if status, _ := call(t, app, http.MethodGet, "/x", ""); status != 400 {
		t.Fatalf("status = %d, want 400", status)
	}
	if logs.Len() != 0 {
		t.Fatalf("domain error was logged: %+v", logs.All())
	}
}
