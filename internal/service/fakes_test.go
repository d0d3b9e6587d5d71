package service

import (
	"errors"
	"sort"
	"sync"

	"pringles-wms/internal/model"
	"pringles-wms/internal/repository"
	"pringles-wms/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errStore = errors.New("store unavailable")

func fixedToday(date string) Today {
	return func() string { return date }
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []ws.Event
}

func (p *recordingPublisher) Publish(e ws.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Action
	}
	return out
}

type fakeFlavorRepo struct {
	flavors []model.Flavor
}

func (r *fakeFlavorRepo) CreateIfAbsent(f *model.Flavor) (bool, error) {
	for _, existing := range r.flavors {
		if existing.Name == f.Name {
			return false, nil
		}
	}
	f.ID = uint(len(r.flavors) + 1)
	r.flavors = append(r.flavors, *f)
	return true, nil
}

func (r *fakeFlavorRepo) FindAll() ([]model.Flavor, error) {
	out := append([]model.Flavor(nil), r.flavors...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeFlavorRepo) FindByID(id uint) (*model.Flavor, error) {
	for _, f := range r.flavors {
		if f.ID == id {
			f := f
			return &f, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeFlavorRepo) FindByName(name string) (*model.Flavor, error) {
	for _, f := range r.flavors {
		if f.Name == name {
			f := f
			return &f, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeStockRepo struct {
	flavors *fakeFlavorRepo
	units   []model.StockUnit
	err     error
}

func (r *fakeStockRepo) CreateUnits(units []model.StockUnit) error {
	if r.err != nil {
		return r.err
	}
	for i := range units {
		units[i].ID = uuid.New()
	}
	r.units = append(r.units, units...)
	return nil
}

func (r *fakeStockRepo) name(id uint) string {
	f, _ := r.flavors.FindByID(id)
	if f == nil {
		return ""
	}
	return f.Name
}

func (r *fakeStockRepo) CurrentStock() ([]model.StockLevel, error) {
	type key struct {
		id     uint
		expiry string
	}
	counts := map[key]int{}
	for _, u := range r.units {
		if u.Status == model.StatusInStock {
			counts[key{u.FlavorID, u.ExpiryDate}]++
		}
	}
	var out []model.StockLevel
	for k, n := range counts {
		out = append(out, model.StockLevel{FlavorID: k.id, FlavorName: r.name(k.id), ExpiryDate: k.expiry, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FlavorName != out[j].FlavorName {
			return out[i].FlavorName < out[j].FlavorName
		}
		return out[i].ExpiryDate < out[j].ExpiryDate
	})
	return out, nil
}

func (r *fakeStockRepo) CountByFlavor() ([]model.FlavorStock, error) {
	if r.err != nil {
		return nil, r.err
	}
	counts := map[uint]int{}
	for _, u := range r.units {
		if u.Status == model.StatusInStock {
			counts[u.FlavorID]++
		}
	}
	var out []model.FlavorStock
	for id, n := range counts {
		out = append(out, model.FlavorStock{FlavorID: id, FlavorName: r.name(id), Available: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FlavorName < out[j].FlavorName })
	return out, nil
}

type fakeMachineRepo struct {
	machines []model.Machine
}

func (r *fakeMachineRepo) CreateIfAbsent(m *model.Machine) (bool, error) {
	for _, existing := range r.machines {
		if existing.ID == m.ID {
			return false, nil
		}
	}
	r.machines = append(r.machines, *m)
	return true, nil
}

func (r *fakeMachineRepo) FindAll() ([]model.Machine, error) {
	return append([]model.Machine(nil), r.machines...), nil
}

func (r *fakeMachineRepo) FindByID(id string) (*model.Machine, error) {
	for _, m := range r.machines {
		if m.ID == id {
			m := m
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeSaleRepo struct {
	sales []model.Sale
}

func (r *fakeSaleRepo) Create(s *model.Sale) error {
	s.ID = uuid.New()
	r.sales = append(r.sales, *s)
	return nil
}

func (r *fakeSaleRepo) FindAll() ([]model.Sale, error) {
	out := append([]model.Sale(nil), r.sales...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeSaleRepo) SumCashCollected() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range r.sales {
		total = total.Add(s.CashCollected)
	}
	return total, nil
}

type fakeExpenseRepo struct {
	expenses []model.Expense
	err      error
}

func (r *fakeExpenseRepo) Create(e *model.Expense) error {
	if r.err != nil {
		return r.err
	}
	e.ID = uuid.New()
	r.expenses = append(r.expenses, *e)
	return nil
}

func (r *fakeExpenseRepo) FindAll() ([]model.Expense, error) {
	out := append([]model.Expense(nil), r.expenses...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeExpenseRepo) SumBySource(source model.FundingSource) (decimal.Decimal, error) {
	if r.err != nil {
		return decimal.Zero, r.err
	}
	total := decimal.Zero
	for _, e := range r.expenses {
		if e.Source == source {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

type fakeAccountRepo struct {
	movements []model.AccountMovement
}

func (r *fakeAccountRepo) Create(m *model.AccountMovement) error {
	m.ID = uuid.New()
	r.movements = append(r.movements, *m)
	return nil
}

func (r *fakeAccountRepo) FindAll() ([]model.AccountMovement, error) {
	out := append([]model.AccountMovement(nil), r.movements...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeAccountRepo) SumAmounts() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range r.movements {
		total = total.Add(m.Amount)
	}
	return total, nil
}

type fakeBalanceRepo struct {
	values map[string]decimal.Decimal
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{values: map[string]decimal.Decimal{}}
}

func (r *fakeBalanceRepo) Get(name string) (decimal.Decimal, error) {
	return r.values[name], nil
}

func (r *fakeBalanceRepo) Adjust(name string, fn func(decimal.Decimal) decimal.Decimal) (decimal.Decimal, error) {
	next := fn(r.values[name])
	r.values[name] = next
	return next, nil
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}
