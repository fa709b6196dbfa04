package costing_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/nyamoya/erp-backend/internal/application/costing"
	"github.com/nyamoya/erp-backend/internal/domain"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

// memStore is the in-memory database behind the fake repositories. The
// fake TxRunner serializes transactions on the store mutex and commits a
// working copy only when the callback succeeds, so "everything or
// nothing" is observable in tests.
type memStore struct {
	mu           sync.Mutex
	materials    map[string]*entity.RawMaterial
	products     map[string]*entity.Product
	batches      map[string]*entity.ProductionBatch
	sales        map[string]*entity.Sale
	expenses     map[string]*entity.Expense
	wastage      map[string]*entity.WastageEntry
	customers    map[string]*entity.Customer
	suppliers    map[string]*entity.Supplier
	operationIDs map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		materials:    map[string]*entity.RawMaterial{},
		products:     map[string]*entity.Product{},
		batches:      map[string]*entity.ProductionBatch{},
		sales:        map[string]*entity.Sale{},
		expenses:     map[string]*entity.Expense{},
		wastage:      map[string]*entity.WastageEntry{},
		customers:    map[string]*entity.Customer{},
		suppliers:    map[string]*entity.Supplier{},
		operationIDs: map[string]bool{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.materials {
		cp := *v
		c.materials[k] = &cp
	}
	for k, v := range s.products {
		cp := *v
		c.products[k] = &cp
	}
	for k, v := range s.batches {
		cp := *v
		c.batches[k] = &cp
	}
	for k, v := range s.sales {
		cp := *v
		c.sales[k] = &cp
	}
	for k, v := range s.expenses {
		cp := *v
		c.expenses[k] = &cp
	}
	for k, v := range s.wastage {
		cp := *v
		c.wastage[k] = &cp
	}
	for k, v := range s.customers {
		cp := *v
		c.customers[k] = &cp
	}
	for k, v := range s.suppliers {
		cp := *v
		c.suppliers[k] = &cp
	}
	for k := range s.operationIDs {
		c.operationIDs[k] = true
	}
	return c
}

func (s *memStore) adopt(c *memStore) {
	s.materials = c.materials
	s.products = c.products
	s.batches = c.batches
	s.sales = c.sales
	s.expenses = c.expenses
	s.wastage = c.wastage
	s.customers = c.customers
	s.suppliers = c.suppliers
	s.operationIDs = c.operationIDs
}

func (s *memStore) claimOperationID(id string) error {
	if id == "" {
		return nil
	}
	if s.operationIDs[id] {
		return domain.ErrDuplicateOperation
	}
	s.operationIDs[id] = true
	return nil
}

// fakeTxRunner runs the callback against a working copy and commits only
// on success.
type fakeTxRunner struct {
	store *memStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repos costing.TxRepos) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	work := r.store.clone()
	repos := txReposFor(work)
	if err := fn(repos); err != nil {
		return err
	}
	r.store.adopt(work)
	return nil
}

func txReposFor(s *memStore) costing.TxRepos {
	return costing.TxRepos{
		Materials: &memMaterialRepo{s: s},
		Products:  &memProductRepo{s: s},
		Batches:   &memBatchRepo{s: s},
		Sales:     &memSaleRepo{s: s},
		Expenses:  &memExpenseRepo{s: s},
		Wastage:   &memWastageRepo{s: s},
		Customers: &memCustomerRepo{s: s},
	}
}

// --- repositories ---

type memMaterialRepo struct{ s *memStore }

func (r *memMaterialRepo) Create(m *entity.RawMaterial) error {
	for _, existing := range r.s.materials {
		if existing.Name == m.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *m
	r.s.materials[m.ID] = &cp
	return nil
}

func (r *memMaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	m, ok := r.s.materials[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMaterialRepo) GetByName(name string) (*entity.RawMaterial, error) {
	for _, m := range r.s.materials {
		if m.Name == name {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMaterialRepo) GetForUpdate(id string) (*entity.RawMaterial, error) {
	return r.GetByID(id)
}

func (r *memMaterialRepo) UpdateStockAndCost(id string, stock, avgCost decimal.Decimal) error {
	m, ok := r.s.materials[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.CurrentStock = stock
	m.AverageCost = avgCost
	return nil
}

func (r *memMaterialRepo) List(limit, offset int) ([]*entity.RawMaterial, error) {
	var out []*entity.RawMaterial
	for _, m := range r.s.materials {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.s.products {
		if existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) UpdateStockAndCost(id string, stock, avgUnitCost decimal.Decimal) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = stock
	p.AverageUnitCost = avgUnitCost
	return nil
}

func (r *memProductRepo) UpdateStock(id string, stock decimal.Decimal) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = stock
	return nil
}

func (r *memProductRepo) UpdatePrice(id string, price decimal.Decimal) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Price = price
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type memBatchRepo struct{ s *memStore }

func (r *memBatchRepo) Create(b *entity.ProductionBatch) error {
	if err := r.s.claimOperationID(b.OperationID); err != nil {
		return err
	}
	cp := *b
	r.s.batches[b.ID] = &cp
	return nil
}

func (r *memBatchRepo) GetByID(id string) (*entity.ProductionBatch, error) {
	b, ok := r.s.batches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *memBatchRepo) List(limit, offset int) ([]*entity.ProductionBatch, error) {
	var out []*entity.ProductionBatch
	for _, b := range r.s.batches {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	if err := r.s.claimOperationID(sale.OperationID); err != nil {
		return err
	}
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}

func (r *memSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, sale := range r.s.sales {
		cp := *sale
		out = append(out, &cp)
	}
	return out, nil
}

type memExpenseRepo struct{ s *memStore }

func (r *memExpenseRepo) Create(e *entity.Expense) error {
	if err := r.s.claimOperationID(e.OperationID); err != nil {
		return err
	}
	cp := *e
	r.s.expenses[e.ID] = &cp
	return nil
}

func (r *memExpenseRepo) List(limit, offset int) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.s.expenses {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

type memWastageRepo struct{ s *memStore }

func (r *memWastageRepo) Create(w *entity.WastageEntry) error {
	if err := r.s.claimOperationID(w.OperationID); err != nil {
		return err
	}
	cp := *w
	r.s.wastage[w.ID] = &cp
	return nil
}

func (r *memWastageRepo) List(limit, offset int) ([]*entity.WastageEntry, error) {
	var out []*entity.WastageEntry
	for _, w := range r.s.wastage {
		cp := *w
		out = append(out, &cp)
	}
	return out, nil
}

type memCustomerRepo struct{ s *memStore }

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomerRepo) AddToTotalSpent(id string, amount decimal.Decimal) error {
	c, ok := r.s.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.TotalSpent = c.TotalSpent.Add(amount)
	return nil
}

func (r *memCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.s.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCustomerRepo) Delete(id string) error {
	if _, ok := r.s.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.customers, id)
	return nil
}

type memSupplierRepo struct{ s *memStore }

func (r *memSupplierRepo) Create(sp *entity.Supplier) error {
	cp := *sp
	r.s.suppliers[sp.ID] = &cp
	return nil
}

func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	sp, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *sp
	return &cp, nil
}

func (r *memSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, sp := range r.s.suppliers {
		cp := *sp
		out = append(out, &cp)
	}
	return out, nil
}

// nopAuditor swallows audit records; the engine must not depend on them.
type nopAuditor struct{}

func (nopAuditor) Record(user, action, details string) {}

// --- shared helpers ---

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedMaterial(s *memStore, id, name, unit string, stock, cost decimal.Decimal) {
	s.materials[id] = &entity.RawMaterial{
		ID: id, Name: name, Unit: unit,
		CurrentStock: stock, AverageCost: cost,
	}
}

func seedProduct(s *memStore, id, name string, price, stock, cost decimal.Decimal) {
	s.products[id] = &entity.Product{
		ID: id, Name: name, Price: price,
		CurrentStock: stock, AverageUnitCost: cost,
	}
}
