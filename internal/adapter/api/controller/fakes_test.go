package controller

import (
	"context"
	"sync"

	"github.com/hugohenrick/confeitaria-orcamentos/internal/adapter/repository"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/budget"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/catalog"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/client"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
)

// fakeCatalog guarda produtos, combos e grupos em memória
type fakeCatalog struct {
	products map[string]*catalog.Product
	combos   map[string][]pricing.AllowedProduct
	groups   map[string][]catalog.BuilderGroup
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		products: map[string]*catalog.Product{},
		combos:   map[string][]pricing.AllowedProduct{},
		groups:   map[string][]catalog.BuilderGroup{},
	}
}

func (f *fakeCatalog) add(p *catalog.Product) *catalog.Product {
	f.products[p.ID] = p
	return p
}

func (f *fakeCatalog) CreateCategory(context.Context, *catalog.Category) error { return nil }
func (f *fakeCatalog) ListCategories(context.Context) ([]*catalog.Category, error) {
	return nil, nil
}
func (f *fakeCatalog) CreateProduct(_ context.Context, p *catalog.Product) error {
	f.products[p.ID] = p
	return nil
}
func (f *fakeCatalog) UpdateProduct(_ context.Context, p *catalog.Product) error {
	f.products[p.ID] = p
	return nil
}
func (f *fakeCatalog) FindProductByID(_ context.Context, id string) (*catalog.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return p, nil
}
func (f *fakeCatalog) ListProducts(context.Context, catalog.ProductFilter) ([]*catalog.Product, error) {
	out := make([]*catalog.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeCatalog) DeactivateProduct(_ context.Context, id string) error {
	if p, ok := f.products[id]; ok {
		p.Deactivate()
	}
	return nil
}
func (f *fakeCatalog) UpdateImageURL(context.Context, string, string) error { return nil }
func (f *fakeCatalog) SetComboProducts(_ context.Context, comboID string, ids []string) error {
	allowed := make([]pricing.AllowedProduct, 0, len(ids))
	for _, id := range ids {
		p := f.products[id]
		allowed = append(allowed, pricing.AllowedProduct{ProductID: id, Name: p.Name, BasePrice: p.BasePrice})
	}
	f.combos[comboID] = allowed
	return nil
}
func (f *fakeCatalog) ListComboProducts(_ context.Context, comboID string) ([]pricing.AllowedProduct, error) {
	return f.combos[comboID], nil
}
func (f *fakeCatalog) ListBuilderGroups(_ context.Context, productID string) ([]catalog.BuilderGroup, error) {
	return f.groups[productID], nil
}
func (f *fakeCatalog) CreateBuilderGroup(_ context.Context, g *catalog.BuilderGroup) error {
	f.groups[g.ProductID] = append(f.groups[g.ProductID], *g)
	return nil
}
func (f *fakeCatalog) DeleteBuilderGroup(context.Context, string) error               { return nil }
func (f *fakeCatalog) CreateBuilderOption(context.Context, *catalog.BuilderOption) error { return nil }
func (f *fakeCatalog) DeleteBuilderOption(context.Context, string) error              { return nil }

// fakeClients guarda clientes e endereços em memória
type fakeClients struct {
	clients   map[string]*client.Client
	addresses map[string]*client.Address
}

func newFakeClients() *fakeClients {
	return &fakeClients{clients: map[string]*client.Client{}, addresses: map[string]*client.Address{}}
}

func (f *fakeClients) Create(_ context.Context, c *client.Client) error {
	f.clients[c.ID] = c
	return nil
}
func (f *fakeClients) FindByID(_ context.Context, id string) (*client.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, repository.ErrClientNotFound
	}
	return c, nil
}
func (f *fakeClients) Search(context.Context, string, int, int) ([]*client.Client, int, error) {
	out := make([]*client.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, len(out), nil
}
func (f *fakeClients) Update(_ context.Context, c *client.Client) error {
	f.clients[c.ID] = c
	return nil
}
func (f *fakeClients) Delete(_ context.Context, id string) error {
	delete(f.clients, id)
	return nil
}
func (f *fakeClients) AddAddress(_ context.Context, a *client.Address) error {
	a.IsPrimary = true
	for _, other := range f.addresses {
		if other.ClientID == a.ClientID {
			a.IsPrimary = false
		}
	}
	f.addresses[a.ID] = a
	return nil
}
func (f *fakeClients) ListAddresses(_ context.Context, clientID string) ([]client.Address, error) {
	var out []client.Address
	for _, a := range f.addresses {
		if a.ClientID == clientID {
			out = append(out, *a)
		}
	}
	return out, nil
}
func (f *fakeClients) FindAddress(_ context.Context, id string) (*client.Address, error) {
	a, ok := f.addresses[id]
	if !ok {
		return nil, repository.ErrAddressNotFound
	}
	return a, nil
}

// fakeBudgets guarda orçamentos e pedidos em memória
type fakeBudgets struct {
	budgets map[string]*budget.Budget
	orders  map[string]*budget.Order
}

func newFakeBudgets() *fakeBudgets {
	return &fakeBudgets{budgets: map[string]*budget.Budget{}, orders: map[string]*budget.Order{}}
}

func (f *fakeBudgets) Create(_ context.Context, b *budget.Budget) error {
	f.budgets[b.ID] = b
	return nil
}
func (f *fakeBudgets) FindByID(_ context.Context, id string) (*budget.Budget, error) {
	b, ok := f.budgets[id]
	if !ok {
		return nil, repository.ErrBudgetNotFound
	}
	return b, nil
}
func (f *fakeBudgets) List(context.Context, budget.Filter, int, int) ([]*budget.Budget, int, error) {
	out := make([]*budget.Budget, 0, len(f.budgets))
	for _, b := range f.budgets {
		out = append(out, b)
	}
	return out, len(out), nil
}
func (f *fakeBudgets) UpdateHeader(_ context.Context, b *budget.Budget) error {
	f.budgets[b.ID] = b
	return nil
}
func (f *fakeBudgets) UpdateItem(_ context.Context, b *budget.Budget, _ *budget.Item) error {
	f.budgets[b.ID] = b
	return nil
}
func (f *fakeBudgets) DeleteItem(_ context.Context, b *budget.Budget, _ string) error {
	f.budgets[b.ID] = b
	return nil
}
func (f *fakeBudgets) CreateOrder(_ context.Context, o *budget.Order) error {
	if _, ok := f.orders[o.BudgetID]; ok {
		return repository.ErrOrderAlreadyExists
	}
	f.orders[o.BudgetID] = o
	return nil
}
func (f *fakeBudgets) FindOrderByBudget(_ context.Context, budgetID string) (*budget.Order, error) {
	o, ok := f.orders[budgetID]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return o, nil
}

// fakeDrafts guarda rascunhos em memória
type fakeDrafts struct {
	mu     sync.Mutex
	drafts map[string]*budget.Draft
}

func newFakeDrafts() *fakeDrafts {
	return &fakeDrafts{drafts: map[string]*budget.Draft{}}
}

func (f *fakeDrafts) Load(_ context.Context, userID string) (*budget.Draft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drafts[userID]
	if !ok {
		return nil, budget.ErrDraftNotFound
	}
	return d, nil
}
func (f *fakeDrafts) Save(_ context.Context, d *budget.Draft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drafts[d.UserID] = d
	return nil
}
func (f *fakeDrafts) Delete(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.drafts, userID)
	return nil
}
