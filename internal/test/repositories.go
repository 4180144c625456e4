package test

import (
	"context"
	"sort"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
	Updates int
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Create registers user unless the email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *user
	stored.ID = s.Next
	s.Next++
	s.ByEmail[stored.Email] = &stored
	s.ByID[stored.ID] = &stored
	out := stored
	return &out, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		out := *user
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		out := *user
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update replaces a stored user, keeping the email index unique.
func (s *UserRepositoryStub) Update(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	current, ok := s.ByID[user.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if other, taken := s.ByEmail[user.Email]; taken && other.ID != user.ID {
		return nil, domainErrors.ErrAlreadyExists
	}
	delete(s.ByEmail, current.Email)
	stored := *user
	s.ByID[stored.ID] = &stored
	s.ByEmail[stored.Email] = &stored
	s.Updates++
	out := stored
	return &out, nil
}

// ProductRepositoryStub keeps products in memory.
type ProductRepositoryStub struct {
	Items map[int64]*model.Product
	Next  int64
	Err   error
}

// NewProductRepositoryStub constructs an empty catalogue.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Items: make(map[int64]*model.Product), Next: 1}
}

func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Product, 0, len(s.Items))
	for _, p := range s.Items {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Items[id]; ok {
		out := *p
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *product
	stored.ID = s.Next
	s.Next++
	s.Items[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Items[product.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *product
	s.Items[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

// OrderRepositoryStub keeps orders in memory and counts reads and writes.
type OrderRepositoryStub struct {
	Items map[int64]*model.Order
	Next  int64
	Err   error

	Reads int
	Saves int
}

// NewOrderRepositoryStub constructs an empty order store.
func NewOrderRepositoryStub(orders ...model.Order) *OrderRepositoryStub {
	s := &OrderRepositoryStub{Items: make(map[int64]*model.Order), Next: 1}
	for _, o := range orders {
		order := o
		s.Items[order.ID] = &order
		if order.ID >= s.Next {
			s.Next = order.ID + 1
		}
	}
	return s
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *order
	stored.ID = s.Next
	s.Next++
	s.Items[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	s.Reads++
	if s.Err != nil {
		return nil, s.Err
	}
	if o, ok := s.Items[id]; ok {
		out := *o
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Order
	for _, o := range s.sorted() {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.sorted(), nil
}

func (s *OrderRepositoryStub) Save(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Items[order.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	s.Saves++
	stored := *order
	s.Items[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (s *OrderRepositoryStub) sorted() []model.Order {
	out := make([]model.Order, 0, len(s.Items))
	for _, o := range s.Items {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
