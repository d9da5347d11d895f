package main

import (
	"context"
	"maps"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sweetpencilbd/api/models"
	"github.com/sweetpencilbd/api/store"
)

// In-memory doubles for the store interfaces. They share the real id
// validator so malformed ids behave exactly as they do against Mongo.

type memProducts struct {
	mu   sync.Mutex
	docs []map[string]any
}

func (m *memProducts) Create(_ context.Context, doc map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d := maps.Clone(doc)
	delete(d, "_id")
	d["createdAt"] = time.Now().UTC()
	id := primitive.NewObjectID().Hex()
	d["_id"] = id
	m.docs = append(m.docs, d)
	return id, nil
}

func (m *memProducts) All(_ context.Context) ([]map[string]any, error) {
	return m.filtered(""), nil
}

func (m *memProducts) ByCategory(_ context.Context, category string) ([]map[string]any, error) {
	return m.filtered(category), nil
}

func (m *memProducts) Page(_ context.Context, category string, page store.Page) ([]map[string]any, int64, error) {
	docs := m.filtered(category)
	total := int64(len(docs))
	start := int(page.Skip())
	if start > len(docs) {
		start = len(docs)
	}
	end := start + page.Size
	if end > len(docs) {
		end = len(docs)
	}
	return docs[start:end], total, nil
}

func (m *memProducts) Get(_ context.Context, id string) (map[string]any, error) {
	if err := store.ValidateID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.docs {
		if d["_id"] == id {
			return maps.Clone(d), nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memProducts) Update(_ context.Context, id string, fields map[string]any) error {
	if err := store.ValidateID(id); err != nil {
		return err
	}
	delete(fields, "_id")
	if len(fields) == 0 {
		return store.ErrEmptyUpdate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.docs {
		if d["_id"] == id {
			maps.Copy(d, fields)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	if err := store.ValidateID(id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.docs {
		if d["_id"] == id {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memProducts) EstimatedCount(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.docs)), nil
}

func (m *memProducts) filtered(category string) []map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []map[string]any{}
	for _, d := range m.docs {
		if category != "" && d["category"] != category {
			continue
		}
		out = append(out, maps.Clone(d))
	}
	return out
}

type memOrders struct {
	mu     sync.Mutex
	orders []models.Order
}

func (m *memOrders) Create(_ context.Context, o models.Order) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o.ID = primitive.NewObjectID()
	o.OrderDate = time.Now().UTC()
	if o.Status == "" {
		o.Status = models.StatusPending
	}
	m.orders = append(m.orders, o)
	return o.ID.Hex(), nil
}

func (m *memOrders) Page(_ context.Context, status string, page store.Page) ([]models.Order, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := []models.Order{}
	for _, o := range m.orders {
		if status != "" && o.Status != status {
			continue
		}
		matched = append(matched, o)
	}
	total := int64(len(matched))
	start := int(page.Skip())
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *memOrders) Delete(_ context.Context, id string) error {
	if err := store.ValidateID(id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, o := range m.orders {
		if o.ID.Hex() == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memOrders) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

type memCustomers struct {
	mu        sync.Mutex
	customers []models.Customer
}

func (m *memCustomers) Upsert(_ context.Context, c models.Customer) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	for i := range m.customers {
		cur := &m.customers[i]
		if cur.Name == c.Name && cur.Mobile == c.Mobile {
			if c.Address != "" {
				cur.Address = c.Address
			}
			if c.Email != "" {
				cur.Email = c.Email
			}
			cur.UpdatedAt = now
			return cur.ID.Hex(), false, nil
		}
	}

	c.ID = primitive.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now
	m.customers = append(m.customers, c)
	return c.ID.Hex(), true, nil
}

func (m *memCustomers) All(_ context.Context) ([]models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Customer, len(m.customers))
	copy(out, m.customers)
	return out, nil
}

func (m *memCustomers) Delete(_ context.Context, id string) error {
	if err := store.ValidateID(id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.customers {
		if c.ID.Hex() == id {
			m.customers = append(m.customers[:i], m.customers[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type memUsers struct {
	users []models.User
}

func (m *memUsers) ByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (m *memUsers) EstimatedCount(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

type memMedia struct {
	mu    sync.Mutex
	field string
	docs  []map[string]any
}

func (m *memMedia) Create(_ context.Context, url string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID().Hex()
	m.docs = append(m.docs, map[string]any{"_id": id, m.field: url})
	return id, nil
}

func (m *memMedia) All(_ context.Context) ([]map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []map[string]any{}
	for _, d := range m.docs {
		out = append(out, maps.Clone(d))
	}
	return out, nil
}

func (m *memMedia) Delete(_ context.Context, id string) error {
	if err := store.ValidateID(id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.docs {
		if d["_id"] == id {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
