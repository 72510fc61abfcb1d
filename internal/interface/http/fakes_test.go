package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/mitrabahan/backend/internal/domain/entity"
	repo "github.com/mitrabahan/backend/internal/domain/repository"
)

type memAccounts struct {
	items []*entity.Account
	seq   int
}

func (m *memAccounts) Create(_ context.Context, a *entity.Account) error {
	for _, e := range m.items {
		if e.Email == a.Email {
			return repo.ErrDuplicate
		}
	}
	m.seq++
	a.ID = fmt.Sprintf("acct-%d", m.seq)
	a.IsActive = true
	a.CreatedAt = time.Now()
	cp := *a
	m.items = append(m.items, &cp)
	return nil
}

func (m *memAccounts) GetByID(_ context.Context, id string) (*entity.Account, error) {
	for _, e := range m.items {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memAccounts) GetByEmail(_ context.Context, email string) (*entity.Account, error) {
	for _, e := range m.items {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memAccounts) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	for _, e := range m.items {
		if e.ID == id {
			e.LastLogin = &t
			return nil
		}
	}
	return repo.ErrNotFound
}

func (m *memAccounts) UpdateWallet(_ context.Context, id string, address string) error {
	for _, e := range m.items {
		if e.ID == id {
			e.WalletAddress = &address
			return nil
		}
	}
	return repo.ErrNotFound
}

func (m *memAccounts) List(_ context.Context) ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		cp := *m.items[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memAccounts) Stats(_ context.Context) (*entity.AccountStats, error) {
	st := &entity.AccountStats{ByRole: map[string]int64{}}
	for _, e := range m.items {
		st.Total++
		if e.IsActive {
			st.Active++
		} else {
			st.Inactive++
		}
		st.ByRole[e.Role]++
	}
	return st, nil
}

type memMaterials struct {
	items []*entity.Material
	seq   int
}

func (m *memMaterials) Create(_ context.Context, mat *entity.Material) error {
	m.seq++
	mat.ID = fmt.Sprintf("mat-%d", m.seq)
	mat.CreatedAt = time.Now()
	cp := *mat
	m.items = append(m.items, &cp)
	return nil
}

func (m *memMaterials) ListBySupplier(_ context.Context, supplierID string) ([]*entity.Material, error) {
	out := []*entity.Material{}
	for i := len(m.items) - 1; i >= 0; i-- {
		if m.items[i].SupplierID == supplierID {
			cp := *m.items[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memMaterials) ListAll(_ context.Context) ([]*entity.Material, error) {
	out := []*entity.Material{}
	for i := len(m.items) - 1; i >= 0; i-- {
		cp := *m.items[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memMaterials) Update(_ context.Context, supplierID, id string, upd repo.MaterialUpdate) (*entity.Material, error) {
	for _, e := range m.items {
		if e.ID == id && e.SupplierID == supplierID {
			if upd.Name != nil {
				e.Name = *upd.Name
			}
			if upd.Quantity != nil {
				e.Quantity = *upd.Quantity
			}
			if upd.Price != nil {
				e.Price = *upd.Price
			}
			if upd.ImageURL != nil {
				e.ImageURL = *upd.ImageURL
			}
			if upd.Description != nil {
				e.Description = *upd.Description
			}
			cp := *e
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memMaterials) Delete(_ context.Context, supplierID, id string) error {
	for i, e := range m.items {
		if e.ID == id && e.SupplierID == supplierID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

type memProducts struct {
	items []*entity.Product
	seq   int
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.seq++
	p.ID = fmt.Sprintf("prod-%d", m.seq)
	p.CreatedAt = time.Now()
	cp := *p
	m.items = append(m.items, &cp)
	return nil
}

func (m *memProducts) ListByManufacturer(_ context.Context, manufacturerID string) ([]*entity.Product, error) {
	out := []*entity.Product{}
	for i := len(m.items) - 1; i >= 0; i-- {
		if m.items[i].ManufacturerID == manufacturerID {
			cp := *m.items[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memProducts) ListAll(_ context.Context) ([]*entity.Product, error) {
	out := []*entity.Product{}
	for i := len(m.items) - 1; i >= 0; i-- {
		cp := *m.items[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memProducts) Update(_ context.Context, manufacturerID, id string, upd repo.ProductUpdate) (*entity.Product, error) {
	for _, e := range m.items {
		if e.ID == id && e.ManufacturerID == manufacturerID {
			if upd.Name != nil {
				e.Name = *upd.Name
			}
			if upd.Quantity != nil {
				e.Quantity = *upd.Quantity
			}
			if upd.Price != nil {
				e.Price = *upd.Price
			}
			if upd.ImageURL != nil {
				e.ImageURL = *upd.ImageURL
			}
			if upd.Description != nil {
				e.Description = *upd.Description
			}
			cp := *e
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memProducts) Delete(_ context.Context, manufacturerID, id string) error {
	for i, e := range m.items {
		if e.ID == id && e.ManufacturerID == manufacturerID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}
