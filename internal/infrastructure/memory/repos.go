package memory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/casa-esperanza/almacen-api/internal/domain"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

// Accesores de repositorio. Todos comparten el mismo Store.

func (s *Store) Warehouses() repository.WarehouseRepository       { return &warehouseRepo{s} }
func (s *Store) Products() repository.ProductRepository           { return &productRepo{s} }
func (s *Store) Variants() repository.VariantRepository           { return &variantRepo{s} }
func (s *Store) Lots() repository.LotRepository                   { return &lotRepo{s} }
func (s *Store) MovementTypes() repository.MovementTypeRepository { return &movementTypeRepo{s} }
func (s *Store) Movements() repository.MovementRepository         { return &movementRepo{s} }
func (s *Store) Donors() repository.DonorRepository               { return &donorRepo{s} }
func (s *Store) Donations() repository.DonationRepository         { return &donationRepo{s} }
func (s *Store) Sales() repository.SaleRepository                 { return &saleRepo{s} }
func (s *Store) Consumptions() repository.ConsumptionRepository   { return &consumptionRepo{s} }
func (s *Store) Users() repository.UserRepository                 { return &userRepo{s} }

// ── Warehouse ─────────────────────────────────────────────────────────────────

type warehouseRepo struct{ s *Store }

func (r *warehouseRepo) Create(w *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.warehouses[w.ID] = *w
	return nil
}

func (r *warehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *warehouseRepo) ListActive() ([]*entity.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Warehouse
	for _, w := range r.s.warehouses {
		if w.Active {
			c := w
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *warehouseRepo) Update(w *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.warehouses[w.ID] = *w
	return nil
}

// ── Product ───────────────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r *productRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = *p
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *productRepo) ListActive() ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if p.Active {
			c := p
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *productRepo) Update(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = *p
	return nil
}

// ── ProductVariant ────────────────────────────────────────────────────────────

type variantRepo struct{ s *Store }

func (r *variantRepo) Create(v *entity.ProductVariant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.variants[v.ID] = *v
	return nil
}

func (r *variantRepo) GetByID(id string) (*entity.ProductVariant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.variants[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *variantRepo) ListActiveByProduct(productID string) ([]*entity.ProductVariant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.ProductVariant
	for _, v := range r.s.variants {
		if v.Active && v.ProductID == productID {
			c := v
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *variantRepo) ListActive() ([]*entity.ProductVariant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.ProductVariant
	for _, v := range r.s.variants {
		if v.Active {
			c := v
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *variantRepo) Update(v *entity.ProductVariant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.variants[v.ID] = *v
	return nil
}

// ── Lot ───────────────────────────────────────────────────────────────────────

type lotRepo struct{ s *Store }

func (r *lotRepo) Create(lot *entity.Lot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lots[lot.ID] = *lot
	return nil
}

func (r *lotRepo) GetByID(id string) (*entity.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	lot, ok := r.s.lots[id]
	if !ok || !lot.Active {
		return nil, nil
	}
	c := lot
	return &c, nil
}

// GetForUpdate equivale a GetByID: el TxRunner de memoria serializa las
// transacciones completas, así que la fila ya está protegida.
func (r *lotRepo) GetForUpdate(id string) (*entity.Lot, error) {
	return r.GetByID(id)
}

func (r *lotRepo) UpdateCurrentQuantity(id string, quantity decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	lot, ok := r.s.lots[id]
	if !ok {
		return nil
	}
	lot.CurrentQuantity = quantity
	r.s.lots[id] = lot
	return nil
}

func (r *lotRepo) ListActiveByVariant(variantID string) ([]*entity.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Lot
	for _, lot := range r.s.lots {
		if lot.Active && lot.VariantID == variantID {
			c := lot
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *lotRepo) ListActiveByVariantAndWarehouse(variantID, warehouseID string) ([]*entity.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Lot
	for _, lot := range r.s.lots {
		if lot.Active && lot.VariantID == variantID && lot.WarehouseID == warehouseID {
			c := lot
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *lotRepo) ListAvailable(warehouseID string) ([]*entity.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Lot
	for _, lot := range r.s.lots {
		if lot.Active && lot.CurrentQuantity.GreaterThan(decimal.Zero) &&
			(warehouseID == "" || lot.WarehouseID == warehouseID) {
			c := lot
			list = append(list, &c)
		}
	}
	return list, nil
}

// ── MovementType ──────────────────────────────────────────────────────────────

type movementTypeRepo struct{ s *Store }

func (r *movementTypeRepo) GetByID(id string) (*entity.MovementType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.movementTypes[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *movementTypeRepo) GetByCode(code string) (*entity.MovementType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.movementTypes {
		if t.Code == code {
			c := t
			return &c, nil
		}
	}
	return nil, nil
}

func (r *movementTypeRepo) List() ([]*entity.MovementType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.MovementType, 0, len(r.s.movementTypes))
	for _, t := range r.s.movementTypes {
		c := t
		list = append(list, &c)
	}
	return list, nil
}

// ── Movement ──────────────────────────────────────────────────────────────────

type movementRepo struct{ s *Store }

func (r *movementRepo) Create(m *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.seq++
	m.Seq = r.s.seq
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r *movementRepo) ListByLot(lotID string) ([]*entity.Movement, error) {
	return r.List(repository.MovementFilter{LotID: lotID})
}

func (r *movementRepo) ListByVariant(variantID string) ([]*entity.Movement, error) {
	return r.List(repository.MovementFilter{VariantID: variantID})
}

func (r *movementRepo) ListByDateRange(from, to time.Time) ([]*entity.Movement, error) {
	return r.List(repository.MovementFilter{From: &from, To: &to})
}

func (r *movementRepo) List(f repository.MovementFilter) ([]*entity.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Movement
	for i := range r.s.movements {
		m := r.s.movements[i]
		if f.LotID != "" && m.LotID != f.LotID {
			continue
		}
		if f.VariantID != "" && m.VariantID != f.VariantID {
			continue
		}
		if f.MovementTypeID != "" && m.MovementTypeID != f.MovementTypeID {
			continue
		}
		if f.From != nil && m.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && m.Date.After(*f.To) {
			continue
		}
		c := m
		list = append(list, &c)
	}
	sortMovementsDesc(list)
	if f.Offset > 0 {
		if f.Offset >= len(list) {
			return nil, nil
		}
		list = list[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(list) {
		list = list[:f.Limit]
	}
	return list, nil
}

// ── Donor ─────────────────────────────────────────────────────────────────────

type donorRepo struct{ s *Store }

func (r *donorRepo) Create(d *entity.Donor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.donors[d.ID] = *d
	return nil
}

func (r *donorRepo) GetByID(id string) (*entity.Donor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.donors[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *donorRepo) List() ([]*entity.Donor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Donor, 0, len(r.s.donors))
	for _, d := range r.s.donors {
		c := d
		list = append(list, &c)
	}
	return list, nil
}

func (r *donorRepo) Update(d *entity.Donor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.donors[d.ID] = *d
	return nil
}

// ── Donation ──────────────────────────────────────────────────────────────────

type donationRepo struct{ s *Store }

func (r *donationRepo) CreateHeader(d *entity.Donation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	header := *d
	header.Details = nil
	r.s.donations[d.ID] = header
	return nil
}

func (r *donationRepo) CreateDetail(detail *entity.DonationDetail) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.donationDets = append(r.s.donationDets, *detail)
	return nil
}

func (r *donationRepo) GetByID(id string) (*entity.Donation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.donations[id]
	if !ok {
		return nil, nil
	}
	for _, det := range r.s.donationDets {
		if det.DonationID == id {
			d.Details = append(d.Details, det)
		}
	}
	return &d, nil
}

func (r *donationRepo) ListDetails(donationID string) ([]*entity.DonationDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.DonationDetail
	for _, det := range r.s.donationDets {
		if det.DonationID == donationID {
			c := det
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *donationRepo) List(limit, offset int) ([]*entity.Donation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Donation, 0, len(r.s.donations))
	for _, d := range r.s.donations {
		c := d
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return paginate(list, limit, offset), nil
}

// ── Sale ──────────────────────────────────────────────────────────────────────

type saleRepo struct{ s *Store }

func (r *saleRepo) CreateHeader(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	header := *sale
	header.Details = nil
	r.s.sales[sale.ID] = header
	return nil
}

func (r *saleRepo) CreateDetail(detail *entity.SaleDetail) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.saleDets = append(r.s.saleDets, *detail)
	return nil
}

func (r *saleRepo) GetByID(id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	for _, det := range r.s.saleDets {
		if det.SaleID == id {
			sale.Details = append(sale.Details, det)
		}
	}
	return &sale, nil
}

func (r *saleRepo) ListDetails(saleID string) ([]*entity.SaleDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.SaleDetail
	for _, det := range r.s.saleDets {
		if det.SaleID == saleID {
			c := det
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *saleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Sale, 0, len(r.s.sales))
	for _, sale := range r.s.sales {
		c := sale
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return paginate(list, limit, offset), nil
}

// ── KitchenConsumption ────────────────────────────────────────────────────────

type consumptionRepo struct{ s *Store }

func (r *consumptionRepo) Create(c *entity.KitchenConsumption) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.consumptions[c.ID] = *c
	return nil
}

func (r *consumptionRepo) GetByID(id string) (*entity.KitchenConsumption, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.consumptions[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *consumptionRepo) GetForUpdate(id string) (*entity.KitchenConsumption, error) {
	return r.GetByID(id)
}

func (r *consumptionRepo) Update(c *entity.KitchenConsumption) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.consumptions[c.ID] = *c
	return nil
}

func (r *consumptionRepo) ListPending() ([]*entity.KitchenConsumption, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.KitchenConsumption
	for _, c := range r.s.consumptions {
		if !c.Approved() {
			cc := c
			list = append(list, &cc)
		}
	}
	return list, nil
}

func (r *consumptionRepo) ListByResponsible(responsibleID string) ([]*entity.KitchenConsumption, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.KitchenConsumption
	for _, c := range r.s.consumptions {
		if c.ResponsibleID == responsibleID {
			cc := c
			list = append(list, &cc)
		}
	}
	return list, nil
}

// ── User ──────────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r *userRepo) Create(u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[u.ID] = *u
	return nil
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *userRepo) UpdateRole(id, role string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	u.UpdatedAt = time.Now()
	r.s.users[id] = u
	return nil
}

func (r *userRepo) FindByEmail(email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			c := u
			return &c, nil
		}
	}
	return nil, nil
}

func paginate[T any](list []*T, limit, offset int) []*T {
	if offset > 0 {
		if offset >= len(list) {
			return nil
		}
		list = list[offset:]
	}
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
