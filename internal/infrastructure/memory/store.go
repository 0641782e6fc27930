// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Respaldado por un mutex, con transacciones por snapshot/restore:
// suficiente para tests del motor y para demos sin PostgreSQL.
package memory

import (
	"sort"
	"sync"

	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
)

// Store guarda todo el estado en memoria. Los repos guardan y devuelven copias
// para que el caller no pueda mutar el estado interno por referencia.
type Store struct {
	mu sync.Mutex

	warehouses    map[string]entity.Warehouse
	products      map[string]entity.Product
	variants      map[string]entity.ProductVariant
	lots          map[string]entity.Lot
	movementTypes map[string]entity.MovementType
	movements     []entity.Movement
	seq           int64
	donors        map[string]entity.Donor
	donations     map[string]entity.Donation
	donationDets  []entity.DonationDetail
	sales         map[string]entity.Sale
	saleDets      []entity.SaleDetail
	consumptions  map[string]entity.KitchenConsumption
	users         map[string]entity.User
}

// NewStore crea un Store vacío con el catálogo de tipos de movimiento sembrado
// (mismos códigos que la migración SQL).
func NewStore() *Store {
	s := &Store{
		warehouses:    map[string]entity.Warehouse{},
		products:      map[string]entity.Product{},
		variants:      map[string]entity.ProductVariant{},
		lots:          map[string]entity.Lot{},
		movementTypes: map[string]entity.MovementType{},
		donors:        map[string]entity.Donor{},
		donations:     map[string]entity.Donation{},
		sales:         map[string]entity.Sale{},
		consumptions:  map[string]entity.KitchenConsumption{},
		users:         map[string]entity.User{},
	}
	for _, t := range []entity.MovementType{
		{ID: "mt-donation-in", Code: entity.MovementCodeDonationIn, Name: "Entrada Donativo", Factor: entity.FactorEntry},
		{ID: "mt-bazaar-out", Code: entity.MovementCodeBazaarSaleOut, Name: "Salida por Venta", Factor: entity.FactorExit},
		{ID: "mt-kitchen-out", Code: entity.MovementCodeKitchenOut, Name: "Salida por Consumo Cocina", Factor: entity.FactorExit},
		{ID: "mt-adjust-in", Code: entity.MovementCodeAdjustIn, Name: "Ajuste de Entrada", Factor: entity.FactorEntry},
		{ID: "mt-adjust-out", Code: entity.MovementCodeAdjustOut, Name: "Ajuste de Salida", Factor: entity.FactorExit},
	} {
		s.movementTypes[t.ID] = t
	}
	return s
}

// snapshot copia el estado completo para poder restaurarlo si la transacción
// falla. Las entidades se copian por valor; los campos puntero (ApprovedBy,
// DonationID, ...) solo se reasignan vía Update, así que compartirlos entre
// snapshot y estado vivo es seguro.
type snapshot struct {
	warehouses    map[string]entity.Warehouse
	products      map[string]entity.Product
	variants      map[string]entity.ProductVariant
	lots          map[string]entity.Lot
	movementTypes map[string]entity.MovementType
	movements     []entity.Movement
	seq           int64
	donors        map[string]entity.Donor
	donations     map[string]entity.Donation
	donationDets  []entity.DonationDetail
	sales         map[string]entity.Sale
	saleDets      []entity.SaleDetail
	consumptions  map[string]entity.KitchenConsumption
	users         map[string]entity.User
}

func copyMap[V any](src map[string]V) map[string]V {
	dst := make(map[string]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (s *Store) takeSnapshot() snapshot {
	return snapshot{
		warehouses:    copyMap(s.warehouses),
		products:      copyMap(s.products),
		variants:      copyMap(s.variants),
		lots:          copyMap(s.lots),
		movementTypes: copyMap(s.movementTypes),
		movements:     append([]entity.Movement(nil), s.movements...),
		seq:           s.seq,
		donors:        copyMap(s.donors),
		donations:     copyMap(s.donations),
		donationDets:  append([]entity.DonationDetail(nil), s.donationDets...),
		sales:         copyMap(s.sales),
		saleDets:      append([]entity.SaleDetail(nil), s.saleDets...),
		consumptions:  copyMap(s.consumptions),
		users:         copyMap(s.users),
	}
}

func (s *Store) restore(snap snapshot) {
	s.warehouses = snap.warehouses
	s.products = snap.products
	s.variants = snap.variants
	s.lots = snap.lots
	s.movementTypes = snap.movementTypes
	s.movements = snap.movements
	s.seq = snap.seq
	s.donors = snap.donors
	s.donations = snap.donations
	s.donationDets = snap.donationDets
	s.sales = snap.sales
	s.saleDets = snap.saleDets
	s.consumptions = snap.consumptions
	s.users = snap.users
}

// sortMovementsDesc ordena en orden de auditoría: fecha DESC, secuencia DESC.
func sortMovementsDesc(movs []*entity.Movement) {
	sort.SliceStable(movs, func(i, j int) bool {
		if movs[i].Date.Equal(movs[j].Date) {
			return movs[i].Seq > movs[j].Seq
		}
		return movs[i].Date.After(movs[j].Date)
	})
}
