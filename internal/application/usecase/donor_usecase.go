package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/casa-esperanza/almacen-api/internal/application/dto"
	"github.com/casa-esperanza/almacen-api/internal/domain/entity"
	"github.com/casa-esperanza/almacen-api/internal/domain/repository"
)

// DonorUseCase casos de uso CRUD para donadores.
type DonorUseCase struct {
	repo repository.DonorRepository
}

// NewDonorUseCase construye el caso de uso.
func NewDonorUseCase(repo repository.DonorRepository) *DonorUseCase {
	return &DonorUseCase{repo: repo}
}

// Create registra un donador.
func (uc *DonorUseCase) Create(in dto.CreateDonorRequest) (*dto.DonorResponse, error) {
	now := time.Now()
	donor := &entity.Donor{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Type:          in.Type,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(donor); err != nil {
		return nil, err
	}
	return toDonorResponse(donor), nil
}

// GetByID obtiene un donador; nil si no existe.
func (uc *DonorUseCase) GetByID(id string) (*dto.DonorResponse, error) {
	donor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, nil
	}
	return toDonorResponse(donor), nil
}

// Update actualiza un donador.
func (uc *DonorUseCase) Update(id string, in dto.UpdateDonorRequest) (*dto.DonorResponse, error) {
	donor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, nil
	}
	if in.Name != nil {
		donor.Name = *in.Name
	}
	if in.Type != nil {
		donor.Type = *in.Type
	}
	if in.ContactPerson != nil {
		donor.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		donor.Email = *in.Email
	}
	if in.Phone != nil {
		donor.Phone = *in.Phone
	}
	if in.Address != nil {
		donor.Address = *in.Address
	}
	if in.Active != nil {
		donor.Active = *in.Active
	}
	donor.UpdatedAt = time.Now()
	if err := uc.repo.Update(donor); err != nil {
		return nil, err
	}
	return toDonorResponse(donor), nil
}

// List lista todos los donadores.
func (uc *DonorUseCase) List() ([]dto.DonorResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.DonorResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDonorResponse(d))
	}
	return items, nil
}

func toDonorResponse(d *entity.Donor) *dto.DonorResponse {
	return &dto.DonorResponse{
		ID:            d.ID,
		Name:          d.Name,
		Type:          d.Type,
		ContactPerson: d.ContactPerson,
		Email:         d.Email,
		Phone:         d.Phone,
		Address:       d.Address,
		Active:        d.Active,
		CreatedAt:     d.CreatedAt,
	}
}
