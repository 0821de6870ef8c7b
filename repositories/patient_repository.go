package repositories

import (
	"context"
	"errors"

	"vaccinehub.app/configs/configsdatabase"
	"vaccinehub.app/models"

	"gorm.io/gorm"
)

// IPatientRepository hasta veritabanı işlemleri için arayüz.
type IPatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	FindByID(ctx context.Context, id string) (*models.Patient, error)
	Count(ctx context.Context) (int64, error)
}

type PatientRepository struct {
	base IBaseRepository[models.Patient]
}

func NewPatientRepository() IPatientRepository {
	return NewPatientRepositoryTx(configsdatabase.GetDB())
}

func NewPatientRepositoryTx(tx *gorm.DB) IPatientRepository {
	return &PatientRepository{base: NewBaseRepository[models.Patient](tx)}
}

// Create hastayı ekler. Kimlik alanlarından tam olarak biri dolu olmalıdır.
func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if patient == nil {
		return errors.New("boş hasta kaydı oluşturulamaz")
	}
	if (patient.NationalID == nil) == (patient.BirthCertificateID == nil) {
		return errors.New("hasta kaydında NID veya doğum belgesi numarasından yalnızca biri bulunmalı")
	}
	return r.base.Create(ctx, patient)
}

func (r *PatientRepository) FindByID(ctx context.Context, id string) (*models.Patient, error) {
	return r.base.FindByID(ctx, id)
}

func (r *PatientRepository) Count(ctx context.Context) (int64, error) {
	return r.base.Count(ctx)
}

var _ IPatientRepository = (*PatientRepository)(nil)
