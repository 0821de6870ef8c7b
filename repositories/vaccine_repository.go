package repositories

import (
	"context"
	"errors"

	"vaccinehub.app/configs/configsdatabase"
	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/models"
	"vaccinehub.app/pkg/queryparams"
	"vaccinehub.app/pkg/search"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IVaccineRepository aşı kataloğu işlemleri için arayüz.
type IVaccineRepository interface {
	Create(ctx context.Context, vaccine *models.Vaccine) error
	FindByID(ctx context.Context, id string) (*models.Vaccine, error)
	FindByCode(ctx context.Context, code string) (*models.Vaccine, error)
	FindAllEnabled(ctx context.Context) ([]models.Vaccine, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Vaccine, int64, error)
	Update(ctx context.Context, vaccine *models.Vaccine) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type VaccineRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Vaccine]
}

func NewVaccineRepository() IVaccineRepository {
	return NewVaccineRepositoryTx(configsdatabase.GetDB())
}

func NewVaccineRepositoryTx(tx *gorm.DB) IVaccineRepository {
	base := NewBaseRepository[models.Vaccine](tx)
	base.SetAllowedSortColumns([]string{"created_at", "code", "name", "stock_quantity"})
	return &VaccineRepository{db: tx, base: base}
}

func (r *VaccineRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *VaccineRepository) Create(ctx context.Context, vaccine *models.Vaccine) error {
	return r.base.Create(ctx, vaccine)
}

func (r *VaccineRepository) FindByID(ctx context.Context, id string) (*models.Vaccine, error) {
	return r.base.FindByID(ctx, id)
}

// FindByCode koda göre ilk eşleşen aşıyı getirir. Kod tekil olmadığından
// birden fazla eşleşmede en eski kayıt döner.
func (r *VaccineRepository) FindByCode(ctx context.Context, code string) (*models.Vaccine, error) {
	if code == "" {
		return nil, ErrNotFound
	}
	var vaccine models.Vaccine
	err := r.getDB(ctx).Where("code = ?", code).Order("created_at asc").First(&vaccine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("VaccineRepository.FindByCode: DB error", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return &vaccine, nil
}

// FindAllEnabled randevu formundaki aşı türü listesi için aktif aşıları ada göre döndürür.
func (r *VaccineRepository) FindAllEnabled(ctx context.Context) ([]models.Vaccine, error) {
	var vaccines []models.Vaccine
	err := r.getDB(ctx).Where("is_enabled = ?", true).Order("name asc").Find(&vaccines).Error
	return vaccines, err
}

func (r *VaccineRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Vaccine, int64, error) {
	var vaccines []models.Vaccine
	var totalCount int64

	query := r.getDB(ctx).Model(&models.Vaccine{})
	if params.Name != "" {
		nameFilter, nameArgs := search.SQLFilter("name", params.Name)
		codeFilter, codeArgs := search.SQLFilter("code", params.Name)
		query = query.Where(r.db.Where(nameFilter, nameArgs...).Or(codeFilter, codeArgs...))
	}
	if params.Status != "" {
		query = query.Where("is_enabled = ?", params.Status == "true")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("VaccineRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return vaccines, 0, nil
	}

	err := r.base.ApplySort(query, params, "").
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&vaccines).Error
	if err != nil {
		configslog.Log.Error("VaccineRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return vaccines, totalCount, nil
}

func (r *VaccineRepository) Update(ctx context.Context, vaccine *models.Vaccine) error {
	if vaccine == nil || vaccine.ID == "" {
		return errors.New("güncellenecek aşı geçerli değil")
	}
	return r.base.Save(ctx, vaccine)
}

func (r *VaccineRepository) Delete(ctx context.Context, id string) error {
	return r.base.Delete(ctx, id)
}

func (r *VaccineRepository) Count(ctx context.Context) (int64, error) {
	return r.base.Count(ctx)
}

var _ IVaccineRepository = (*VaccineRepository)(nil)
