package repositories

import (
	"context"
	"errors"
	"strings"

	"vaccinehub.app/pkg/queryparams"

	"gorm.io/gorm"
)

// ErrNotFound repository katmanının "kayıt yok" hatasıdır; gorm.ErrRecordNotFound buna çevrilir.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IBaseRepository standart CRUD işlemleri için generik arayüz.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id string) (*T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	SetAllowedSortColumns(columns []string)
	ApplySort(query *gorm.DB, params queryparams.ListParams, table string) *gorm.DB
}

// BaseRepository IBaseRepository arayüzünü uygular.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]struct{}
}

// NewBaseRepository verilen bağlantı (veya transaction) için base repo oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db, allowedSortColumns: map[string]struct{}{"created_at": {}}}
}

func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	r.allowedSortColumns = make(map[string]struct{}, len(columns))
	for _, col := range columns {
		r.allowedSortColumns[col] = struct{}{}
	}
}

func (r *BaseRepository[T]) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.getDB(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	var entity T
	if err := r.getDB(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.getDB(ctx).Save(entity).Error
}

// Delete kaydı soft delete ile siler.
func (r *BaseRepository[T]) Delete(ctx context.Context, id string) error {
	var entity T
	result := r.getDB(ctx).Where("id = ?", id).Delete(&entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	var entity T
	err := r.getDB(ctx).Model(&entity).Count(&count).Error
	return count, err
}

// ApplySort izin verilen sütunlardan birine göre sıralama ekler; izin verilmeyen
// sütunlarda created_at kullanılır.
func (r *BaseRepository[T]) ApplySort(query *gorm.DB, params queryparams.ListParams, table string) *gorm.DB {
	column := params.SortBy
	if _, ok := r.allowedSortColumns[column]; !ok {
		column = "created_at"
	}
	order := strings.ToLower(params.OrderBy)
	if order != "asc" && order != "desc" {
		order = queryparams.DefaultOrderBy
	}
	if table != "" {
		column = table + "." + column
	}
	return query.Order(column + " " + order)
}

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
