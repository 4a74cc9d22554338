package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blog/backend/internal/domain/blog"
	"github.com/blog/backend/internal/domain/shared"
	"github.com/blog/backend/internal/infrastructure/persistence/models"
)

// GormAuthorRepository implements blog.AuthorRepository using GORM
type GormAuthorRepository struct {
	db *gorm.DB
}

// NewGormAuthorRepository creates a new GormAuthorRepository
func NewGormAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{db: db}
}

// FindByID finds an author by its ID
func (r *GormAuthorRepository) FindByID(ctx context.Context, id uuid.UUID) (*blog.Author, error) {
	var model models.AuthorModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	author, err := model.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: author %s: %v", shared.ErrDataCorruption, id, err)
	}
	return author, nil
}

// FindAll finds all authors matching the filter
func (r *GormAuthorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]blog.Author, error) {
	var authorModels []models.AuthorModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.AuthorModel{}), filter)

	if err := query.Find(&authorModels).Error; err != nil {
		return nil, err
	}

	authors := make([]blog.Author, len(authorModels))
	for i, model := range authorModels {
		author, err := model.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: author %s: %v", shared.ErrDataCorruption, model.ID, err)
		}
		authors[i] = *author
	}
	return authors, nil
}

// Save creates or updates an author
func (r *GormAuthorRepository) Save(ctx context.Context, author *blog.Author) error {
	model := models.AuthorModelFromDomain(author)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an author by ID
func (r *GormAuthorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AuthorModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByID checks whether an author with the given ID exists
func (r *GormAuthorRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AuthorModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count counts authors matching the filter
func (r *GormAuthorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&models.AuthorModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormAuthorRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	field := ValidateSortField(filter.OrderBy, AuthorSortFields, "created_at")
	return query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
}

func (r *GormAuthorRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ?", pattern, pattern)
	}
	return query
}

var _ blog.AuthorRepository = (*GormAuthorRepository)(nil)
