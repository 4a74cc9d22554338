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

// GormPostRepository implements blog.PostRepository using GORM
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// FindByID finds a post by its ID
func (r *GormPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	var model models.PostModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	post, err := model.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: post %s: %v", shared.ErrDataCorruption, id, err)
	}
	return post, nil
}

// FindAll finds all posts matching the filter
func (r *GormPostRepository) FindAll(ctx context.Context, filter shared.Filter) ([]blog.Post, error) {
	var postModels []models.PostModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PostModel{}), filter)

	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}
	return r.toDomainSlice(postModels)
}

// FindByAuthor finds all posts written by the given author
func (r *GormPostRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID, filter shared.Filter) ([]blog.Post, error) {
	var postModels []models.PostModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.PostModel{}).Where("author_id = ?", authorID),
		filter,
	)

	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}
	return r.toDomainSlice(postModels)
}

// Save creates or updates a post
func (r *GormPostRepository) Save(ctx context.Context, post *blog.Post) error {
	model := models.PostModelFromDomain(post)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a post by ID
func (r *GormPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PostModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByAuthor removes all posts written by the given author.
// Deleting zero rows is not an error; the author may have no posts.
func (r *GormPostRepository) DeleteByAuthor(ctx context.Context, authorID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.PostModel{}, "author_id = ?", authorID).Error
}

// Count counts posts matching the filter
func (r *GormPostRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&models.PostModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByAuthor counts posts written by the given author
func (r *GormPostRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PostModel{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPostRepository) toDomainSlice(postModels []models.PostModel) ([]blog.Post, error) {
	posts := make([]blog.Post, len(postModels))
	for i, model := range postModels {
		post, err := model.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: post %s: %v", shared.ErrDataCorruption, model.ID, err)
		}
		posts[i] = *post
	}
	return posts, nil
}

func (r *GormPostRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	field := ValidateSortField(filter.OrderBy, PostSortFields, "created_at")
	return query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
}

func (r *GormPostRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	return query
}

var _ blog.PostRepository = (*GormPostRepository)(nil)
