package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/legalapp/case-management/internal/core/domain"
	"github.com/legalapp/case-management/internal/core/ports"
)

// ClientRepository implements ports.ClientRepository.
type ClientRepository struct {
	db *gorm.DB
}

var _ ports.ClientRepository = (*ClientRepository)(nil)

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	m := clientModel{
		Name:        c.Name,
		Email:       c.Email,
		CompanyName: c.CompanyName,
		CreatedAt:   c.CreatedAt.UTC(),
		IsActive:    c.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	c.ID = m.ID
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m clientModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ClientRepository) List(ctx context.Context, f ports.ClientFilter) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []clientModel
	if err := applyClientFilter(r.db.WithContext(ctx), f).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	out := make([]*domain.Client, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&clientModel{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":         c.Name,
		"email":        c.Email,
		"company_name": c.CompanyName,
		"is_active":    c.IsActive,
	})
	if res.Error != nil {
		return fmt.Errorf("update client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// applyClientFilter mirrors ports.ClientFilter.Matches in SQL. strpos keeps
// the search a case-sensitive substring match without LIKE escaping.
func applyClientFilter(q *gorm.DB, f ports.ClientFilter) *gorm.DB {
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if f.Email != "" {
		q = q.Where("email = ?", f.Email)
	}
	if f.ExcludeID != 0 {
		q = q.Where("id <> ?", f.ExcludeID)
	}
	if f.Search != "" {
		q = q.Where("strpos(name, ?) > 0 OR strpos(email, ?) > 0 OR strpos(company_name, ?) > 0",
			f.Search, f.Search, f.Search)
	}
	return q
}

// CaseRepository implements ports.CaseRepository.
type CaseRepository struct {
	db *gorm.DB
}

var _ ports.CaseRepository = (*CaseRepository)(nil)

func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

func (r *CaseRepository) Create(ctx context.Context, c *domain.Case) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	m := caseModel{
		Title:       c.Title,
		Description: c.Description,
		ClientID:    c.ClientID,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert case: %w", err)
	}
	c.ID = m.ID
	return nil
}

func (r *CaseRepository) List(ctx context.Context) ([]*domain.Case, error) {
	return r.find(ctx, r.db)
}

func (r *CaseRepository) ListByClient(ctx context.Context, clientID int64) ([]*domain.Case, error) {
	return r.find(ctx, r.db.Where("client_id = ?", clientID))
}

func (r *CaseRepository) find(ctx context.Context, q *gorm.DB) ([]*domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []caseModel
	if err := q.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	out := make([]*domain.Case, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m userModel
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	m := userModel{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = m.ID
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n int64
	if err := r.db.WithContext(ctx).Model(&userModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
