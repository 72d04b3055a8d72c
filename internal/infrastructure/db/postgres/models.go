package postgres

import (
	"time"

	"github.com/legalapp/case-management/internal/core/domain"
)

type clientModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"not null"`
	Email       string    `gorm:"not null;index"`
	CompanyName string
	CreatedAt   time.Time `gorm:"not null"`
	IsActive    bool      `gorm:"not null;index"`
}

func (clientModel) TableName() string { return "clients" }

func (m clientModel) toDomain() *domain.Client {
	return &domain.Client{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		CompanyName: m.CompanyName,
		CreatedAt:   m.CreatedAt.UTC(),
		IsActive:    m.IsActive,
	}
}

type caseModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"not null"`
	Description string
	ClientID    int64     `gorm:"not null;index"`
	Status      string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (caseModel) TableName() string { return "cases" }

func (m caseModel) toDomain() *domain.Case {
	return &domain.Case{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ClientID:    m.ClientID,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

type userModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"not null;uniqueIndex"`
	Email        string
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (userModel) TableName() string { return "users" }

func (m userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}
