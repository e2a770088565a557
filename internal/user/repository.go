package user

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/saulo-duarte/quiz-arena/internal/apperr"
)

var ErrUserNotFound = apperr.New(apperr.ErrNotFound, "user not found")

type Repository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	Upsert(ctx context.Context, username string, apply func(u *User)) (*User, error)
	List(ctx context.Context) ([]User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperr.Store("find user", err)
	}
	return &u, nil
}

// Upsert creates the username's row if needed, then applies fn to it under a
// row lock and writes it back, all in one transaction.
func (r *repository) Upsert(ctx context.Context, username string, apply func(u *User)) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seed := &User{Username: username, Level: 1, Achievements: []string{}}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(seed).Error; err != nil {
			return err
		}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&u, "username = ?", username).Error; err != nil {
			return err
		}
		if u.Achievements == nil {
			u.Achievements = []string{}
		}

		apply(&u)
		return tx.Save(&u).Error
	})
	if err != nil {
		return nil, apperr.Store("upsert user", err)
	}
	return &u, nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Order("total_quizzes DESC").
		Order("username ASC").
		Find(&users).Error
	if err != nil {
		return nil, apperr.Store("list users", err)
	}
	return users, nil
}
