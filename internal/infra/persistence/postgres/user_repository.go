// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"edusync/internal/domain/entity"
	domainerrors "edusync/internal/domain/errors"
	"edusync/internal/domain/repository"
	"edusync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by exact (case-sensitive) email match.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// List returns every user ordered by name.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, m := range userModels {
		users = append(users, toUserDomain(m))
	}

	return users, nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.ID == uuid.Nil {
		userM.ID = uuid.New()
	}
	userM.Version = 1

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return mapWriteError(err, "failed to create user", domainerrors.ErrUserAlreadyExists)
	}

	user.ID = userM.ID
	user.Version = userM.Version
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes profile fields and credentials guarded by the version column.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	columns := map[string]any{
		"name":          user.Name,
		"email":         user.Email,
		"role":          user.Role.String(),
		"password_hash": user.PasswordHash,
		"password_salt": user.PasswordSalt,
	}

	version, updatedAt, err := updateVersioned(ctx, repo.db, &model.UserModel{}, user.ID, user.Version, columns, repository.ErrUserNotFound)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return err
		}

		return mapWriteError(err, "failed to update user", domainerrors.ErrUserAlreadyExists)
	}

	user.Version = version
	user.UpdatedAt = updatedAt

	return nil
}

// Delete physically removes the user.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := deleteByIDs(ctx, repo.db, &model.UserModel{}, []uuid.UUID{id})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		PasswordSalt: data.PasswordSalt,
		Role:         entity.Role(data.Role),
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		PasswordSalt: data.PasswordSalt,
		Role:         data.Role.String(),
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
