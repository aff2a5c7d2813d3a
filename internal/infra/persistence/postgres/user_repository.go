package postgres

import (
	"context"
	"time"

	"terraverde/internal/domain/entity"
	"terraverde/internal/domain/repository"
	"terraverde/internal/errors"
	"terraverde/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserEntity(&userModel), nil
}

func (r *userRepository) FindByOpenID(ctx context.Context, openID string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("open_id = ?", openID).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by open ID")
	}

	return toUserEntity(&userModel), nil
}

func (r *userRepository) Upsert(ctx context.Context, user *entity.User) error {
	now := time.Now()
	userModel := toUserModel(user)
	userModel.LastSignedIn = now
	if userModel.Role == "" {
		userModel.Role = entity.RoleUser.String()
	}
	if userModel.AccessLevel == "" {
		userModel.AccessLevel = entity.AccessFree.String()
	}

	// Keyed by the provider's OpenID: new identities insert a fresh row with
	// the defaults (role user, access level free), returning identities only
	// refresh the provider-supplied fields. picture_url is deliberately not
	// in the update set: it is user-editable via the profile picture upload,
	// and the provider avatar must not overwrite a custom upload on the next
	// sign-in.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "open_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "email", "login_method", "last_signed_in", "updated_at",
			}),
		}).
		Create(userModel).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert user")
	}

	// Re-read so the caller sees the persisted role/access level of a
	// returning user rather than the zero-value defaults it passed in.
	persisted, err := r.FindByOpenID(ctx, user.OpenID)
	if err != nil {
		return err
	}
	*user = *persisted

	return nil
}

func (r *userRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userModel := range userModels {
		users = append(users, toUserEntity(userModel))
	}

	return users, nil
}

func toUserEntity(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:                 m.ID,
		OpenID:             m.OpenID,
		Name:               m.Name,
		Email:              m.Email,
		LoginMethod:        m.LoginMethod,
		Role:               entity.Role(m.Role),
		AccessLevel:        entity.AccessLevel(m.AccessLevel),
		Phone:              m.Phone,
		Address:            m.Address,
		Bio:                m.Bio,
		PictureURL:         m.PictureURL,
		EmailNotifications: m.EmailNotifications,
		OrderUpdates:       m.OrderUpdates,
		LastSignedIn:       m.LastSignedIn,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toUserModel(e *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:                 e.ID,
		OpenID:             e.OpenID,
		Name:               e.Name,
		Email:              e.Email,
		LoginMethod:        e.LoginMethod,
		Role:               string(e.Role),
		AccessLevel:        string(e.AccessLevel),
		Phone:              e.Phone,
		Address:            e.Address,
		Bio:                e.Bio,
		PictureURL:         e.PictureURL,
		EmailNotifications: e.EmailNotifications,
		OrderUpdates:       e.OrderUpdates,
		LastSignedIn:       e.LastSignedIn,
	}
}
