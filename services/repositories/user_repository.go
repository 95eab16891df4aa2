package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/pup-picks/pawmatch_api/model"
	"gorm.io/gorm"
)

// UserRepository handles user accounts and dog profiles.
type UserRepository struct {
	BaseRepository
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *UserRepository) GetUser(userID string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) GetUserByEmailOrUsername(emailOrUsername string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("email = ? OR username = ?", emailOrUsername, emailOrUsername).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) GetUserByReferralCode(code string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("referral_code = ?", code).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) UsernameExists(username string) (bool, error) {
	var count int64
	if err := ds.db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ds *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := ds.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ds *UserRepository) CreateUser(user *model.User) (*model.User, error) {
	if user.ID == "" {
		id, _ := uuid.NewV7()
		user.ID = id.String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if err := ds.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (ds *UserRepository) UpdateUser(user *model.User) error {
	user.UpdatedAt = time.Now()
	return ds.db.Save(user).Error
}

func (ds *UserRepository) GetDogProfile(userID string) (*model.DogProfile, error) {
	var profile model.DogProfile
	if err := ds.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (ds *UserRepository) SaveDogProfile(profile *model.DogProfile) (*model.DogProfile, error) {
	if profile.ID == "" {
		id, _ := uuid.NewV7()
		profile.ID = id.String()
		profile.CreatedAt = time.Now()
	}
	profile.UpdatedAt = time.Now()
	if err := ds.db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
