package repository

import (
	"kind_contact_server/internal/model"

	"gorm.io/gorm"
)

type emailRepository struct {
	db *gorm.DB
}

// NewEmailRepository creates the email repository.
func NewEmailRepository(db *gorm.DB) EmailRepository {
	return &emailRepository{db: db}
}

func (r *emailRepository) FindByID(id uint) (*model.Email, error) {
	var email model.Email
	if err := r.db.First(&email, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "find email id=%d", id)
	}
	return &email, nil
}

func (r *emailRepository) FindByContactID(contactID uint) ([]model.Email, error) {
	var emails []model.Email
	err := r.db.Where("contact_id = ?", contactID).Order("ordinal").Find(&emails).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "list emails contact_id=%d", contactID)
	}
	return emails, nil
}

func (r *emailRepository) Create(email *model.Email) error {
	if err := r.db.Create(email).Error; err != nil {
		return wrapDBError(err, "create email")
	}
	return nil
}

func (r *emailRepository) UpdateOrdinal(id uint, ordinal int) error {
	result := r.db.Model(&model.Email{}).Where("id = ?", id).Update("ordinal", ordinal)
	if result.Error != nil {
		return wrapDBErrorf(result.Error, "update email ordinal id=%d", id)
	}
	return nil
}

func (r *emailRepository) Delete(id uint) error {
	if err := r.db.Unscoped().Delete(&model.Email{}, id).Error; err != nil {
		return wrapDBErrorf(err, "delete email id=%d", id)
	}
	return nil
}

func (r *emailRepository) DeleteByContactID(contactID uint) error {
	err := r.db.Unscoped().Where("contact_id = ?", contactID).Delete(&model.Email{}).Error
	if err != nil {
		return wrapDBErrorf(err, "delete emails contact_id=%d", contactID)
	}
	return nil
}
