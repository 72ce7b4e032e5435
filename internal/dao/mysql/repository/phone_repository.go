package repository

import (
	"kind_contact_server/internal/model"

	"gorm.io/gorm"
)

type phoneRepository struct {
	db *gorm.DB
}

// NewPhoneRepository creates the phone repository.
func NewPhoneRepository(db *gorm.DB) PhoneRepository {
	return &phoneRepository{db: db}
}

func (r *phoneRepository) FindByID(id uint) (*model.Phone, error) {
	var phone model.Phone
	if err := r.db.First(&phone, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "find phone id=%d", id)
	}
	return &phone, nil
}

func (r *phoneRepository) FindByContactID(contactID uint) ([]model.Phone, error) {
	var phones []model.Phone
	err := r.db.Where("contact_id = ?", contactID).Order("ordinal").Find(&phones).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "list phones contact_id=%d", contactID)
	}
	return phones, nil
}

func (r *phoneRepository) FindAllOrdered() ([]model.Phone, error) {
	var phones []model.Phone
	if err := r.db.Order("ordinal").Find(&phones).Error; err != nil {
		return nil, wrapDBError(err, "list all phones")
	}
	return phones, nil
}

func (r *phoneRepository) Create(phone *model.Phone) error {
	if err := r.db.Create(phone).Error; err != nil {
		return wrapDBError(err, "create phone")
	}
	return nil
}

func (r *phoneRepository) UpdateOrdinal(id uint, ordinal int) error {
	result := r.db.Model(&model.Phone{}).Where("id = ?", id).Update("ordinal", ordinal)
	if result.Error != nil {
		return wrapDBErrorf(result.Error, "update phone ordinal id=%d", id)
	}
	return nil
}

func (r *phoneRepository) Delete(id uint) error {
	if err := r.db.Unscoped().Delete(&model.Phone{}, id).Error; err != nil {
		return wrapDBErrorf(err, "delete phone id=%d", id)
	}
	return nil
}

func (r *phoneRepository) DeleteByContactID(contactID uint) error {
	err := r.db.Unscoped().Where("contact_id = ?", contactID).Delete(&model.Phone{}).Error
	if err != nil {
		return wrapDBErrorf(err, "delete phones contact_id=%d", contactID)
	}
	return nil
}
