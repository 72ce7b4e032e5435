package repository

import (
	"kind_contact_server/internal/model"

	"gorm.io/gorm"
)

type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates the address repository.
func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) FindByID(id uint) (*model.Address, error) {
	var address model.Address
	if err := r.db.First(&address, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "find address id=%d", id)
	}
	return &address, nil
}

func (r *addressRepository) FindByContactID(contactID uint) ([]model.Address, error) {
	var addresses []model.Address
	err := r.db.Where("contact_id = ?", contactID).Order("ordinal").Find(&addresses).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "list addresses contact_id=%d", contactID)
	}
	return addresses, nil
}

func (r *addressRepository) Create(address *model.Address) error {
	if err := r.db.Create(address).Error; err != nil {
		return wrapDBError(err, "create address")
	}
	return nil
}

func (r *addressRepository) UpdateOrdinal(id uint, ordinal int) error {
	result := r.db.Model(&model.Address{}).Where("id = ?", id).Update("ordinal", ordinal)
	if result.Error != nil {
		return wrapDBErrorf(result.Error, "update address ordinal id=%d", id)
	}
	return nil
}

func (r *addressRepository) Delete(id uint) error {
	if err := r.db.Unscoped().Delete(&model.Address{}, id).Error; err != nil {
		return wrapDBErrorf(err, "delete address id=%d", id)
	}
	return nil
}

func (r *addressRepository) DeleteByContactID(contactID uint) error {
	err := r.db.Unscoped().Where("contact_id = ?", contactID).Delete(&model.Address{}).Error
	if err != nil {
		return wrapDBErrorf(err, "delete addresses contact_id=%d", contactID)
	}
	return nil
}
