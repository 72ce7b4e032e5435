package repository

import (
	"kind_contact_server/internal/model"

	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates the contact repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) FindByID(id uint) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.First(&contact, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "find contact id=%d", id)
	}
	return &contact, nil
}

func (r *contactRepository) FindAllActive() ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.db.
		Where("archive = ?", false).
		Order("first_name, middle_name, last_name, suffix, id").
		Find(&contacts).Error
	if err != nil {
		return nil, wrapDBError(err, "list contacts")
	}
	return contacts, nil
}

// HasDuplicateName implements the soft duplicate guard: exact match on the
// (first, middle, last) triple among non-archived contacts, excluding the
// row being updated.
func (r *contactRepository) HasDuplicateName(first, middle, last string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&model.Contact{}).
		Where("first_name = ? AND middle_name = ? AND last_name = ?", first, middle, last).
		Where("archive = ?", false)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, wrapDBError(err, "check duplicate contact name")
	}
	return count > 0, nil
}

func (r *contactRepository) Create(contact *model.Contact) error {
	if err := r.db.Create(contact).Error; err != nil {
		return wrapDBError(err, "create contact")
	}
	return nil
}

func (r *contactRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	result := r.db.Model(&model.Contact{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return wrapDBErrorf(result.Error, "update contact id=%d", id)
	}
	return nil
}

func (r *contactRepository) SetArchive(id uint, archived bool) error {
	result := r.db.Model(&model.Contact{}).Where("id = ?", id).Update("archive", archived)
	if result.Error != nil {
		return wrapDBErrorf(result.Error, "archive contact id=%d", id)
	}
	return nil
}

func (r *contactRepository) Delete(id uint) error {
	if err := r.db.Unscoped().Delete(&model.Contact{}, id).Error; err != nil {
		return wrapDBErrorf(err, "delete contact id=%d", id)
	}
	return nil
}
