package repository

import (
	"kind_contact_server/internal/model"

	"gorm.io/gorm"
)

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates the note repository.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(note *model.Note) error {
	if err := r.db.Create(note).Error; err != nil {
		return wrapDBError(err, "create note")
	}
	return nil
}

func (r *noteRepository) CreateMapping(mapping *model.NoteMapping) error {
	if err := r.db.Create(mapping).Error; err != nil {
		return wrapDBError(err, "create note mapping")
	}
	return nil
}

func (r *noteRepository) FindByContactID(contactID uint) ([]model.Note, error) {
	var notes []model.Note
	err := r.db.
		Joins("JOIN note_mapping ON note_mapping.note_id = note.id").
		Where("note_mapping.contact_id = ?", contactID).
		Order("note.created_at DESC, note.id ASC").
		Find(&notes).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "list notes contact_id=%d", contactID)
	}
	return notes, nil
}

func (r *noteRepository) FindNoteIDsByContactID(contactID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.NoteMapping{}).
		Where("contact_id = ?", contactID).
		Pluck("note_id", &ids).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "list note ids contact_id=%d", contactID)
	}
	return ids, nil
}

func (r *noteRepository) DeleteMappingsByContactID(contactID uint) error {
	err := r.db.Unscoped().Where("contact_id = ?", contactID).Delete(&model.NoteMapping{}).Error
	if err != nil {
		return wrapDBErrorf(err, "delete note mappings contact_id=%d", contactID)
	}
	return nil
}

func (r *noteRepository) DeleteOrphans(noteIDs []uint) error {
	if len(noteIDs) == 0 {
		return nil
	}
	err := r.db.Unscoped().
		Where("id IN ?", noteIDs).
		Where("id NOT IN (?)", r.db.Model(&model.NoteMapping{}).Select("note_id")).
		Delete(&model.Note{}).Error
	if err != nil {
		return wrapDBError(err, "delete orphan notes")
	}
	return nil
}
