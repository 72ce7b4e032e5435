package contact

import (
	"kind_contact_server/internal/dao/mysql/repository"
	"kind_contact_server/internal/dto/request"
	"kind_contact_server/internal/model"
	"kind_contact_server/pkg/errorx"
)

// ordinalRow is the slice element the renumbering helper works on,
// independent of the concrete sub-entity type.
type ordinalRow struct {
	id      uint
	ordinal int
}

// renumber writes ordinals 1..N over rows (already in their intended
// order), touching only the rows whose stored ordinal differs.
func renumber(rows []ordinalRow, update func(id uint, ordinal int) error) error {
	for i, row := range rows {
		want := i + 1
		if row.ordinal == want {
			continue
		}
		if err := update(row.id, want); err != nil {
			return err
		}
	}
	return nil
}

// moveRow relocates the row at index from to the 1-based position pos,
// clamped to the slice bounds.
func moveRow(rows []ordinalRow, from int, pos int) []ordinalRow {
	if pos < 1 {
		pos = 1
	}
	if pos > len(rows) {
		pos = len(rows)
	}
	row := rows[from]
	rows = append(rows[:from], rows[from+1:]...)
	to := pos - 1
	rows = append(rows[:to], append([]ordinalRow{row}, rows[to:]...)...)
	return rows
}

// ==================== Phones ====================

func (s *contactService) AddPhone(contactID uint, req request.AddPhoneRequest) (uint, error) {
	if _, err := s.repos.Contact.FindByID(contactID); err != nil {
		return 0, err
	}
	existing, err := s.repos.Phone.FindByContactID(contactID)
	if err != nil {
		return 0, err
	}

	phone := &model.Phone{
		ContactID:   contactID,
		PhoneNumber: req.PhoneNumber,
		Label:       req.Label,
		Ordinal:     len(existing) + 1,
	}
	if err := s.repos.Phone.Create(phone); err != nil {
		return 0, err
	}
	s.invalidateListCache()
	return phone.ID, nil
}

func (s *contactService) RemovePhone(contactID, phoneID uint) error {
	phone, err := s.repos.Phone.FindByID(phoneID)
	if err != nil {
		return err
	}
	if phone.ContactID != contactID {
		return errorx.Newf(errorx.CodeNotFound, "phone %d does not belong to contact %d", phoneID, contactID)
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Phone.Delete(phoneID); err != nil {
			return err
		}
		remaining, err := tx.Phone.FindByContactID(contactID)
		if err != nil {
			return err
		}
		rows := make([]ordinalRow, 0, len(remaining))
		for _, p := range remaining {
			rows = append(rows, ordinalRow{id: p.ID, ordinal: p.Ordinal})
		}
		return renumber(rows, tx.Phone.UpdateOrdinal)
	})
	if err != nil {
		return err
	}
	s.invalidateListCache()
	return nil
}

func (s *contactService) ReorderPhone(contactID, phoneID uint, ordinal int) error {
	phones, err := s.repos.Phone.FindByContactID(contactID)
	if err != nil {
		return err
	}
	rows := make([]ordinalRow, 0, len(phones))
	from := -1
	for i, p := range phones {
		if p.ID == phoneID {
			from = i
		}
		rows = append(rows, ordinalRow{id: p.ID, ordinal: p.Ordinal})
	}
	if from == -1 {
		return errorx.Newf(errorx.CodeNotFound, "phone %d does not belong to contact %d", phoneID, contactID)
	}

	rows = moveRow(rows, from, ordinal)
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		return renumber(rows, tx.Phone.UpdateOrdinal)
	})
	if err != nil {
		return err
	}
	s.invalidateListCache()
	return nil
}

// ==================== Emails ====================

func (s *contactService) AddEmail(contactID uint, req request.AddEmailRequest) (uint, error) {
	if _, err := s.repos.Contact.FindByID(contactID); err != nil {
		return 0, err
	}
	existing, err := s.repos.Email.FindByContactID(contactID)
	if err != nil {
		return 0, err
	}

	email := &model.Email{
		ContactID: contactID,
		Email:     req.Email,
		Label:     req.Label,
		Ordinal:   len(existing) + 1,
	}
	if err := s.repos.Email.Create(email); err != nil {
		return 0, err
	}
	return email.ID, nil
}

func (s *contactService) RemoveEmail(contactID, emailID uint) error {
	email, err := s.repos.Email.FindByID(emailID)
	if err != nil {
		return err
	}
	if email.ContactID != contactID {
		return errorx.Newf(errorx.CodeNotFound, "email %d does not belong to contact %d", emailID, contactID)
	}

	return s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Email.Delete(emailID); err != nil {
			return err
		}
		remaining, err := tx.Email.FindByContactID(contactID)
		if err != nil {
			return err
		}
		rows := make([]ordinalRow, 0, len(remaining))
		for _, e := range remaining {
			rows = append(rows, ordinalRow{id: e.ID, ordinal: e.Ordinal})
		}
		return renumber(rows, tx.Email.UpdateOrdinal)
	})
}

func (s *contactService) ReorderEmail(contactID, emailID uint, ordinal int) error {
	emails, err := s.repos.Email.FindByContactID(contactID)
	if err != nil {
		return err
	}
	rows := make([]ordinalRow, 0, len(emails))
	from := -1
	for i, e := range emails {
		if e.ID == emailID {
			from = i
		}
		rows = append(rows, ordinalRow{id: e.ID, ordinal: e.Ordinal})
	}
	if from == -1 {
		return errorx.Newf(errorx.CodeNotFound, "email %d does not belong to contact %d", emailID, contactID)
	}

	rows = moveRow(rows, from, ordinal)
	return s.repos.Transaction(func(tx *repository.Repositories) error {
		return renumber(rows, tx.Email.UpdateOrdinal)
	})
}

// ==================== Addresses ====================

func (s *contactService) AddAddress(contactID uint, req request.AddAddressRequest) (uint, error) {
	if _, err := s.repos.Contact.FindByID(contactID); err != nil {
		return 0, err
	}
	existing, err := s.repos.Address.FindByContactID(contactID)
	if err != nil {
		return 0, err
	}

	address := &model.Address{
		ContactID:   contactID,
		AddressText: req.AddressText,
		Label:       req.Label,
		Ordinal:     len(existing) + 1,
	}
	if err := s.repos.Address.Create(address); err != nil {
		return 0, err
	}
	return address.ID, nil
}

func (s *contactService) RemoveAddress(contactID, addressID uint) error {
	address, err := s.repos.Address.FindByID(addressID)
	if err != nil {
		return err
	}
	if address.ContactID != contactID {
		return errorx.Newf(errorx.CodeNotFound, "address %d does not belong to contact %d", addressID, contactID)
	}

	return s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Address.Delete(addressID); err != nil {
			return err
		}
		remaining, err := tx.Address.FindByContactID(contactID)
		if err != nil {
			return err
		}
		rows := make([]ordinalRow, 0, len(remaining))
		for _, a := range remaining {
			rows = append(rows, ordinalRow{id: a.ID, ordinal: a.Ordinal})
		}
		return renumber(rows, tx.Address.UpdateOrdinal)
	})
}

func (s *contactService) ReorderAddress(contactID, addressID uint, ordinal int) error {
	addresses, err := s.repos.Address.FindByContactID(contactID)
	if err != nil {
		return err
	}
	rows := make([]ordinalRow, 0, len(addresses))
	from := -1
	for i, a := range addresses {
		if a.ID == addressID {
			from = i
		}
		rows = append(rows, ordinalRow{id: a.ID, ordinal: a.Ordinal})
	}
	if from == -1 {
		return errorx.Newf(errorx.CodeNotFound, "address %d does not belong to contact %d", addressID, contactID)
	}

	rows = moveRow(rows, from, ordinal)
	return s.repos.Transaction(func(tx *repository.Repositories) error {
		return renumber(rows, tx.Address.UpdateOrdinal)
	})
}
