// Package contact implements contact CRUD and keeps the sub-entity
// ordinal invariant: within one contact, phones (emails, addresses) are
// numbered densely from 1 after every mutation.
package contact

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"kind_contact_server/internal/dao/mysql/repository"
	myredis "kind_contact_server/internal/dao/redis"
	"kind_contact_server/internal/dto/request"
	"kind_contact_server/internal/dto/respond"
	"kind_contact_server/internal/model"
	"kind_contact_server/pkg/constants"
	"kind_contact_server/pkg/errorx"
)

var errDuplicateName = errorx.New(errorx.CodeDuplicateName, "a contact with this name already exists")

type contactService struct {
	repos *repository.Repositories
	cache myredis.CacheService // nil disables caching
}

// NewContactService wires the service to its repositories and the
// optional list cache.
func NewContactService(repos *repository.Repositories, cache myredis.CacheService) *contactService {
	return &contactService{repos: repos, cache: cache}
}

func (s *contactService) CreateContact(req request.CreateContactRequest) (uint, error) {
	duplicate, err := s.repos.Contact.HasDuplicateName(req.FirstName, req.MiddleName, req.LastName, 0)
	if err != nil {
		return 0, err
	}
	if duplicate {
		return 0, errDuplicateName
	}

	contact := &model.Contact{
		FirstName:            req.FirstName,
		MiddleName:           req.MiddleName,
		LastName:             req.LastName,
		Suffix:               req.Suffix,
		Nickname:             req.Nickname,
		Mnemonic:             req.Mnemonic,
		Summary:              req.Summary,
		IntroducedBy:         req.IntroducedBy,
		Website:              req.Website,
		Linkedin:             req.Linkedin,
		Instagram:            req.Instagram,
		Twitter:              req.Twitter,
		JobTitle:             req.JobTitle,
		Company:              req.Company,
		MainNationality:      req.MainNationality,
		SecondaryNationality: req.SecondaryNationality,
		BirthDay:             req.BirthDay,
		BirthMonth:           req.BirthMonth,
		BirthYear:            req.BirthYear,
	}
	if err := s.repos.Contact.Create(contact); err != nil {
		return 0, err
	}

	s.invalidateListCache()
	return contact.ID, nil
}

func (s *contactService) UpdateContact(id uint, req request.UpdateContactRequest) error {
	if _, err := s.repos.Contact.FindByID(id); err != nil {
		return err
	}

	duplicate, err := s.repos.Contact.HasDuplicateName(req.FirstName, req.MiddleName, req.LastName, id)
	if err != nil {
		return err
	}
	if duplicate {
		return errDuplicateName
	}

	updates := map[string]interface{}{
		"first_name":            req.FirstName,
		"middle_name":           req.MiddleName,
		"last_name":             req.LastName,
		"suffix":                req.Suffix,
		"nickname":              req.Nickname,
		"mnemonic":              req.Mnemonic,
		"summary":               req.Summary,
		"introduced_by":         req.IntroducedBy,
		"website":               req.Website,
		"linkedin":              req.Linkedin,
		"instagram":             req.Instagram,
		"twitter":               req.Twitter,
		"job_title":             req.JobTitle,
		"company":               req.Company,
		"main_nationality":      req.MainNationality,
		"secondary_nationality": req.SecondaryNationality,
		"birth_day":             req.BirthDay,
		"birth_month":           req.BirthMonth,
		"birth_year":            req.BirthYear,
	}
	if err := s.repos.Contact.UpdateFields(id, updates); err != nil {
		return err
	}

	s.invalidateListCache()
	return nil
}

func (s *contactService) GetContactDetail(id uint) (*respond.ContactDetailRespond, error) {
	contact, err := s.repos.Contact.FindByID(id)
	if err != nil {
		return nil, err
	}

	notes, err := s.repos.Note.FindByContactID(id)
	if err != nil {
		return nil, err
	}
	phones, err := s.repos.Phone.FindByContactID(id)
	if err != nil {
		return nil, err
	}
	emails, err := s.repos.Email.FindByContactID(id)
	if err != nil {
		return nil, err
	}
	addresses, err := s.repos.Address.FindByContactID(id)
	if err != nil {
		return nil, err
	}

	noteRsp := make([]respond.NoteRespond, 0, len(notes))
	for _, n := range notes {
		entry := respond.NoteRespond{
			NoteID:    n.ID,
			NoteText:  n.NoteText,
			CreatedOn: n.CreatedAt.Format("2006-01-02"),
		}
		if n.RelatedDate != nil {
			entry.RelatedDate = time.Time(*n.RelatedDate).Format("2006-01-02")
		}
		noteRsp = append(noteRsp, entry)
	}

	return &respond.ContactDetailRespond{
		Contact:   contact,
		Notes:     noteRsp,
		Phones:    phones,
		Emails:    emails,
		Addresses: addresses,
	}, nil
}

func (s *contactService) ListContacts() ([]respond.ContactListItem, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(context.Background(), constants.ContactListCacheKey)
		if err == nil && cached != "" {
			var items []respond.ContactListItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	contacts, err := s.repos.Contact.FindAllActive()
	if err != nil {
		return nil, err
	}

	// One phone query for the whole listing: rows come ordered by
	// ordinal, so the first phone seen per contact is its top one.
	phones, err := s.repos.Phone.FindAllOrdered()
	if err != nil {
		return nil, err
	}
	topPhone := make(map[uint]model.Phone, len(phones))
	for _, p := range phones {
		if _, ok := topPhone[p.ContactID]; !ok {
			topPhone[p.ContactID] = p
		}
	}

	items := make([]respond.ContactListItem, 0, len(contacts))
	for _, c := range contacts {
		item := respond.ContactListItem{Contact: c}
		if p, ok := topPhone[c.ID]; ok {
			number, label, ordinal := p.PhoneNumber, p.Label, p.Ordinal
			item.PhoneNumber = &number
			item.PhoneLabel = &label
			item.PhoneOrdinal = &ordinal
		}
		items = append(items, item)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(context.Background(), constants.ContactListCacheKey, string(payload), constants.CacheTTL); err != nil {
				zap.L().Warn("cache contact list failed", zap.Error(err))
			}
		}
	}

	return items, nil
}

func (s *contactService) ArchiveContact(id uint) error {
	if _, err := s.repos.Contact.FindByID(id); err != nil {
		return err
	}
	if err := s.repos.Contact.SetArchive(id, true); err != nil {
		return err
	}
	s.invalidateListCache()
	return nil
}

// DeleteContact hard-deletes a contact and every row that references it.
// Runs in one transaction so no sub-entity can outlive its parent. Notes
// whose only mapping pointed at this contact are removed too; notes still
// mapped to another contact survive.
func (s *contactService) DeleteContact(id uint) error {
	if _, err := s.repos.Contact.FindByID(id); err != nil {
		return err
	}
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Phone.DeleteByContactID(id); err != nil {
			return err
		}
		if err := tx.Email.DeleteByContactID(id); err != nil {
			return err
		}
		if err := tx.Address.DeleteByContactID(id); err != nil {
			return err
		}
		noteIDs, err := tx.Note.FindNoteIDsByContactID(id)
		if err != nil {
			return err
		}
		if err := tx.Note.DeleteMappingsByContactID(id); err != nil {
			return err
		}
		if err := tx.Note.DeleteOrphans(noteIDs); err != nil {
			return err
		}
		return tx.Contact.Delete(id)
	})
	if err != nil {
		return err
	}
	s.invalidateListCache()
	return nil
}

// AddNote inserts the note and its contact mapping in one transaction:
// both persist or neither does.
func (s *contactService) AddNote(contactID uint, req request.AddNoteRequest) error {
	if _, err := s.repos.Contact.FindByID(contactID); err != nil {
		return err
	}

	var relatedDate *datatypes.Date
	if req.RelatedDate != "" {
		parsed, err := time.Parse("2006-01-02", req.RelatedDate)
		if err != nil {
			return errorx.Wrap(err, errorx.CodeInvalidParam, "invalid related date")
		}
		d := datatypes.Date(parsed)
		relatedDate = &d
	}

	return s.repos.Transaction(func(tx *repository.Repositories) error {
		note := &model.Note{
			NoteText:    req.NoteText,
			RelatedDate: relatedDate,
		}
		if err := tx.Note.Create(note); err != nil {
			return err
		}
		return tx.Note.CreateMapping(&model.NoteMapping{
			NoteID:    note.ID,
			ContactID: contactID,
		})
	})
}

func (s *contactService) invalidateListCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(context.Background(), constants.ContactListCacheKey); err != nil {
		zap.L().Warn("invalidate contact list cache failed", zap.Error(err))
	}
}
