// Package sync reconciles local contacts against the remote directory.
// A run works on a single remote snapshot and processes contacts
// sequentially; one contact failing never aborts the run, and the
// directory is never read back into local storage.
package sync

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kind_contact_server/internal/dao/mysql/repository"
	"kind_contact_server/internal/dto/respond"
	"kind_contact_server/internal/gateway/google"
	"kind_contact_server/internal/infrastructure/events"
	"kind_contact_server/internal/model"
	"kind_contact_server/pkg/errorx"
)

// DirectoryClient is the remote contact directory surface the reconciler
// needs. *google.Client satisfies it.
type DirectoryClient interface {
	ListConnections(ctx context.Context) ([]google.Person, error)
	CreateContact(ctx context.Context, person google.Person) (*google.Person, error)
	UpdateContact(ctx context.Context, resourceName string, person google.Person) (*google.Person, error)
}

type syncService struct {
	repos     *repository.Repositories
	directory DirectoryClient
	events    events.Writer
}

// NewSyncService wires the reconciler to its repositories, the directory
// client and the progress event writer.
func NewSyncService(repos *repository.Repositories, directory DirectoryClient, writer events.Writer) *syncService {
	if writer == nil {
		writer = events.NopWriter{}
	}
	return &syncService{repos: repos, directory: directory, events: writer}
}

// SyncContacts pushes every non-archived contact to the directory:
// matched contacts are updated in place, the rest are created. The
// remote listing is fetched once up front, so two local contacts
// matching the same remote entry both update it against the same etag.
func (s *syncService) SyncContacts(ctx context.Context) (*respond.SyncReportRespond, error) {
	report := &respond.SyncReportRespond{
		RunID:           uuid.NewString(),
		UpdatedContacts: []string{},
		Report:          []respond.SyncReportEntry{},
	}

	contacts, err := s.repos.Contact.FindAllActive()
	if err != nil {
		return nil, err
	}

	remote, err := s.directory.ListConnections(ctx)
	if err != nil {
		return nil, err
	}

	zap.L().Info("sync run started",
		zap.String("run_id", report.RunID),
		zap.Int("local_contacts", len(contacts)),
		zap.Int("remote_contacts", len(remote)))

	for i := range contacts {
		if err := ctx.Err(); err != nil {
			return report, errorx.Wrap(err, errorx.CodeServerBusy, "sync run canceled")
		}

		entry := s.syncOne(ctx, &contacts[i], remote)
		report.Report = append(report.Report, entry)
		if entry.Action != respond.SyncActionError {
			report.UpdatedContacts = append(report.UpdatedContacts, entry.Name)
		}

		event := events.SyncEvent{
			RunID:     report.RunID,
			ContactID: entry.ContactID,
			Name:      entry.Name,
			Action:    entry.Action,
			Error:     entry.Error,
			Timestamp: time.Now(),
		}
		if err := s.events.WriteEvent(ctx, event); err != nil {
			zap.L().Warn("publish sync event failed",
				zap.String("run_id", report.RunID),
				zap.Uint("contact_id", entry.ContactID),
				zap.Error(err))
		}
	}

	zap.L().Info("sync run finished",
		zap.String("run_id", report.RunID),
		zap.Int("processed", len(report.Report)),
		zap.Int("succeeded", len(report.UpdatedContacts)))
	return report, nil
}

// syncOne reconciles a single contact and never returns an error: any
// failure becomes an error entry so the run continues.
func (s *syncService) syncOne(ctx context.Context, contact *model.Contact, remote []google.Person) respond.SyncReportEntry {
	entry := respond.SyncReportEntry{
		ContactID: contact.ID,
		Name:      contact.DisplayName(),
	}

	person, err := s.buildPerson(contact)
	if err != nil {
		entry.Action = respond.SyncActionError
		entry.Error = err.Error()
		return entry
	}

	if match := findMatch(contact, remote); match != nil {
		person.Etag = match.Etag
		updated, err := s.directory.UpdateContact(ctx, match.ResourceName, person)
		if err != nil {
			entry.Action = respond.SyncActionError
			entry.Error = err.Error()
			return entry
		}
		entry.Action = respond.SyncActionUpdated
		entry.ResourceName = updated.ResourceName
		return entry
	}

	created, err := s.directory.CreateContact(ctx, person)
	if err != nil {
		entry.Action = respond.SyncActionError
		entry.Error = err.Error()
		return entry
	}
	entry.Action = respond.SyncActionCreated
	entry.ResourceName = created.ResourceName
	return entry
}

// buildPerson assembles the outbound payload: the name triple plus every
// phone value in ordinal order. Phone labels stay local.
func (s *syncService) buildPerson(contact *model.Contact) (google.Person, error) {
	phones, err := s.repos.Phone.FindByContactID(contact.ID)
	if err != nil {
		return google.Person{}, err
	}

	person := google.Person{
		Names: []google.Name{{
			GivenName:  contact.FirstName,
			MiddleName: contact.MiddleName,
			FamilyName: contact.LastName,
		}},
	}
	for _, p := range phones {
		person.PhoneNumbers = append(person.PhoneNumbers, google.PhoneNumber{Value: p.PhoneNumber})
	}
	return person, nil
}

// findMatch returns the first remote person the contact maps to. Given
// and family names must be equal as exact strings; two empty family
// names count as equal, so contacts without a last name match on first
// name alone. No fuzziness: trimming or case folding here would merge
// distinct people.
func findMatch(contact *model.Contact, remote []google.Person) *google.Person {
	for i := range remote {
		person := &remote[i]
		if person.GivenName() == contact.FirstName && person.FamilyName() == contact.LastName {
			return person
		}
	}
	return nil
}
