package contact

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"kind_contact_server/internal/dao/mysql"
	"kind_contact_server/internal/dao/mysql/repository"
	"kind_contact_server/internal/dto/request"
	"kind_contact_server/internal/model"
	"kind_contact_server/pkg/errorx"
)

// newTestService runs the full schema on a throwaway sqlite file so the
// tests exercise real SQL, not mocks. The raw handle comes back too, for
// direct row counts and schema tampering.
func newTestService(t *testing.T) (*contactService, *repository.Repositories, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "kind.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := mysql.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repos := repository.NewRepositories(db)
	return NewContactService(repos, nil), repos, db
}

func countRows(t *testing.T, db *gorm.DB, entity any) int64 {
	t.Helper()
	var count int64
	if err := db.Model(entity).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}

func mustCreateContact(t *testing.T, svc *contactService, first, middle, last string) uint {
	t.Helper()
	id, err := svc.CreateContact(request.CreateContactRequest{
		FirstName:  first,
		MiddleName: middle,
		LastName:   last,
	})
	if err != nil {
		t.Fatalf("create contact %s %s: %v", first, last, err)
	}
	return id
}

func TestCreateContactDuplicateName(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustCreateContact(t, svc, "Ada", "", "Lovelace")

	_, err := svc.CreateContact(request.CreateContactRequest{FirstName: "Ada", LastName: "Lovelace"})
	if errorx.GetCode(err) != errorx.CodeDuplicateName {
		t.Fatalf("expected duplicate name error, got %v", err)
	}

	// A different middle name is a different person.
	if _, err := svc.CreateContact(request.CreateContactRequest{
		FirstName: "Ada", MiddleName: "King", LastName: "Lovelace",
	}); err != nil {
		t.Fatalf("distinct middle name rejected: %v", err)
	}
}

func TestUpdateContactDuplicateNameExcludesSelf(t *testing.T) {
	svc, _, _ := newTestService(t)
	id := mustCreateContact(t, svc, "Grace", "", "Hopper")
	mustCreateContact(t, svc, "Alan", "", "Turing")

	// Re-saving a contact under its own name must pass the guard.
	if err := svc.UpdateContact(id, request.UpdateContactRequest{
		FirstName: "Grace", LastName: "Hopper",
	}); err != nil {
		t.Fatalf("self update rejected: %v", err)
	}

	// Renaming onto another contact's name must not.
	err := svc.UpdateContact(id, request.UpdateContactRequest{
		FirstName: "Alan", LastName: "Turing",
	})
	if errorx.GetCode(err) != errorx.CodeDuplicateName {
		t.Fatalf("expected duplicate name error, got %v", err)
	}
}

func TestArchivedContactFreesName(t *testing.T) {
	svc, _, _ := newTestService(t)
	id := mustCreateContact(t, svc, "Ada", "", "Lovelace")
	if err := svc.ArchiveContact(id); err != nil {
		t.Fatalf("archive: %v", err)
	}

	// The guard only looks at non-archived contacts.
	if _, err := svc.CreateContact(request.CreateContactRequest{
		FirstName: "Ada", LastName: "Lovelace",
	}); err != nil {
		t.Fatalf("name still blocked after archive: %v", err)
	}
}

func TestPhoneOrdinalsStayDense(t *testing.T) {
	svc, repos, _ := newTestService(t)
	id := mustCreateContact(t, svc, "Grace", "", "Hopper")

	var phoneIDs []uint
	for _, number := range []string{"111", "222", "333"} {
		pid, err := svc.AddPhone(id, request.AddPhoneRequest{PhoneNumber: number})
		if err != nil {
			t.Fatalf("add phone %s: %v", number, err)
		}
		phoneIDs = append(phoneIDs, pid)
	}

	assertOrdinals := func(wantNumbers []string) {
		t.Helper()
		phones, err := repos.Phone.FindByContactID(id)
		if err != nil {
			t.Fatalf("list phones: %v", err)
		}
		if len(phones) != len(wantNumbers) {
			t.Fatalf("got %d phones, want %d", len(phones), len(wantNumbers))
		}
		for i, p := range phones {
			if p.Ordinal != i+1 {
				t.Errorf("phone %s: ordinal %d, want %d", p.PhoneNumber, p.Ordinal, i+1)
			}
			if p.PhoneNumber != wantNumbers[i] {
				t.Errorf("position %d: number %s, want %s", i+1, p.PhoneNumber, wantNumbers[i])
			}
		}
	}

	assertOrdinals([]string{"111", "222", "333"})

	// Removing the middle phone closes the gap.
	if err := svc.RemovePhone(id, phoneIDs[1]); err != nil {
		t.Fatalf("remove phone: %v", err)
	}
	assertOrdinals([]string{"111", "333"})

	// Moving the last phone to the front renumbers everything.
	if err := svc.ReorderPhone(id, phoneIDs[2], 1); err != nil {
		t.Fatalf("reorder phone: %v", err)
	}
	assertOrdinals([]string{"333", "111"})

	// An out-of-range target clamps to the end instead of failing.
	if err := svc.ReorderPhone(id, phoneIDs[2], 99); err != nil {
		t.Fatalf("reorder with large ordinal: %v", err)
	}
	assertOrdinals([]string{"111", "333"})
}

func TestRemovePhoneOfOtherContact(t *testing.T) {
	svc, _, _ := newTestService(t)
	a := mustCreateContact(t, svc, "Ada", "", "Lovelace")
	b := mustCreateContact(t, svc, "Grace", "", "Hopper")

	pid, err := svc.AddPhone(a, request.AddPhoneRequest{PhoneNumber: "111"})
	if err != nil {
		t.Fatalf("add phone: %v", err)
	}

	err = svc.RemovePhone(b, pid)
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("expected not found for foreign phone, got %v", err)
	}
}

func TestListContactsTopPhoneAndOrder(t *testing.T) {
	svc, _, _ := newTestService(t)

	grace := mustCreateContact(t, svc, "Grace", "", "Hopper")
	ada := mustCreateContact(t, svc, "Ada", "", "Lovelace")
	archived := mustCreateContact(t, svc, "Alan", "", "Turing")
	if err := svc.ArchiveContact(archived); err != nil {
		t.Fatalf("archive: %v", err)
	}

	if _, err := svc.AddPhone(grace, request.AddPhoneRequest{PhoneNumber: "111", Label: "home"}); err != nil {
		t.Fatal(err)
	}
	pid, err := svc.AddPhone(grace, request.AddPhoneRequest{PhoneNumber: "222", Label: "work"})
	if err != nil {
		t.Fatal(err)
	}
	// Promote the work number so it becomes the top phone.
	if err := svc.ReorderPhone(grace, pid, 1); err != nil {
		t.Fatal(err)
	}

	items, err := svc.ListContacts()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d contacts, want 2 (archived excluded)", len(items))
	}
	if items[0].ID != ada || items[1].ID != grace {
		t.Fatalf("wrong listing order: %d, %d", items[0].ID, items[1].ID)
	}
	if items[0].PhoneNumber != nil {
		t.Errorf("contact without phones should have nil phone fields")
	}
	if items[1].PhoneNumber == nil || *items[1].PhoneNumber != "222" {
		t.Errorf("top phone should be the ordinal-1 number 222")
	}
	if items[1].PhoneLabel == nil || *items[1].PhoneLabel != "work" {
		t.Errorf("top phone label should be work")
	}
}

func TestAddNoteAtomicAndOrdered(t *testing.T) {
	svc, repos, _ := newTestService(t)
	id := mustCreateContact(t, svc, "Ada", "", "Lovelace")

	if err := svc.AddNote(id, request.AddNoteRequest{NoteText: "first note"}); err != nil {
		t.Fatalf("add note: %v", err)
	}
	if err := svc.AddNote(id, request.AddNoteRequest{NoteText: "with date", RelatedDate: "1843-09-05"}); err != nil {
		t.Fatalf("add dated note: %v", err)
	}

	// A malformed date must leave no orphan note behind.
	err := svc.AddNote(id, request.AddNoteRequest{NoteText: "bad", RelatedDate: "05/09/1843"})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("expected invalid param for bad date, got %v", err)
	}

	notes, err := repos.Note.FindByContactID(id)
	if err != nil {
		t.Fatalf("list notes: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(notes))
	}

	detail, err := svc.GetContactDetail(id)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if len(detail.Notes) != 2 {
		t.Fatalf("detail carries %d notes, want 2", len(detail.Notes))
	}
	for _, n := range detail.Notes {
		if n.NoteText == "with date" && n.RelatedDate != "1843-09-05" {
			t.Errorf("related date not preserved: %q", n.RelatedDate)
		}
	}
}

func TestAddNoteRollsBackWhenMappingFails(t *testing.T) {
	svc, _, db := newTestService(t)
	id := mustCreateContact(t, svc, "Ada", "", "Lovelace")

	// Dropping the mapping table makes the second insert of the
	// transaction fail after the note row already went in.
	if err := db.Migrator().DropTable(&model.NoteMapping{}); err != nil {
		t.Fatalf("drop mapping table: %v", err)
	}

	if err := svc.AddNote(id, request.AddNoteRequest{NoteText: "doomed"}); err == nil {
		t.Fatalf("add note succeeded without a mapping table")
	}

	// The rollback must take the note row with it.
	if n := countRows(t, db.Unscoped(), &model.Note{}); n != 0 {
		t.Fatalf("%d note rows persisted after the rollback", n)
	}
}

func TestAddNoteMissingContact(t *testing.T) {
	svc, _, _ := newTestService(t)
	err := svc.AddNote(9999, request.AddNoteRequest{NoteText: "orphan"})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteContactCascades(t *testing.T) {
	svc, repos, db := newTestService(t)
	id := mustCreateContact(t, svc, "Ada", "", "Lovelace")

	if _, err := svc.AddPhone(id, request.AddPhoneRequest{PhoneNumber: "111"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddEmail(id, request.AddEmailRequest{Email: "ada@example.com"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddAddress(id, request.AddAddressRequest{AddressText: "12 St James Square"}); err != nil {
		t.Fatal(err)
	}
	if err := svc.AddNote(id, request.AddNoteRequest{NoteText: "note"}); err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteContact(id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repos.Contact.FindByID(id); !errorx.IsNotFound(err) {
		t.Fatalf("contact still present after delete: %v", err)
	}
	// Raw row counts: the join-based listing would hide orphans.
	if n := countRows(t, db.Unscoped(), &model.Phone{}); n != 0 {
		t.Errorf("%d phone rows survived the delete", n)
	}
	if n := countRows(t, db.Unscoped(), &model.NoteMapping{}); n != 0 {
		t.Errorf("%d note mapping rows survived the delete", n)
	}
	if n := countRows(t, db.Unscoped(), &model.Note{}); n != 0 {
		t.Errorf("%d orphan note rows survived the delete", n)
	}
}

func TestDeleteContactKeepsSharedNotes(t *testing.T) {
	svc, repos, db := newTestService(t)
	ada := mustCreateContact(t, svc, "Ada", "", "Lovelace")
	grace := mustCreateContact(t, svc, "Grace", "", "Hopper")

	if err := svc.AddNote(ada, request.AddNoteRequest{NoteText: "met at the analytical engine demo"}); err != nil {
		t.Fatal(err)
	}
	adaNotes, err := repos.Note.FindByContactID(ada)
	if err != nil {
		t.Fatal(err)
	}
	if len(adaNotes) != 1 {
		t.Fatalf("got %d notes, want 1", len(adaNotes))
	}
	// Attach the same note to a second contact.
	if err := repos.Note.CreateMapping(&model.NoteMapping{NoteID: adaNotes[0].ID, ContactID: grace}); err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteContact(ada); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// The note still maps to Grace, so it must survive.
	if n := countRows(t, db.Unscoped(), &model.Note{}); n != 1 {
		t.Fatalf("shared note rows = %d, want 1", n)
	}
	graceNotes, err := repos.Note.FindByContactID(grace)
	if err != nil {
		t.Fatal(err)
	}
	if len(graceNotes) != 1 {
		t.Errorf("shared note no longer reachable from the surviving contact")
	}
}
