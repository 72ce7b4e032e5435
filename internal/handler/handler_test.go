package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"kind_contact_server/internal/dto/request"
	"kind_contact_server/internal/dto/respond"
	"kind_contact_server/internal/gateway/websocket"
	"kind_contact_server/internal/handler"
	"kind_contact_server/internal/https_server"
	"kind_contact_server/internal/service"
	"kind_contact_server/pkg/errorx"
	"kind_contact_server/pkg/util/jwt"
)

type stubContactService struct{}

func (stubContactService) CreateContact(req request.CreateContactRequest) (uint, error) {
	if req.FirstName == "Ada" {
		return 0, errorx.New(errorx.CodeDuplicateName, "a contact with this name already exists")
	}
	return 7, nil
}
func (stubContactService) UpdateContact(id uint, req request.UpdateContactRequest) error { return nil }
func (stubContactService) GetContactDetail(id uint) (*respond.ContactDetailRespond, error) {
	if id == 404 {
		return nil, errorx.Newf(errorx.CodeNotFound, "contact %d not found", id)
	}
	return &respond.ContactDetailRespond{}, nil
}
func (stubContactService) ListContacts() ([]respond.ContactListItem, error) {
	return []respond.ContactListItem{}, nil
}
func (stubContactService) ArchiveContact(id uint) error { return nil }
func (stubContactService) DeleteContact(id uint) error  { return nil }
func (stubContactService) AddNote(contactID uint, req request.AddNoteRequest) error {
	return nil
}
func (stubContactService) AddPhone(contactID uint, req request.AddPhoneRequest) (uint, error) {
	return 1, nil
}
func (stubContactService) RemovePhone(contactID, phoneID uint) error          { return nil }
func (stubContactService) ReorderPhone(contactID, phoneID uint, o int) error  { return nil }
func (stubContactService) AddEmail(contactID uint, req request.AddEmailRequest) (uint, error) {
	return 1, nil
}
func (stubContactService) RemoveEmail(contactID, emailID uint) error          { return nil }
func (stubContactService) ReorderEmail(contactID, emailID uint, o int) error  { return nil }
func (stubContactService) AddAddress(contactID uint, req request.AddAddressRequest) (uint, error) {
	return 1, nil
}
func (stubContactService) RemoveAddress(contactID, addressID uint) error         { return nil }
func (stubContactService) ReorderAddress(contactID, addressID uint, o int) error { return nil }

type stubSyncService struct{}

func (stubSyncService) SyncContacts(ctx context.Context) (*respond.SyncReportRespond, error) {
	return &respond.SyncReportRespond{
		RunID:           "run-1",
		UpdatedContacts: []string{"Ada Lovelace"},
		Report: []respond.SyncReportEntry{
			{ContactID: 1, Name: "Ada Lovelace", Action: respond.SyncActionUpdated, ResourceName: "people/c42"},
		},
	}, nil
}

type stubAuthService struct{}

func (stubAuthService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	return &respond.RegisterRespond{Uuid: "U1"}, nil
}
func (stubAuthService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	return &respond.LoginRespond{Uuid: "U1", AccessToken: "a", RefreshToken: "r"}, nil
}
func (stubAuthService) Refresh(token string) (*respond.LoginRespond, error) {
	return &respond.LoginRespond{}, nil
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt.Init("test-secret", 30, 168)
	if err := handler.InitTrans(); err != nil {
		t.Fatalf("init translations: %v", err)
	}
	service.Svc = &service.Services{
		Contact: stubContactService{},
		Sync:    stubSyncService{},
		Auth:    stubAuthService{},
	}
	return https_server.Init(websocket.NewHub())
}

func authedRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	token, err := jwt.GenerateAccessToken("U1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestContactsRequireAuth(t *testing.T) {
	engine := newTestEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacts", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated list: status %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, authedRequest(t, http.MethodGet, "/contacts", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("authenticated list: status %d, body %s", w.Code, w.Body.String())
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if _, ok := body["contacts"]; !ok {
		t.Errorf("list body missing contacts key: %s", w.Body.String())
	}
}

func TestRefreshTokenCannotOpenAPIRoutes(t *testing.T) {
	engine := newTestEngine(t)
	refresh, _, err := jwt.GenerateRefreshToken("U1")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("refresh token accepted on API route: status %d", w.Code)
	}
}

func TestCreateContactStatusMapping(t *testing.T) {
	engine := newTestEngine(t)

	// Missing required firstName -> 400 with an error message.
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, authedRequest(t, http.MethodPost, "/contacts", map[string]string{"lastName": "Lovelace"}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing first name: status %d", w.Code)
	}

	// Duplicate name conflict -> 400.
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, authedRequest(t, http.MethodPost, "/contacts", map[string]string{"firstName": "Ada"}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate name: status %d", w.Code)
	}

	// Success -> {"success":true,"id":7}.
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, authedRequest(t, http.MethodPost, "/contacts", map[string]string{"firstName": "Grace"}))
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d, body %s", w.Code, w.Body.String())
	}
	var created struct {
		Success bool `json:"success"`
		ID      uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if !created.Success || created.ID != 7 {
		t.Errorf("create body = %s", w.Body.String())
	}
}

func TestGetContactNotFound(t *testing.T) {
	engine := newTestEngine(t)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, authedRequest(t, http.MethodGet, "/contacts/404", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing contact: status %d", w.Code)
	}
}

func TestSyncContactsResponseShape(t *testing.T) {
	engine := newTestEngine(t)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, authedRequest(t, http.MethodPost, "/sync-contacts", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("sync: status %d, body %s", w.Code, w.Body.String())
	}

	var body struct {
		Success         bool                      `json:"success"`
		RunID           string                    `json:"runId"`
		UpdatedContacts []string                  `json:"updatedContacts"`
		Report          []respond.SyncReportEntry `json:"report"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Success || len(body.UpdatedContacts) != 1 || body.UpdatedContacts[0] != "Ada Lovelace" {
		t.Errorf("sync body = %s", w.Body.String())
	}
}

func TestHealthIsOpen(t *testing.T) {
	engine := newTestEngine(t)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health: status %d", w.Code)
	}
}
