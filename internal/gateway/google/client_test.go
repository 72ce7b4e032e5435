package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kind_contact_server/internal/config"
	"kind_contact_server/pkg/errorx"
)

func newTestClient(serverURL string) *Client {
	return NewClient(&config.GoogleConfig{
		BaseURL:  serverURL,
		APIToken: "test-token",
		PageSize: 2,
	})
}

func TestListConnectionsPaginatesAndAuthenticates(t *testing.T) {
	var authHeaders []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		if got := r.URL.Query().Get("personFields"); got != "names,phoneNumbers" {
			t.Errorf("personFields = %q", got)
		}

		resp := connectionsResponse{}
		if r.URL.Query().Get("pageToken") == "" {
			resp.Connections = []Person{
				{Names: []Name{{GivenName: "Ada", FamilyName: "Lovelace"}}},
				{Names: []Name{{GivenName: "Grace", FamilyName: "Hopper"}}},
			}
			resp.NextPageToken = "page2"
		} else {
			resp.Connections = []Person{
				{Names: []Name{{GivenName: "Alan", FamilyName: "Turing"}}},
			}
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	people, err := newTestClient(server.URL).ListConnections(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(people) != 3 {
		t.Fatalf("got %d people across pages, want 3", len(people))
	}
	if len(authHeaders) != 2 {
		t.Fatalf("made %d calls, want 2", len(authHeaders))
	}
	for _, h := range authHeaders {
		if h != "Bearer test-token" {
			t.Errorf("authorization header = %q", h)
		}
	}
}

func TestListConnectionsWithoutToken(t *testing.T) {
	client := NewClient(&config.GoogleConfig{BaseURL: "http://unused"})
	_, err := client.ListConnections(context.Background())
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("expected unauthorized without a token, got %v", err)
	}
}

func TestCreateContactPayload(t *testing.T) {
	var received Person
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/people:createContact" {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		received.ResourceName = "people/c99"
		json.NewEncoder(w).Encode(received)
	}))
	defer server.Close()

	person := Person{
		Names:        []Name{{GivenName: "Grace", FamilyName: "Hopper"}},
		PhoneNumbers: []PhoneNumber{{Value: "5550001111"}},
	}
	created, err := newTestClient(server.URL).CreateContact(context.Background(), person)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ResourceName != "people/c99" {
		t.Errorf("resource name = %q", created.ResourceName)
	}
	if len(received.PhoneNumbers) != 1 || received.PhoneNumbers[0].Value != "5550001111" {
		t.Errorf("sent phones = %+v", received.PhoneNumbers)
	}
}

func TestUpdateContactSendsEtagAndFieldMask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/people/c42:updateContact" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("updatePersonFields"); got != "names,phoneNumbers" {
			t.Errorf("updatePersonFields = %q", got)
		}
		var body Person
		json.NewDecoder(r.Body).Decode(&body)
		if body.Etag != "etag-42" {
			t.Errorf("etag = %q", body.Etag)
		}
		json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	person := Person{
		Etag:  "etag-42",
		Names: []Name{{GivenName: "Ada", FamilyName: "Lovelace"}},
	}
	if _, err := newTestClient(server.URL).UpdateContact(context.Background(), "people/c42", person); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestNonSuccessStatusBecomesExternalServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ListConnections(context.Background())
	if errorx.GetCode(err) != errorx.CodeExternalService {
		t.Fatalf("expected external service error, got %v", err)
	}
}
