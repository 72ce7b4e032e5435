// Package google implements the directory client over the Google People
// API. The remote service is outside this system's control, so every
// payload is a typed struct and every response is decoded defensively.
package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"kind_contact_server/internal/config"
	"kind_contact_server/pkg/constants"
	"kind_contact_server/pkg/errorx"
)

const defaultBaseURL = "https://people.googleapis.com/v1"

// Name is the name block of a directory person.
type Name struct {
	GivenName  string `json:"givenName,omitempty"`
	MiddleName string `json:"middleName,omitempty"`
	FamilyName string `json:"familyName,omitempty"`
}

// PhoneNumber is a phone value on a directory person. Labels are local
// detail and are not pushed.
type PhoneNumber struct {
	Value string `json:"value,omitempty"`
}

// Person is a directory entry. Etag must round-trip into updates or the
// remote side rejects them.
type Person struct {
	ResourceName string        `json:"resourceName,omitempty"`
	Etag         string        `json:"etag,omitempty"`
	Names        []Name        `json:"names,omitempty"`
	PhoneNumbers []PhoneNumber `json:"phoneNumbers,omitempty"`
}

// GivenName returns the first name block's given name, or "".
func (p *Person) GivenName() string {
	if len(p.Names) == 0 {
		return ""
	}
	return p.Names[0].GivenName
}

// FamilyName returns the first name block's family name, or "".
func (p *Person) FamilyName() string {
	if len(p.Names) == 0 {
		return ""
	}
	return p.Names[0].FamilyName
}

type connectionsResponse struct {
	Connections   []Person `json:"connections"`
	NextPageToken string   `json:"nextPageToken"`
}

// Client talks to the people directory with a fixed bearer token and a
// per-call timeout.
type Client struct {
	baseURL    string
	token      string
	pageSize   int
	httpClient *http.Client
}

// NewClient builds a directory client from config.
func NewClient(conf *config.GoogleConfig) *Client {
	baseURL := conf.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := time.Duration(conf.CallTimeout) * time.Second
	if timeout == 0 {
		timeout = constants.DirectoryCallTimeout
	}
	pageSize := conf.PageSize
	if pageSize == 0 {
		pageSize = 200
	}
	return &Client{
		baseURL:  baseURL,
		token:    conf.APIToken,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListConnections fetches the full remote contact list, following
// pagination. Called once per sync run so the loop works on a snapshot.
func (c *Client) ListConnections(ctx context.Context) ([]Person, error) {
	if c.token == "" {
		return nil, errorx.New(errorx.CodeUnauthorized, "no directory credential configured")
	}

	var people []Person
	pageToken := ""
	for {
		params := url.Values{}
		params.Set("personFields", "names,phoneNumbers")
		params.Set("pageSize", strconv.Itoa(c.pageSize))
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		endpoint := c.baseURL + "/people/me/connections?" + params.Encode()
		var page connectionsResponse
		if err := c.do(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
			return nil, err
		}

		people = append(people, page.Connections...)
		if page.NextPageToken == "" {
			return people, nil
		}
		pageToken = page.NextPageToken
	}
}

// CreateContact creates a new directory entry and returns it as stored
// remotely (including its assigned resource name).
func (c *Client) CreateContact(ctx context.Context, person Person) (*Person, error) {
	endpoint := c.baseURL + "/people:createContact"
	var created Person
	if err := c.do(ctx, http.MethodPost, endpoint, &person, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateContact replaces the names and phone numbers of an existing entry.
// The person's Etag must be the one from the listing snapshot.
func (c *Client) UpdateContact(ctx context.Context, resourceName string, person Person) (*Person, error) {
	params := url.Values{}
	params.Set("updatePersonFields", "names,phoneNumbers")
	endpoint := fmt.Sprintf("%s/%s:updateContact?%s", c.baseURL, resourceName, params.Encode())

	var updated Person
	if err := c.do(ctx, http.MethodPatch, endpoint, &person, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// do performs one authenticated call and decodes the response into out.
// Non-2xx statuses become external-service errors carrying the status and
// a truncated body excerpt.
func (c *Client) do(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errorx.Wrap(err, errorx.CodeExternalService, "encode directory request")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeExternalService, "build directory request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeExternalService, "directory call %s", method)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errorx.Wrap(err, errorx.CodeExternalService, "read directory response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := string(raw)
		if len(excerpt) > 256 {
			excerpt = excerpt[:256]
		}
		return errorx.Newf(errorx.CodeExternalService,
			"directory returned status %d: %s", resp.StatusCode, excerpt)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return errorx.Wrap(err, errorx.CodeExternalService, "decode directory response")
		}
	}
	return nil
}
