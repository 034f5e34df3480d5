// Package crm provides a lightweight client for the TriNextGen CRM REST API.
// Uses raw HTTP calls (no SDK); every call carries the caller's bearer
// credential explicitly, so a request can never pick up an ambient token.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/trinextgen/backoffice/internal/model"
)

// APIError is a non-2xx response from the CRM API. Handlers use the status
// code to decide what to surface; Body keeps the upstream message for logs.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("crm: upstream returned %d: %s", e.StatusCode, e.Body)
}

// Client is the CRM API surface the back office consumes. List calls return
// empty (never nil) slices when the upstream responds 2xx with a body that
// is not a JSON array — a malformed nested shape degrades to "no data"
// rather than failing the view.
type Client interface {
	GetClient(ctx context.Context, token, clientID string) (*model.Client, error)
	ListProjects(ctx context.Context, token, clientID string) ([]*model.Project, error)
	ListPayments(ctx context.Context, token, clientID string) ([]*model.Payment, error)
	CreateProject(ctx context.Context, token, clientID string, p *model.Project) error
	UpdateProject(ctx context.Context, token string, p *model.Project) error
	DeleteProject(ctx context.Context, token, projectID string) error
	CreatePayment(ctx context.Context, token, clientID string, y *model.Payment) error
	ListContacts(ctx context.Context, token string, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	UpdateContactStatus(ctx context.Context, token, id, status string) error
}

// HTTPClient is the production Client implementation.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// New creates an HTTPClient for the API at baseURL (no trailing slash needed).
func New(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, token, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	return data, nil
}

// decodeList unmarshals a JSON array into dst. A 2xx body that is not an
// array (null, error envelope, bare object) is left alone so the caller's
// empty slice stands.
func decodeList(data []byte, dst any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil
	}
	return json.Unmarshal(trimmed, dst)
}

// GetClient fetches one client profile.
func (c *HTTPClient) GetClient(ctx context.Context, token, clientID string) (*model.Client, error) {
	data, err := c.do(ctx, token, http.MethodGet, "/api/clients/"+url.PathEscape(clientID), nil)
	if err != nil {
		return nil, err
	}
	client := &model.Client{}
	if err := json.Unmarshal(data, client); err != nil {
		return nil, fmt.Errorf("crm: decode client: %w", err)
	}
	return client, nil
}

// ListProjects fetches all projects belonging to a client.
func (c *HTTPClient) ListProjects(ctx context.Context, token, clientID string) ([]*model.Project, error) {
	data, err := c.do(ctx, token, http.MethodGet, "/api/clients/"+url.PathEscape(clientID)+"/projects", nil)
	if err != nil {
		return nil, err
	}
	projects := []*model.Project{}
	if err := decodeList(data, &projects); err != nil {
		return nil, fmt.Errorf("crm: decode projects: %w", err)
	}
	return projects, nil
}

// ListPayments fetches all payments belonging to a client.
func (c *HTTPClient) ListPayments(ctx context.Context, token, clientID string) ([]*model.Payment, error) {
	data, err := c.do(ctx, token, http.MethodGet, "/api/clients/"+url.PathEscape(clientID)+"/payments", nil)
	if err != nil {
		return nil, err
	}
	payments := []*model.Payment{}
	if err := decodeList(data, &payments); err != nil {
		return nil, fmt.Errorf("crm: decode payments: %w", err)
	}
	return payments, nil
}

// CreateProject submits a new project under the given client. The payload
// carries the full requirement and file lists; there is no per-field PATCH.
func (c *HTTPClient) CreateProject(ctx context.Context, token, clientID string, p *model.Project) error {
	_, err := c.do(ctx, token, http.MethodPost, "/api/clients/"+url.PathEscape(clientID)+"/projects", p)
	return err
}

// UpdateProject replaces a project wholesale. Callers must resend unchanged
// requirement and file lists or the upstream drops them.
func (c *HTTPClient) UpdateProject(ctx context.Context, token string, p *model.Project) error {
	_, err := c.do(ctx, token, http.MethodPut, "/api/clientProject/"+url.PathEscape(p.ID), p)
	return err
}

// DeleteProject removes a project; the upstream cascades to its payments.
func (c *HTTPClient) DeleteProject(ctx context.Context, token, projectID string) error {
	_, err := c.do(ctx, token, http.MethodDelete, "/api/clientProject/"+url.PathEscape(projectID), nil)
	return err
}

// CreatePayment records a funds-received entry under the given client.
func (c *HTTPClient) CreatePayment(ctx context.Context, token, clientID string, y *model.Payment) error {
	_, err := c.do(ctx, token, http.MethodPost, "/api/clients/"+url.PathEscape(clientID)+"/payments", y)
	return err
}

// ListContacts fetches contact-form messages with optional status filter and
// pagination.
func (c *HTTPClient) ListContacts(ctx context.Context, token string, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	q := url.Values{}
	if opts.Status != "" && opts.Status != "all" {
		q.Set("status", opts.Status)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		q.Set("offset", strconv.Itoa(opts.Offset))
	}
	path := "/api/contacts"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	data, err := c.do(ctx, token, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	msgs := []*model.ContactMessage{}
	if err := decodeList(data, &msgs); err != nil {
		return nil, fmt.Errorf("crm: decode contacts: %w", err)
	}
	return msgs, nil
}

// UpdateContactStatus marks a contact message read or unread.
func (c *HTTPClient) UpdateContactStatus(ctx context.Context, token, id, status string) error {
	body := map[string]string{"status": status}
	_, err := c.do(ctx, token, http.MethodPut, "/api/contacts/"+url.PathEscape(id), body)
	return err
}
