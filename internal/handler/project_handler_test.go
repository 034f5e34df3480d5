package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/trinextgen/backoffice/internal/model"
	"github.com/trinextgen/backoffice/internal/service"
)

func TestProjectHandler_Create_RespondsWithReloadedDashboard(t *testing.T) {
	created := false
	reloaded := false
	projects := &mockProjectService{
		createFunc: func(_ context.Context, token, clientID string, p *model.Project) error {
			if clientID != "c1" || p.ClientID != "c1" {
				t.Errorf("clientID binding: %q / %q", clientID, p.ClientID)
			}
			created = true
			return nil
		},
	}
	dashboards := &mockDashboardService{
		loadFunc: func(_ context.Context, _, clientID string) (*model.Dashboard, error) {
			if !created {
				t.Error("dashboard reloaded before create confirmed")
			}
			reloaded = true
			return &model.Dashboard{Client: &model.Client{ID: clientID}}, nil
		},
	}
	h := NewProjectHandler(projects, dashboards)

	body := strings.NewReader(`{"title":"Corporate Website","category":"Web App","totalAmount":80000}`)
	req := authedRequest(http.MethodPost, "/api/admin/clients/c1/projects", "c1", body)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !reloaded {
		t.Error("success response must carry the reloaded dashboard")
	}
}

func TestProjectHandler_Create_InvalidPayloadIs400(t *testing.T) {
	projects := &mockProjectService{
		createFunc: func(_ context.Context, _, _ string, _ *model.Project) error {
			return fmt.Errorf("%w: title is required", service.ErrInvalid)
		},
	}
	h := NewProjectHandler(projects, &mockDashboardService{})

	body := strings.NewReader(`{"category":"Web App"}`)
	req := authedRequest(http.MethodPost, "/api/admin/clients/c1/projects", "c1", body)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "title is required") {
		t.Errorf("detail missing: %s", rec.Body.String())
	}
}

func TestProjectHandler_Update_TakesIDFromPath(t *testing.T) {
	var got *model.Project
	projects := &mockProjectService{
		updateFunc: func(_ context.Context, _ string, p *model.Project) error {
			got = p
			return nil
		},
	}
	h := NewProjectHandler(projects, &mockDashboardService{})

	body := strings.NewReader(`{"id":"ignored","clientId":"c1","title":"Rebrand","category":"UI/UX Design"}`)
	req := authedRequest(http.MethodPut, "/api/admin/projects/p9", "p9", body)
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got == nil || got.ID != "p9" {
		t.Errorf("path id must win over body id, got %+v", got)
	}
}

func TestProjectHandler_Update_MissingClientIDIs400(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{}, &mockDashboardService{})

	body := strings.NewReader(`{"title":"Rebrand","category":"UI/UX Design"}`)
	req := authedRequest(http.MethodPut, "/api/admin/projects/p9", "p9", body)
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestProjectHandler_Delete_AppliesOnlyAfterUpstreamConfirms(t *testing.T) {
	deleted := false
	projects := &mockProjectService{
		deleteFunc: func(_ context.Context, _, projectID string) error {
			if projectID != "p9" {
				t.Errorf("projectID = %q", projectID)
			}
			deleted = true
			return nil
		},
	}
	dashboards := &mockDashboardService{
		loadFunc: func(_ context.Context, _, clientID string) (*model.Dashboard, error) {
			if !deleted {
				t.Error("reload must happen after the upstream confirms the delete")
			}
			return &model.Dashboard{Client: &model.Client{ID: clientID}}, nil
		},
	}
	h := NewProjectHandler(projects, dashboards)

	req := authedRequest(http.MethodDelete, "/api/admin/projects/p9?client_id=c1", "p9", nil)
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestProjectHandler_Delete_RejectedUpstreamLeavesStateVisible(t *testing.T) {
	projects := &mockProjectService{
		deleteFunc: func(_ context.Context, _, _ string) error {
			return context.DeadlineExceeded
		},
	}
	reloaded := false
	dashboards := &mockDashboardService{
		loadFunc: func(_ context.Context, _, _ string) (*model.Dashboard, error) {
			reloaded = true
			return nil, nil
		},
	}
	h := NewProjectHandler(projects, dashboards)

	req := authedRequest(http.MethodDelete, "/api/admin/projects/p9?client_id=c1", "p9", nil)
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", rec.Code)
	}
	if reloaded {
		t.Error("failed delete must not respond with a reloaded view")
	}
}

func TestProjectHandler_Delete_MissingClientIDQueryIs400(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{}, &mockDashboardService{})

	req := authedRequest(http.MethodDelete, "/api/admin/projects/p9", "p9", nil)
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
