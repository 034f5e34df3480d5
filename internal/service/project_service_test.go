package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trinextgen/backoffice/internal/model"
)

func validTestProject() *model.Project {
	return &model.Project{
		ClientID:    "c1",
		Title:       "Corporate Website",
		Category:    model.CategoryWebApp,
		TotalAmount: decimal.NewFromInt(80000),
		AdvancePaid: decimal.NewFromInt(20000),
		Status:      "Active",
	}
}

func TestProjectService_Create_SendsFullPayload(t *testing.T) {
	var sent *model.Project
	mock := &mockCRMClient{
		createProjectFunc: func(_ context.Context, token, clientID string, p *model.Project) error {
			if token != "tok" || clientID != "c1" {
				t.Errorf("token/clientID = %q/%q", token, clientID)
			}
			sent = p
			return nil
		},
	}
	svc := NewProjectService(mock)

	p := validTestProject()
	if err := svc.Create(context.Background(), "tok", "c1", p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent == nil {
		t.Fatal("upstream create never called")
	}
	if sent.Requirements == nil || sent.Files == nil {
		t.Error("list fields must be normalized to empty slices")
	}
}

func TestProjectService_Create_RejectsInvalidPayloads(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *model.Project)
	}{
		{"missing title", func(p *model.Project) { p.Title = "" }},
		{"unknown category", func(p *model.Project) { p.Category = "Consulting" }},
		{"negative total", func(p *model.Project) { p.TotalAmount = decimal.NewFromInt(-1) }},
		{"negative advance", func(p *model.Project) { p.AdvancePaid = decimal.NewFromInt(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mock := &mockCRMClient{
				createProjectFunc: func(_ context.Context, _, _ string, _ *model.Project) error {
					called = true
					return nil
				},
			}
			svc := NewProjectService(mock)

			p := validTestProject()
			tt.mutate(p)
			err := svc.Create(context.Background(), "tok", "c1", p)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
			if called {
				t.Error("invalid payload must never reach the upstream")
			}
		})
	}
}

func TestProjectService_Update_RequiresID(t *testing.T) {
	svc := NewProjectService(&mockCRMClient{})

	p := validTestProject()
	if err := svc.Update(context.Background(), "tok", p); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for missing id, got %v", err)
	}

	p.ID = "p1"
	if err := svc.Update(context.Background(), "tok", p); err != nil {
		t.Errorf("unexpected error with id set: %v", err)
	}
}

func TestProjectService_Delete_PropagatesUpstreamFailure(t *testing.T) {
	upstream := errors.New("upstream down")
	mock := &mockCRMClient{
		deleteProjectFunc: func(_ context.Context, _, projectID string) error {
			if projectID != "p1" {
				t.Errorf("projectID = %q", projectID)
			}
			return upstream
		},
	}
	svc := NewProjectService(mock)

	if err := svc.Delete(context.Background(), "tok", "p1"); !errors.Is(err, upstream) {
		t.Errorf("expected upstream error, got %v", err)
	}
}

func TestAddRequirement_AssignsProvisionalID(t *testing.T) {
	now := time.Now()
	reqs := AddRequirement(nil, "Responsive layout", now)
	reqs = AddRequirement(reqs, "Admin panel", now)

	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
	if reqs[0].ID == "" || reqs[1].ID == "" {
		t.Error("requirements must get provisional IDs")
	}
	if reqs[0].ID == reqs[1].ID {
		t.Error("IDs must be unique")
	}
	if reqs[1].Text != "Admin panel" {
		t.Errorf("text = %q", reqs[1].Text)
	}
}

func TestRemoveRequirement(t *testing.T) {
	now := time.Now()
	reqs := AddRequirement(nil, "one", now)
	reqs = AddRequirement(reqs, "two", now)

	out := RemoveRequirement(reqs, reqs[0].ID)
	if len(out) != 1 || out[0].Text != "two" {
		t.Errorf("after remove: %+v", out)
	}

	// unknown id is a no-op
	if got := RemoveRequirement(reqs, "nope"); len(got) != 2 {
		t.Errorf("unknown id removed something: %+v", got)
	}
}
