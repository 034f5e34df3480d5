package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trinextgen/backoffice/internal/model"
	"github.com/trinextgen/backoffice/pkg/crm"
)

// ErrInvalid marks a payload the service refused before any upstream call.
// Handlers unwrap it to a 400; the wrapped message names the bad field.
var ErrInvalid = errors.New("invalid input")

// ProjectService provides business logic for project management. Mutations
// are sent upstream only after local validation; nothing is applied
// optimistically, so a failed call leaves the upstream state untouched.
type ProjectService interface {
	Create(ctx context.Context, token, clientID string, p *model.Project) error
	Update(ctx context.Context, token string, p *model.Project) error
	Delete(ctx context.Context, token, projectID string) error
}

type projectService struct {
	crm crm.Client
}

// NewProjectService creates a ProjectService backed by the CRM API.
func NewProjectService(c crm.Client) ProjectService {
	return &projectService{crm: c}
}

func (s *projectService) Create(ctx context.Context, token, clientID string, p *model.Project) error {
	if clientID == "" {
		return fmt.Errorf("%w: client id is required", ErrInvalid)
	}
	if err := validateProject(p); err != nil {
		return err
	}
	normalizeProject(p)
	return s.crm.CreateProject(ctx, token, clientID, p)
}

func (s *projectService) Update(ctx context.Context, token string, p *model.Project) error {
	if p.ID == "" {
		return fmt.Errorf("%w: project id is required", ErrInvalid)
	}
	if err := validateProject(p); err != nil {
		return err
	}
	normalizeProject(p)
	return s.crm.UpdateProject(ctx, token, p)
}

func (s *projectService) Delete(ctx context.Context, token, projectID string) error {
	if projectID == "" {
		return fmt.Errorf("%w: project id is required", ErrInvalid)
	}
	return s.crm.DeleteProject(ctx, token, projectID)
}

func validateProject(p *model.Project) error {
	if p.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalid, p.Category)
	}
	if p.TotalAmount.IsNegative() {
		return fmt.Errorf("%w: total amount must not be negative", ErrInvalid)
	}
	if p.AdvancePaid.IsNegative() {
		return fmt.Errorf("%w: advance paid must not be negative", ErrInvalid)
	}
	return nil
}

// normalizeProject ensures the list fields marshal as [] rather than null.
// The upstream replaces the stored lists wholesale on every write, so a null
// would wipe them.
func normalizeProject(p *model.Project) {
	if p.Requirements == nil {
		p.Requirements = []model.Requirement{}
	}
	if p.Files == nil {
		p.Files = []model.ProjectFile{}
	}
}

// AddRequirement appends a new requirement with a provisional ID and returns
// the extended list. The ID becomes durable once the parent project's next
// full update persists.
func AddRequirement(reqs []model.Requirement, text string, now time.Time) []model.Requirement {
	out := make([]model.Requirement, 0, len(reqs)+1)
	out = append(out, reqs...)
	return append(out, model.Requirement{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: now,
	})
}

// RemoveRequirement returns the list without the requirement matching id.
// Unknown IDs are a no-op.
func RemoveRequirement(reqs []model.Requirement, id string) []model.Requirement {
	out := make([]model.Requirement, 0, len(reqs))
	for _, r := range reqs {
		if r.ID == id {
			continue
		}
		out = append(out, r)
	}
	return out
}
