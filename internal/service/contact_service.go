package service

import (
	"context"
	"fmt"

	"github.com/trinextgen/backoffice/internal/model"
	"github.com/trinextgen/backoffice/pkg/crm"
)

const defaultContactLimit = 50

// ContactService provides business logic for the contact-form inbox.
type ContactService interface {
	List(ctx context.Context, token string, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	UpdateStatus(ctx context.Context, token, id, status string) error
}

type contactService struct {
	crm crm.Client
}

// NewContactService creates a ContactService backed by the CRM API.
func NewContactService(c crm.Client) ContactService {
	return &contactService{crm: c}
}

func (s *contactService) List(ctx context.Context, token string, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	switch opts.Status {
	case "", "all", "unread", "read":
	default:
		return nil, fmt.Errorf("%w: unknown status filter %q", ErrInvalid, opts.Status)
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultContactLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	msgs, err := s.crm.ListContacts(ctx, token, opts)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []*model.ContactMessage{}
	}
	return msgs, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, token, id, status string) error {
	if id == "" {
		return fmt.Errorf("%w: contact id is required", ErrInvalid)
	}
	if status != "unread" && status != "read" {
		return fmt.Errorf("%w: status must be read or unread", ErrInvalid)
	}
	return s.crm.UpdateContactStatus(ctx, token, id, status)
}
