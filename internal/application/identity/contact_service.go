package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/retailnet/backend/internal/domain/identity"
	"github.com/retailnet/backend/internal/domain/shared"
)

// ContactService manages a user's delivery contacts
type ContactService struct {
	contacts    identity.ContactRepository
	maxContacts int64
	logger      *zap.Logger
}

// NewContactService creates a new contact service. maxContacts caps how many
// contacts a user may hold; zero or negative disables the cap.
func NewContactService(contacts identity.ContactRepository, maxContacts int64, logger *zap.Logger) *ContactService {
	return &ContactService{
		contacts:    contacts,
		maxContacts: maxContacts,
		logger:      logger,
	}
}

// Create adds a new contact for the user. The cap is enforced at creation
// only; existing contacts above a lowered cap are left alone.
func (s *ContactService) Create(ctx context.Context, userID uuid.UUID, input CreateContactInput) (*ContactResponse, error) {
	if s.maxContacts > 0 {
		count, err := s.contacts.CountForUser(ctx, userID)
		if err != nil {
			s.logger.Error("Failed to count contacts", zap.Error(err))
			return nil, err
		}
		if count >= s.maxContacts {
			return nil, shared.NewDomainError("CONTACT_LIMIT", "Maximum number of contacts reached")
		}
	}

	contact, err := identity.NewContact(userID, input.City, input.Street, input.House, input.Phone)
	if err != nil {
		return nil, err
	}
	contact.Structure = input.Structure
	contact.Building = input.Building
	contact.Apartment = input.Apartment

	if err := s.contacts.Create(ctx, contact); err != nil {
		s.logger.Error("Failed to create contact", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}

	resp := ToContactResponse(contact)
	return &resp, nil
}

// List returns all of the user's contacts
func (s *ContactService) List(ctx context.Context, userID uuid.UUID) ([]ContactResponse, error) {
	contacts, err := s.contacts.FindAllForUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list contacts", zap.Error(err))
		return nil, err
	}
	return ToContactResponses(contacts), nil
}

// Update applies a partial update to one of the user's contacts. A contact
// owned by someone else is indistinguishable from a missing one.
func (s *ContactService) Update(ctx context.Context, userID, contactID uuid.UUID, upd identity.ContactUpdate) (*ContactResponse, error) {
	contact, err := s.contacts.FindForUser(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}

	if err := contact.Apply(upd); err != nil {
		return nil, err
	}

	if err := s.contacts.Save(ctx, contact); err != nil {
		s.logger.Error("Failed to update contact", zap.String("contact_id", contactID.String()), zap.Error(err))
		return nil, err
	}

	resp := ToContactResponse(contact)
	return &resp, nil
}

// Delete removes one of the user's contacts
func (s *ContactService) Delete(ctx context.Context, userID, contactID uuid.UUID) error {
	deleted, err := s.contacts.DeleteForUser(ctx, userID, contactID)
	if err != nil {
		s.logger.Error("Failed to delete contact", zap.String("contact_id", contactID.String()), zap.Error(err))
		return err
	}
	if deleted == 0 {
		return shared.ErrNotFound
	}
	return nil
}
