package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/retailnet/backend/internal/domain/identity"
	"github.com/retailnet/backend/internal/domain/shared"
)

// MockContactRepository is a mock implementation of ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindForUser(ctx context.Context, userID, id uuid.UUID) (*identity.Contact, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Contact), args.Error(1)
}

func (m *MockContactRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]identity.Contact, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.Contact), args.Error(1)
}

func (m *MockContactRepository) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactRepository) Create(ctx context.Context, contact *identity.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) Save(ctx context.Context, contact *identity.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(int64), args.Error(1)
}

func contactInput() CreateContactInput {
	return CreateContactInput{
		City:   "Moscow",
		Street: "Tverskaya",
		House:  "7",
		Phone:  "+7 999 111-22-33",
	}
}

func TestContactCreate(t *testing.T) {
	userID := uuid.New()

	t.Run("creates below the cap", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("CountForUser", mock.Anything, userID).Return(int64(2), nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*identity.Contact")).Return(nil)

		resp, err := NewContactService(repo, 5, zap.NewNop()).Create(context.Background(), userID, contactInput())

		require.NoError(t, err)
		assert.Equal(t, "Moscow", resp.City)
		repo.AssertExpectations(t)
	})

	t.Run("rejects at the cap", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("CountForUser", mock.Anything, userID).Return(int64(5), nil)

		_, err := NewContactService(repo, 5, zap.NewNop()).Create(context.Background(), userID, contactInput())

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONTACT_LIMIT", domainErr.Code)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("zero cap disables the limit", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*identity.Contact")).Return(nil)

		_, err := NewContactService(repo, 0, zap.NewNop()).Create(context.Background(), userID, contactInput())

		require.NoError(t, err)
		repo.AssertNotCalled(t, "CountForUser")
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("CountForUser", mock.Anything, userID).Return(int64(0), nil)

		input := contactInput()
		input.Phone = ""
		_, err := NewContactService(repo, 5, zap.NewNop()).Create(context.Background(), userID, input)

		require.Error(t, err)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestContactUpdate(t *testing.T) {
	userID := uuid.New()

	t.Run("applies a partial update", func(t *testing.T) {
		repo := new(MockContactRepository)
		contact, _ := identity.NewContact(userID, "Moscow", "Tverskaya", "7", "+7 999 111-22-33")
		repo.On("FindForUser", mock.Anything, userID, contact.ID).Return(contact, nil)
		repo.On("Save", mock.Anything, contact).Return(nil)

		city := "Kazan"
		resp, err := NewContactService(repo, 5, zap.NewNop()).Update(context.Background(), userID, contact.ID,
			identity.ContactUpdate{City: &city})

		require.NoError(t, err)
		assert.Equal(t, "Kazan", resp.City)
		assert.Equal(t, "Tverskaya", resp.Street)
	})

	t.Run("someone else's contact reads as missing", func(t *testing.T) {
		repo := new(MockContactRepository)
		contactID := uuid.New()
		repo.On("FindForUser", mock.Anything, userID, contactID).Return(nil, shared.ErrNotFound)

		_, err := NewContactService(repo, 5, zap.NewNop()).Update(context.Background(), userID, contactID, identity.ContactUpdate{})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestContactDelete(t *testing.T) {
	userID := uuid.New()
	contactID := uuid.New()

	t.Run("deletes an owned contact", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("DeleteForUser", mock.Anything, userID, contactID).Return(int64(1), nil)

		err := NewContactService(repo, 5, zap.NewNop()).Delete(context.Background(), userID, contactID)
		assert.NoError(t, err)
	})

	t.Run("zero rows reads as missing", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("DeleteForUser", mock.Anything, userID, contactID).Return(int64(0), nil)

		err := NewContactService(repo, 5, zap.NewNop()).Delete(context.Background(), userID, contactID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
