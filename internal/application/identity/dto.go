package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/retailnet/backend/internal/domain/identity"
)

// RegisterInput carries the fields required to create an account
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Company   string
	Position  string
	Type      identity.UserType
}

// LoginInput carries login credentials
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is returned on successful authentication
type LoginResult struct {
	Token string
	User  UserInfo
}

// UserInfo is the public view of a user account
type UserInfo struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	Type      string    `json:"type"`
}

// ToUserInfo maps a user aggregate to its public view
func ToUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Company:   u.Company,
		Position:  u.Position,
		Type:      string(u.Type),
	}
}

// CreateContactInput carries the fields required to create a contact
type CreateContactInput struct {
	City      string
	Street    string
	House     string
	Structure string
	Building  string
	Apartment string
	Phone     string
}

// ContactResponse is the public view of a contact
type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	City      string    `json:"city"`
	Street    string    `json:"street"`
	House     string    `json:"house"`
	Structure string    `json:"structure,omitempty"`
	Building  string    `json:"building,omitempty"`
	Apartment string    `json:"apartment,omitempty"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// ToContactResponse maps a contact entity to its public view
func ToContactResponse(c *identity.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		City:      c.City,
		Street:    c.Street,
		House:     c.House,
		Structure: c.Structure,
		Building:  c.Building,
		Apartment: c.Apartment,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

// ToContactResponses maps a slice of contacts
func ToContactResponses(contacts []identity.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for idx := range contacts {
		out = append(out, ToContactResponse(&contacts[idx]))
	}
	return out
}
