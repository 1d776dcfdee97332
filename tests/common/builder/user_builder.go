//go:build unit || e2e

package builder

import (
	"time"

	"residence-api/internal/domain/user"
	sqlc "residence-api/internal/infra/sqlc/generated"
	"residence-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	DisplayName  string
	Role         string
	ApartmentID  *uuid.UUID
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	apartmentID := uuid.New()
	return &UserBuilder{
		Email:        "tenant@example.com",
		PasswordHash: "hashed_password",
		DisplayName:  "Test Tenant",
		Role:         "tenant",
		ApartmentID:  &apartmentID,
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, u.ApartmentID), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	var apartmentID pgtype.UUID
	if u.ApartmentID != nil {
		apartmentID = pgtype.UUID{Bytes: *u.ApartmentID, Valid: true}
	}

	return sqlc.Users{
		ID:           uuid.New(),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		DisplayName:  u.DisplayName,
		Role:         u.Role,
		ApartmentID:  apartmentID,
		IsActive:     u.IsActive,
		LastLogin:    pgtype.Timestamptz{},
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          uuid.New(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		ApartmentID: u.ApartmentID,
		IsActive:    u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithDisplayName(name string) *UserBuilder {
	u.DisplayName = name
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithApartmentID(apartmentID *uuid.UUID) *UserBuilder {
	u.ApartmentID = apartmentID
	return u
}

func (u *UserBuilder) WithoutApartment() *UserBuilder {
	u.ApartmentID = nil
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
