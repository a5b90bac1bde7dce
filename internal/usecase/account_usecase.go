package usecase

import (
	"context"

	"autosphere/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a principal to sign in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput defines the data required to create an account from the sign-up form.
type RegisterInput struct {
	FName           string `json:"fname" validate:"required"`
	LName           string `json:"lname" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	Country         string `json:"country" validate:"required"`
	State           string `json:"state" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// ChangePasswordInput defines the data required to replace the active principal's credential.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// AddUserInput defines the data a superadmin submits to create an account.
type AddUserInput struct {
	FName    string               `json:"fname" validate:"required"`
	LName    string               `json:"lname" validate:"required"`
	Email    string               `json:"email" validate:"required,email"`
	Phone    string               `json:"phone"`
	Country  string               `json:"country"`
	State    string               `json:"state"`
	Password string               `json:"password" validate:"required,min=6"`
	Role     entity.Role          `json:"role" validate:"required,oneof=customer dealer superadmin"`
	Status   entity.AccountStatus `json:"status" validate:"omitempty,oneof=Active Blocked"`
}

// --- Output DTOs ---

// DeleteUserOutput reports the effect of removing an account.
type DeleteUserOutput struct {
	Email           string `json:"email"`
	RemovedListings int    `json:"removedListings"`
}

// AccountUsecase covers sign-in, sign-up, the profile pages and superadmin user management.
type AccountUsecase interface {
	Login(ctx context.Context, input LoginInput) (*entity.Principal, error)
	Register(ctx context.Context, input RegisterInput) (*entity.Principal, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*entity.Principal, error)
	UpdateProfile(ctx context.Context, patch entity.PrincipalPatch) (*entity.Principal, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error

	ListUsers(ctx context.Context) ([]entity.Principal, error)
	AddUser(ctx context.Context, input AddUserInput) (*entity.Principal, error)
	EditUser(ctx context.Context, email string, patch entity.PrincipalPatch) (*entity.Principal, error)
	DeleteUser(ctx context.Context, email string) (*DeleteUserOutput, error)
}
