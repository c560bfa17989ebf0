package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/pawsuite/salon-api/internal/domain/entity"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/pawsuite/salon-api/internal/domain/repository"
	"github.com/pawsuite/salon-api/pkg/apperror"
	"github.com/pawsuite/salon-api/pkg/email"
	"github.com/pawsuite/salon-api/pkg/pagination"
	"github.com/pawsuite/salon-api/pkg/utils"
	"github.com/rs/zerolog/log"
)

const inviteTokenTTL = 72 * time.Hour

// StaffService handles staff management and onboarding
type StaffService struct {
	staffRepo    repository.StaffRepository
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	tokenRepo    repository.PasswordResetTokenRepository
	settingsRepo repository.SettingsRepository
	emailService *email.EmailService
}

// NewStaffService creates a new staff service
func NewStaffService(
	staffRepo repository.StaffRepository,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	tokenRepo repository.PasswordResetTokenRepository,
	settingsRepo repository.SettingsRepository,
	emailService *email.EmailService,
) *StaffService {
	return &StaffService{
		staffRepo:    staffRepo,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		tokenRepo:    tokenRepo,
		settingsRepo: settingsRepo,
		emailService: emailService,
	}
}

// CreateStaffInput represents the create staff input
type CreateStaffInput struct {
	Name              string
	Email             *string
	Phone             *string
	Role              string
	CompensationType  enum.CompensationType
	CommissionRatePct *float64
	HourlyRate        *float64
	EmployerBurdenPct *float64
}

// CreateStaff adds a staff member. When no compensation plan is given, the
// salon-wide defaults from settings apply.
func (s *StaffService) CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.Staff, error) {
	staff := &entity.Staff{
		Name:              input.Name,
		Email:             input.Email,
		Phone:             input.Phone,
		Role:              input.Role,
		CompensationType:  input.CompensationType,
		EmployerBurdenPct: input.EmployerBurdenPct,
		Active:            true,
	}
	if staff.Role == "" {
		staff.Role = "groomer"
	}

	if input.CommissionRatePct != nil {
		staff.CommissionRatePct = *input.CommissionRatePct
	}
	if input.HourlyRate != nil {
		staff.HourlyRate = *input.HourlyRate
	}

	if !staff.CompensationType.IsSet() {
		if err := s.applyDefaultCompensation(ctx, staff); err != nil {
			return nil, err
		}
	}

	if err := s.validateCompensation(staff); err != nil {
		return nil, err
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

func (s *StaffService) applyDefaultCompensation(ctx context.Context, staff *entity.Staff) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return err
	}
	if settings == nil {
		settings = entity.DefaultSalonSettings()
	}

	staff.CompensationType = settings.DefaultCompensationType
	switch settings.DefaultCompensationType {
	case enum.CompensationCommission:
		staff.CommissionRatePct = settings.DefaultCommissionRatePct
	case enum.CompensationHourly:
		staff.HourlyRate = settings.DefaultHourlyRate
	}
	return nil
}

func (s *StaffService) validateCompensation(staff *entity.Staff) error {
	switch staff.CompensationType {
	case enum.CompensationNone:
	case enum.CompensationCommission:
		if staff.CommissionRatePct < 0 || staff.CommissionRatePct > 100 {
			return apperror.NewBadRequestError("Commission rate must be between 0 and 100")
		}
	case enum.CompensationHourly:
		if staff.HourlyRate < 0 {
			return apperror.NewBadRequestError("Hourly rate cannot be negative")
		}
	default:
		return apperror.NewBadRequestError("Invalid compensation type")
	}
	if staff.EmployerBurdenPct != nil && *staff.EmployerBurdenPct < 0 {
		return apperror.NewBadRequestError("Employer burden cannot be negative")
	}
	return nil
}

// GetStaff retrieves a staff member by ID
func (s *StaffService) GetStaff(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}
	return staff, nil
}

// ListStaff lists staff members
func (s *StaffService) ListStaff(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) (*pagination.PaginatedResult[entity.Staff], error) {
	staff, total, err := s.staffRepo.List(ctx, params, search, activeOnly)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(staff, pag), nil
}

// UpdateStaffInput represents the update staff input
type UpdateStaffInput struct {
	ID                uuid.UUID
	Name              *string
	Email             *string
	Phone             *string
	Role              *string
	CompensationType  *enum.CompensationType
	CommissionRatePct *float64
	HourlyRate        *float64
	EmployerBurdenPct *float64
	Active            *bool
}

// UpdateStaff updates a staff member
func (s *StaffService) UpdateStaff(ctx context.Context, input *UpdateStaffInput) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}

	if input.Name != nil {
		staff.Name = *input.Name
	}
	if input.Email != nil {
		staff.Email = input.Email
	}
	if input.Phone != nil {
		staff.Phone = input.Phone
	}
	if input.Role != nil {
		staff.Role = *input.Role
	}
	if input.CompensationType != nil {
		staff.CompensationType = *input.CompensationType
	}
	if input.CommissionRatePct != nil {
		staff.CommissionRatePct = *input.CommissionRatePct
	}
	if input.HourlyRate != nil {
		staff.HourlyRate = *input.HourlyRate
	}
	if input.EmployerBurdenPct != nil {
		staff.EmployerBurdenPct = input.EmployerBurdenPct
	}
	if input.Active != nil {
		staff.Active = *input.Active
	}

	if err := s.validateCompensation(staff); err != nil {
		return nil, err
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// DeleteStaff deactivates and soft-deletes a staff member. Historical
// appointments keep their staff reference for reporting.
func (s *StaffService) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if staff == nil {
		return apperror.NewNotFoundError("Staff member")
	}
	return s.staffRepo.Delete(ctx, id)
}

// OnboardStaffInput represents the onboard staff input
type OnboardStaffInput struct {
	StaffID   uuid.UUID
	Email     string
	FirstName string
	LastName  string
	RoleName  string
}

// OnboardStaff creates a login account for an existing staff member, assigns
// the requested role, and emails an invite link to set a password.
func (s *StaffService) OnboardStaff(ctx context.Context, input *OnboardStaffInput) (*entity.User, error) {
	staff, err := s.staffRepo.GetByID(ctx, input.StaffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}
	if staff.UserID != nil {
		return nil, apperror.NewConflictError("Staff member already has a login account")
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email is already registered")
	}

	roleName := input.RoleName
	if roleName == "" {
		roleName = staff.Role
	}
	role, err := s.roleRepo.GetByName(ctx, roleName)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, apperror.NewNotFoundError("Role")
	}

	// The account starts with an unguessable password; the invite link is
	// the only way to set a real one.
	tempPassword, err := generateSecureToken()
	if err != nil {
		return nil, apperror.ErrInternalServer
	}
	hashed, err := utils.HashPassword(tempPassword)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashed,
		Provider:  "local",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := s.userRepo.AssignRole(ctx, user.ID, role.ID); err != nil {
		return nil, err
	}

	staff.UserID = &user.ID
	staff.Email = &input.Email
	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}

	token, err := generateSecureToken()
	if err != nil {
		return nil, apperror.ErrInternalServer
	}
	resetToken := &entity.PasswordResetToken{
		Email:     input.Email,
		Token:     token,
		ExpiresAt: time.Now().Add(inviteTokenTTL),
	}
	if err := s.tokenRepo.Create(ctx, resetToken); err != nil {
		return nil, err
	}

	if err := s.emailService.SendStaffInviteEmail(input.Email, staff.Name, token); err != nil {
		log.Error().Err(err).Str("email", input.Email).Msg("failed to send staff invite email")
	}

	return user, nil
}

func generateSecureToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
