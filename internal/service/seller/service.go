package seller

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/livehost-agency/agency-backend-go/internal/domain/activity"
	"github.com/livehost-agency/agency-backend-go/internal/domain/attendance"
	"github.com/livehost-agency/agency-backend-go/internal/domain/user"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/database"
	"github.com/livehost-agency/agency-backend-go/internal/repository/postgresql"
	"github.com/livehost-agency/agency-backend-go/internal/service/file"
)

type SellerServiceImpl struct {
	db *database.DB
	user.UserRepository
	attendance.AttendanceRepository
	activity.ActivityRepository
	file.FileService
}

func NewSellerService(db *database.DB, userRepository user.UserRepository, attendanceRepository attendance.AttendanceRepository, activityRepository activity.ActivityRepository, fileService file.FileService) user.SellerService {
	return &SellerServiceImpl{
		db:                   db,
		UserRepository:       userRepository,
		AttendanceRepository: attendanceRepository,
		ActivityRepository:   activityRepository,
		FileService:          fileService,
	}
}

func adminIDFromClaims(ctx context.Context) *string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil
	}
	if id, ok := claims["user_id"].(string); ok && id != "" {
		return &id
	}
	return nil
}

// Create implements user.SellerService.
func (s *SellerServiceImpl) Create(ctx context.Context, req user.CreateSellerRequest) (*user.SellerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	newUser := user.User{
		Username:         req.Username,
		Email:            req.Email,
		PasswordHash:     &passwordHash,
		Role:             user.RoleLiveSeller,
		FullName:         req.FullName,
		ExperienceStatus: user.ExperienceStatus(req.ExperienceStatus),
		Status:           user.StatusActive,
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.UserRepository.Create(txCtx, newUser)
		if err != nil {
			return err
		}

		details := fmt.Sprintf("username=%s", created.Username)
		return s.ActivityRepository.Create(txCtx, &activity.Log{
			UserID:  adminIDFromClaims(ctx),
			Action:  activity.ActionSellerCreated,
			Details: &details,
		})
	})
	if err != nil {
		return nil, err
	}

	// The avatar is optional and lives outside the account transaction.
	if req.File != nil && req.FileHeader != nil {
		path, err := s.FileService.UploadProfileImage(ctx, created.ID, req.File, req.FileHeader.Filename)
		if err == nil {
			created.ProfileImagePath = &path
			if err := s.UserRepository.Update(ctx, created); err != nil {
				return nil, fmt.Errorf("failed to attach profile image: %w", err)
			}
		}
	}

	return s.toResponse(ctx, &created), nil
}

// GetByID implements user.SellerService.
func (s *SellerServiceImpl) GetByID(ctx context.Context, id string) (*user.SellerResponse, error) {
	found, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, &found), nil
}

// List implements user.SellerService.
func (s *SellerServiceImpl) List(ctx context.Context, filter user.ListFilter) (*user.ListSellersResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	users, total, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &user.ListSellersResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		Sellers:    make([]user.SellerResponse, 0, len(users)),
	}
	for i := range users {
		resp.Sellers = append(resp.Sellers, *s.toResponse(ctx, &users[i]))
	}

	return resp, nil
}

// Update implements user.SellerService.
func (s *SellerServiceImpl) Update(ctx context.Context, req user.UpdateSellerRequest) (*user.SellerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		current.FullName = *req.FullName
	}
	if req.Username != nil {
		current.Username = *req.Username
	}
	if req.Email != nil {
		current.Email = *req.Email
	}
	if req.ExperienceStatus != nil {
		current.ExperienceStatus = user.ExperienceStatus(*req.ExperienceStatus)
	}
	if req.Status != nil {
		current.Status = user.AccountStatus(*req.Status)
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.UserRepository.Update(txCtx, current); err != nil {
			return err
		}

		details := fmt.Sprintf("username=%s", current.Username)
		return s.ActivityRepository.Create(txCtx, &activity.Log{
			UserID:  adminIDFromClaims(ctx),
			Action:  activity.ActionSellerUpdated,
			Details: &details,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, &current), nil
}

// Delete implements user.SellerService.
//
// Removes the account row plus every image the seller owns: the profile
// image and all sales-proof photos. Files go last so a failed delete keeps
// the row and the files consistent.
func (s *SellerServiceImpl) Delete(ctx context.Context, id string) error {
	target, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	photoPaths, err := s.AttendanceRepository.ListPhotoPathsBySeller(ctx, id)
	if err != nil {
		return err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.UserRepository.Delete(txCtx, id); err != nil {
			return err
		}

		details := fmt.Sprintf("username=%s", target.Username)
		return s.ActivityRepository.Create(txCtx, &activity.Log{
			UserID:  adminIDFromClaims(ctx),
			Action:  activity.ActionSellerDeleted,
			Details: &details,
		})
	})
	if err != nil {
		return err
	}

	if target.ProfileImagePath != nil {
		_ = s.FileService.DeleteFile(ctx, *target.ProfileImagePath)
	}
	for _, path := range photoPaths {
		_ = s.FileService.DeleteFile(ctx, path)
	}

	return nil
}

// Stats implements user.SellerService.
func (s *SellerServiceImpl) Stats(ctx context.Context) (*user.SellerStatsResponse, error) {
	stats, err := s.UserRepository.GetSellerStats(ctx)
	if err != nil {
		return nil, err
	}
	return &user.SellerStatsResponse{
		Total:    stats.Total,
		Active:   stats.Active,
		Inactive: stats.Inactive,
		Newbie:   stats.Newbie,
		Tenured:  stats.Tenured,
	}, nil
}

func (s *SellerServiceImpl) toResponse(ctx context.Context, u *user.User) *user.SellerResponse {
	resp := &user.SellerResponse{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		FullName:         u.FullName,
		Role:             string(u.Role),
		ExperienceStatus: string(u.ExperienceStatus),
		Status:           string(u.Status),
		CreatedAt:        u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        u.UpdatedAt.Format(time.RFC3339),
	}
	if u.ProfileImagePath != nil {
		if url, err := s.FileService.GetFileURL(ctx, *u.ProfileImagePath, 24*time.Hour); err == nil {
			resp.ProfileImageURL = &url
		}
	}
	return resp
}
