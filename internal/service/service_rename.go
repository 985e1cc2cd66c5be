// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-username-changer/internal/logger"
	"github.com/MKhiriev/go-username-changer/internal/store"
	"github.com/MKhiriev/go-username-changer/internal/validators"
	"github.com/MKhiriev/go-username-changer/models"
)

// renameService is the concrete implementation of RenameService.
type renameService struct {
	users      store.UserRepository
	privileges store.PrivilegeRepository

	// attribution is nil when attribution support is disabled.
	attribution store.AttributionRepository

	tenancy   TenancyPolicy
	sanitize  validators.LoginSanitizer
	validator validators.Validator

	logger *logger.Logger
}

// NewRenameService wires a RenameService. attribution may be nil.
func NewRenameService(
	users store.UserRepository,
	privileges store.PrivilegeRepository,
	attribution store.AttributionRepository,
	tenancy TenancyPolicy,
	sanitize validators.LoginSanitizer,
	logger *logger.Logger,
) RenameService {
	return &renameService{
		users:       users,
		privileges:  privileges,
		attribution: attribution,
		tenancy:     tenancy,
		sanitize:    sanitize,
		validator:   validators.NewRenameRequestValidator(),
		logger:      logger,
	}
}

// RenameUser checks, in order: both logins present, current login exists,
// logins differ, desired login free, network privilege context (multi-tenant
// only) and the acting user's edit_users capability. The first failing rule
// is returned.
func (s *renameService) RenameUser(ctx context.Context, req models.RenameRequest) (models.RenameResult, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*renameService.RenameUser").
		Int64("acting_user_id", req.ActingUserID).
		Str("current_login", req.CurrentLogin).
		Logger()

	req.DesiredLogin = s.sanitize(req.DesiredLogin)

	if err := s.validator.Validate(ctx, req, validators.FieldCurrentLogin, validators.FieldDesiredLogin); err != nil {
		return models.RenameResult{}, missingField(req, err)
	}

	target, err := s.users.FindUserByLogin(ctx, req.CurrentLogin)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.RenameResult{}, renameError(ErrNotFound, req, nil)
	}
	if err != nil {
		log.Err(err).Msg("failed to look up current login")
		return models.RenameResult{}, renameError(ErrPersistence, req, err)
	}

	if req.DesiredLogin == req.CurrentLogin {
		return models.RenameResult{}, renameError(ErrNoOpRename, req, nil)
	}

	_, err = s.users.FindUserByLogin(ctx, req.DesiredLogin)
	switch {
	case err == nil:
		return models.RenameResult{}, renameError(ErrConflict, req, nil)
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("desired_login", req.DesiredLogin).Msg("failed to look up desired login")
		return models.RenameResult{}, renameError(ErrPersistence, req, err)
	}

	// the grant follows the account in every deployment, the elevated
	// context is enforced only when multi-tenant
	privileged, err := s.privileges.HasNetworkPrivilege(ctx, target.Login)
	if err != nil {
		log.Err(err).Msg("failed to check network privilege")
		return models.RenameResult{}, renameError(ErrPersistence, req, err)
	}
	if privileged && s.tenancy.IsMultiTenant() && !req.ActingUserIsNetworkAdmin {
		return models.RenameResult{}, renameError(ErrRequiresElevatedContext, req, nil)
	}

	allowed, err := s.privileges.HasCapability(ctx, req.ActingUserID, models.CapabilityEditUsers)
	if err != nil {
		log.Err(err).Msg("failed to check capability")
		return models.RenameResult{}, renameError(ErrPersistence, req, err)
	}
	if !allowed {
		return models.RenameResult{}, renameError(ErrForbidden, req, nil)
	}

	updated, err := s.users.ApplyRename(ctx, buildRenamePlan(target, req.DesiredLogin, privileged))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Warn().Str("desired_login", req.DesiredLogin).Msg("desired login was taken before the update")
			return models.RenameResult{}, renameError(ErrConflict, req, err)
		case errors.Is(err, store.ErrNoUserWasFound):
			return models.RenameResult{}, renameError(ErrNotFound, req, err)
		default:
			log.Err(err).Msg("failed to apply rename")
			return models.RenameResult{}, renameError(ErrPersistence, req, err)
		}
	}

	result := models.RenameResult{
		User:          updated,
		PreviousLogin: target.Login,
		Self:          req.ActingUserID == target.UserID,
	}

	if s.attribution != nil {
		if err = s.moveAttribution(ctx, target.Login, updated.Login); err != nil {
			log.Warn().Err(err).Msg("attribution was not fully moved")
			result.AttributionErr = err
		}
	}

	log.Info().
		Int64("user_id", updated.UserID).
		Str("new_login", updated.Login).
		Bool("self", result.Self).
		Msg("user renamed")

	return result, nil
}

// buildRenamePlan lists the writes of a rename. The display name follows the
// login only when it was still equal to the old login.
func buildRenamePlan(target models.User, desired string, privileged bool) models.RenamePlan {
	slug := validators.Slug(desired)
	fields := models.UserFields{
		Login: &desired,
		Slug:  &slug,
	}
	if target.DisplayName == target.Login {
		fields.DisplayName = &desired
	}

	return models.RenamePlan{
		UserID:                   target.UserID,
		CurrentLogin:             target.Login,
		Fields:                   fields,
		ReaffirmNetworkPrivilege: privileged,
	}
}

// moveAttribution links every item attributed to from with to, then drops
// from's term. The old term is kept when any item could not be linked so
// that no item loses its author.
func (s *renameService) moveAttribution(ctx context.Context, from, to string) error {
	items, err := s.attribution.FindAttributedItems(ctx, from)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPartialSuccess, err)
	}

	var errs []error
	for _, itemID := range items {
		if err = s.attribution.Reattribute(ctx, itemID, to); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", itemID, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrPartialSuccess, errors.Join(errs...))
	}

	if err = s.attribution.RemoveAttributionTerm(ctx, from); err != nil {
		return fmt.Errorf("%w: %w", ErrPartialSuccess, err)
	}

	return nil
}

func (s *renameService) ListRenameableUsers(ctx context.Context, networkLevel bool) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*renameService.ListRenameableUsers").Msg("failed to list users")
		return nil, &RenameError{Kind: ErrPersistence, Cause: err}
	}

	if !s.tenancy.IsMultiTenant() || networkLevel {
		return users, nil
	}

	admins, err := s.privileges.ListNetworkAdmins(ctx)
	if err != nil {
		log.Err(err).Str("func", "*renameService.ListRenameableUsers").Msg("failed to list network admins")
		return nil, &RenameError{Kind: ErrPersistence, Cause: err}
	}

	hidden := make(map[string]struct{}, len(admins))
	for _, login := range admins {
		hidden[login] = struct{}{}
	}

	visible := make([]models.User, 0, len(users))
	for _, user := range users {
		if _, ok := hidden[user.Login]; !ok {
			visible = append(visible, user)
		}
	}

	return visible, nil
}

func (s *renameService) GetUser(ctx context.Context, userID int64, networkLevel bool) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, &RenameError{Kind: ErrNotFound}
	}
	if err != nil {
		log.Err(err).Str("func", "*renameService.GetUser").Int64("user_id", userID).Msg("failed to find user")
		return models.User{}, &RenameError{Kind: ErrPersistence, Cause: err}
	}

	if s.tenancy.IsMultiTenant() && !networkLevel {
		privileged, err := s.privileges.HasNetworkPrivilege(ctx, user.Login)
		if err != nil {
			log.Err(err).Str("func", "*renameService.GetUser").Int64("user_id", userID).Msg("failed to check network privilege")
			return models.User{}, &RenameError{Kind: ErrPersistence, Cause: err}
		}
		if privileged {
			return models.User{}, &RenameError{Kind: ErrRequiresElevatedContext, CurrentLogin: user.Login}
		}
	}

	return user, nil
}

func (s *renameService) CanManageUsers(ctx context.Context, actingUserID int64) (bool, error) {
	allowed, err := s.privileges.HasCapability(ctx, actingUserID, models.CapabilityEditUsers)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*renameService.CanManageUsers").
			Int64("acting_user_id", actingUserID).
			Msg("failed to check capability")
		return false, &RenameError{Kind: ErrPersistence, Cause: err}
	}
	return allowed, nil
}

func (s *renameService) IsNetworkAdmin(ctx context.Context, actingUserID int64) (bool, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*renameService.IsNetworkAdmin").
		Int64("acting_user_id", actingUserID).
		Logger()

	acting, err := s.users.FindUserByID(ctx, actingUserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Msg("failed to find acting user")
		return false, &RenameError{Kind: ErrPersistence, Cause: err}
	}

	privileged, err := s.privileges.HasNetworkPrivilege(ctx, acting.Login)
	if err != nil {
		log.Err(err).Msg("failed to check network privilege")
		return false, &RenameError{Kind: ErrPersistence, Cause: err}
	}
	return privileged, nil
}

func (s *renameService) CanRename(ctx context.Context, actingUserID, targetUserID int64, networkLevel bool) (bool, error) {
	allowed, err := s.CanManageUsers(ctx, actingUserID)
	if err != nil || !allowed {
		return false, err
	}

	_, err = s.GetUser(ctx, targetUserID, networkLevel)
	if errors.Is(err, ErrRequiresElevatedContext) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func renameError(kind error, req models.RenameRequest, cause error) *RenameError {
	return &RenameError{
		Kind:         kind,
		CurrentLogin: req.CurrentLogin,
		DesiredLogin: req.DesiredLogin,
		Cause:        cause,
	}
}

func missingField(req models.RenameRequest, err error) *RenameError {
	rerr := renameError(ErrMissingField, req, nil)
	switch {
	case errors.Is(err, validators.ErrEmptyCurrentLogin):
		rerr.Field = validators.FieldCurrentLogin
	case errors.Is(err, validators.ErrEmptyDesiredLogin):
		rerr.Field = validators.FieldDesiredLogin
	}
	return rerr
}
