// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-username-changer/internal/config"
	"github.com/MKhiriev/go-username-changer/internal/logger"
	"github.com/MKhiriev/go-username-changer/internal/utils"
	"github.com/MKhiriev/go-username-changer/models"
)

const (
	usersPath        = "/api/users"
	networkUsersPath = "/api/network/users"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	// usersPath is the user routes prefix, site or network level.
	usersPath string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter].
//
// The base URL is normalised (a missing scheme defaults to http) and the
// bearer token from cfg is attached to every request. With cfg.NetworkLevel
// the network-level routes are used.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, ErrEmptyToken
	}

	path := usersPath
	if cfg.NetworkLevel {
		path = networkUsersPath
	}

	return &httpServerAdapter{
		client:    utils.NewHTTPClient(baseURL, cfg.RequestTimeout).WithBearerToken(token),
		usersPath: path,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Version implements [ServerAdapter]. It GETs /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// ListUsers implements [ServerAdapter].
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var body models.UsersResponse

	resp, err := h.request(ctx).
		SetResult(&body).
		Get(h.usersPath)
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return body.Users, nil
}

// GetUser implements [ServerAdapter].
func (h *httpServerAdapter) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).
		SetResult(&user).
		Get(h.userPath(userID))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// RenameAllowed implements [ServerAdapter].
func (h *httpServerAdapter) RenameAllowed(ctx context.Context, userID int64) (bool, error) {
	var body models.RenameAllowedResponse

	resp, err := h.request(ctx).
		SetResult(&body).
		Get(h.userPath(userID) + "/rename-allowed")
	if err != nil {
		return false, fmt.Errorf("rename allowed request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return body.Allowed, nil
}

// RenameUser implements [ServerAdapter]. It POSTs to <users>/rename.
func (h *httpServerAdapter) RenameUser(ctx context.Context, currentLogin, newLogin string) (models.RenameUserResponse, error) {
	var body models.RenameUserResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RenameUserRequest{CurrentLogin: currentLogin, NewLogin: newLogin}).
		SetResult(&body).
		Post(h.usersPath + "/rename")
	if err != nil {
		return models.RenameUserResponse{}, fmt.Errorf("rename request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RenameUserResponse{}, err
	}

	if body.Warning != "" {
		h.logger.Warn().Str("func", "*httpServerAdapter.RenameUser").Msg(body.Warning)
	}

	return body, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpServerAdapter) userPath(userID int64) string {
	return h.usersPath + "/" + strconv.FormatInt(userID, 10)
}
