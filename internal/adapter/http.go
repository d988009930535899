// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-travel-api/internal/logger"
	"github.com/MKhiriev/go-travel-api/internal/validators"
	"github.com/MKhiriev/go-travel-api/models"
)

const defaultTimeout = 15 * time.Second

// HTTPClientConfig configures [NewHTTPTravelAPI].
type HTTPClientConfig struct {
	// BaseURL is the server address; "host:port" is accepted and treated as
	// http.
	BaseURL string
	// Timeout bounds each request. Zero uses 15s.
	Timeout time.Duration
}

type httpTravelAPI struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPTravelAPI constructs an HTTP/REST implementation of [TravelAPI].
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPTravelAPI(cfg HTTPClientConfig, logger *logger.Logger) (TravelAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("duration", resp.Time()).
				Msg("travel api response")
			return nil
		})

	return &httpTravelAPI{client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

func (h *httpTravelAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpTravelAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpTravelAPI) Login(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/v1/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var login models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &login); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(login.AccessToken)
	return login.AccessToken, nil
}

func (h *httpTravelAPI) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/v1/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpTravelAPI) ListTravels(ctx context.Context, page int) (models.PaginatedResponse[models.TravelResource], error) {
	req := h.client.R().SetContext(ctx)
	if page > 0 {
		req.SetQueryParam(validators.ParamPage, strconv.Itoa(page))
	}

	resp, err := req.Get("/api/v1/travels")
	if err != nil {
		return models.PaginatedResponse[models.TravelResource]{}, fmt.Errorf("list travels request: %w", err)
	}
	return decode[models.PaginatedResponse[models.TravelResource]](resp, "list travels")
}

func (h *httpTravelAPI) ListTours(ctx context.Context, slug string, q models.TourQuery) (models.PaginatedResponse[models.TourResource], error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(tourQueryValues(q)).
		Get("/api/v1/travels/" + url.PathEscape(slug) + "/tours")
	if err != nil {
		return models.PaginatedResponse[models.TourResource]{}, fmt.Errorf("list tours request: %w", err)
	}
	return decode[models.PaginatedResponse[models.TourResource]](resp, "list tours")
}

func (h *httpTravelAPI) CreateTravel(ctx context.Context, req models.TravelRequest) (models.TravelResource, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1/admin/travels")
	if err != nil {
		return models.TravelResource{}, fmt.Errorf("create travel request: %w", err)
	}

	data, err := decode[models.DataResponse[models.TravelResource]](resp, "create travel")
	return data.Data, err
}

func (h *httpTravelAPI) UpdateTravel(ctx context.Context, travelID string, req models.TravelRequest) (models.TravelResource, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/v1/admin/travels/" + url.PathEscape(travelID))
	if err != nil {
		return models.TravelResource{}, fmt.Errorf("update travel request: %w", err)
	}

	data, err := decode[models.DataResponse[models.TravelResource]](resp, "update travel")
	return data.Data, err
}

func (h *httpTravelAPI) CreateTour(ctx context.Context, travelID string, req models.TourRequest) (models.TourResource, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1/admin/travels/" + url.PathEscape(travelID) + "/tours")
	if err != nil {
		return models.TourResource{}, fmt.Errorf("create tour request: %w", err)
	}

	data, err := decode[models.DataResponse[models.TourResource]](resp, "create tour")
	return data.Data, err
}

func (h *httpTravelAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpTravelAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func decode[T any](resp *resty.Response, op string) (T, error) {
	var out T
	if err := mapHTTPError(resp); err != nil {
		return out, err
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", op, err)
	}
	return out, nil
}

// tourQueryValues encodes the non-zero fields of q with the parameter names
// the server parses.
func tourQueryValues(q models.TourQuery) url.Values {
	values := url.Values{}
	if q.PriceFrom != nil {
		values.Set(validators.ParamPriceFrom, q.PriceFrom.String())
	}
	if q.PriceTo != nil {
		values.Set(validators.ParamPriceTo, q.PriceTo.String())
	}
	if q.DateFrom != nil {
		values.Set(validators.ParamDateFrom, q.DateFrom.String())
	}
	if q.DateTo != nil {
		values.Set(validators.ParamDateTo, q.DateTo.String())
	}
	if q.SortBy != "" {
		values.Set(validators.ParamSortBy, string(q.SortBy))
	}
	if q.SortOrder != "" {
		values.Set(validators.ParamSortOrder, string(q.SortOrder))
	}
	if q.Page > 0 {
		values.Set(validators.ParamPage, strconv.Itoa(q.Page))
	}
	return values
}
