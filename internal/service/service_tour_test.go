// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-travel-api/internal/logger"
	"github.com/MKhiriev/go-travel-api/internal/mock"
	"github.com/MKhiriev/go-travel-api/internal/store"
	"github.com/MKhiriev/go-travel-api/internal/validators"
	"github.com/MKhiriev/go-travel-api/models"
)

func newTestTourSvc(t *testing.T, ctrl *gomock.Controller) (*tourService, *mock.MockTravelRepository, *mock.MockTourRepository) {
	t.Helper()

	travels := mock.NewMockTravelRepository(ctrl)
	tours := mock.NewMockTourRepository(ctrl)
	svc := NewTourService(travels, tours, logger.Nop()).(*tourService)
	svc.idGenerator = &fixedIDs{"tour-1"}

	return svc, travels, tours
}

func tourRequest(name string, start, end models.Date, price string) models.TourRequest {
	return models.TourRequest{
		Name:         name,
		StartingDate: &start,
		EndingDate:   &end,
		Price:        models.NewAmount(decimal.RequireFromString(price)),
	}
}

func TestTourService_ListTours(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, travels, tours := newTestTourSvc(t, ctrl)

	q := models.DefaultTourQuery()
	q.Page = 2

	travels.EXPECT().FindTravelBySlug(gomock.Any(), "jordan-360").Return(models.Travel{ID: "travel-1"}, nil)
	tours.EXPECT().ListTours(gomock.Any(), "travel-1", q).Return([]models.Tour{{ID: "tour-16"}}, 16, nil)

	page, err := svc.ListTours(context.Background(), "jordan-360", q)

	require.NoError(t, err)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 16, page.Total)
	assert.Equal(t, 2, page.LastPage())
	require.NotNil(t, page.From())
	assert.Equal(t, 16, *page.From())
}

func TestTourService_ListTours_UnknownSlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, travels, _ := newTestTourSvc(t, ctrl)

	travels.EXPECT().FindTravelBySlug(gomock.Any(), "missing").Return(models.Travel{}, store.ErrTravelNotFound)

	_, err := svc.ListTours(context.Background(), "missing", models.DefaultTourQuery())

	assert.ErrorIs(t, err, store.ErrTravelNotFound)
}

func TestTourService_ListTours_EmptyPageSerialisesAsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, travels, tours := newTestTourSvc(t, ctrl)

	travels.EXPECT().FindTravelBySlug(gomock.Any(), gomock.Any()).Return(models.Travel{ID: "travel-1"}, nil)
	tours.EXPECT().ListTours(gomock.Any(), "travel-1", gomock.Any()).Return(nil, 0, nil)

	page, err := svc.ListTours(context.Background(), "jordan-360", models.DefaultTourQuery())

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.LastPage())
}

func TestTourService_CreateTour(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, travels, tours := newTestTourSvc(t, ctrl)

	start := models.NewDate(2026, time.November, 1)
	end := models.NewDate(2026, time.November, 8)

	travels.EXPECT().FindTravelByID(gomock.Any(), "travel-1").Return(models.Travel{ID: "travel-1"}, nil)
	tours.EXPECT().CreateTour(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tour models.Tour) (models.Tour, error) {
			assert.Equal(t, "tour-1", tour.ID)
			assert.Equal(t, "travel-1", tour.TravelID)
			assert.Equal(t, start, tour.StartingDate)
			assert.Equal(t, end, tour.EndingDate)
			assert.True(t, decimal.RequireFromString("1999.99").Equal(tour.Price))
			return tour, nil
		})

	created, err := svc.CreateTour(context.Background(), "travel-1", tourRequest("JOR20261101", start, end, "1999.99"))

	require.NoError(t, err)
	assert.Equal(t, "JOR20261101", created.Name)
}

func TestTourService_CreateTour_UnknownTravel(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, travels, _ := newTestTourSvc(t, ctrl)

	travels.EXPECT().FindTravelByID(gomock.Any(), "missing").Return(models.Travel{}, store.ErrTravelNotFound)

	_, err := svc.CreateTour(context.Background(), "missing",
		tourRequest("x", models.NewDate(2026, 1, 1), models.NewDate(2026, 1, 2), "1"))

	assert.ErrorIs(t, err, store.ErrTravelNotFound)
}

func TestTourValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, travels, _ := newTestTourSvc(t, ctrl)
	wrapped := NewTourValidationService(validators.NewRequestValidator()).Wrap(svc)

	_, err := wrapped.CreateTour(context.Background(), "travel-1",
		tourRequest("x", models.NewDate(2026, 1, 5), models.NewDate(2026, 1, 2), "-1"))

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, validators.FieldEndingDate)
	assert.Contains(t, verr.Fields, validators.FieldPrice)

	travels.EXPECT().FindTravelBySlug(gomock.Any(), "s").Return(models.Travel{}, store.ErrTravelNotFound)
	_, err = wrapped.ListTours(context.Background(), "s", models.DefaultTourQuery())
	assert.ErrorIs(t, err, store.ErrTravelNotFound)
}
