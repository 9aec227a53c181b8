package handlers

import (
	"errors"
	"time"

	apierrors "monetrix-dashboard/internal/errors"
	"monetrix-dashboard/internal/feed"
	"monetrix-dashboard/internal/services"
	"monetrix-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
)

// parseDay reads an optional YYYY-MM-DD query value as a UTC calendar day
func parseDay(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation(validation.ISODateLayout, value, time.UTC)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// handleServiceError maps dashboard and feed service errors to API errors
func handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidClientID):
		return SendError(c, apierrors.ValidationInvalidClient)
	case errors.Is(err, services.ErrInvalidDateRange):
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("from must not be after to"))
	case errors.Is(err, services.ErrSnapshotNotFound):
		return SendError(c, apierrors.FeedSnapshotNotFound)
	case errors.Is(err, services.ErrFeedUnavailable):
		return SendError(c, apierrors.FeedUnavailable)
	case errors.Is(err, feed.ErrIncompleteFeed):
		return SendError(c, apierrors.FeedIncomplete, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrSnapshotStore):
		return SendDatabaseError(c, err)
	}
	return SendSystemError(c, err)
}
