package exceptions

import (
	"consultant-discovery/internal/pkg/constvars"
	"fmt"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientServerLongRespond, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDecodeResponse, source))
	}
	ErrUnexpectedStatus = func(statusCode int, source string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevUnexpectedStatus, statusCode, source))
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrReadBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevReadBody)
	}
	ErrTooManyRequests = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
	}
	ErrRecoveredPanic = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRecoveredPanic)
	}
	ErrUnsupportedProvider = func(provider string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevUnsupportedProvider, provider))
	}
)

var (
	ErrLocationUnavailable = func(err error) *CustomError {
		return buildKindError(ErrKindLocationUnavailable, err, constvars.StatusServiceUnavailable, constvars.NotifyLocationLocateFailed, constvars.ErrDevLocationUnavailable)
	}
	ErrInvalidCoordinate = func(lat, lng float64) *CustomError {
		return buildKindError(ErrKindInvalidCoordinate, nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf("%s: (%f, %f)", constvars.ErrDevInvalidCoordinate, lat, lng))
	}
	ErrGeocodeNotFound = func(placeName string) *CustomError {
		return buildKindError(ErrKindGeocodeNotFound, nil, constvars.StatusNotFound, constvars.NotifyLocationNotFound, fmt.Sprintf(constvars.ErrDevGeocodeNotFound, placeName))
	}
	ErrGeocodeFailed = func(err error, placeName string) *CustomError {
		return buildKindError(ErrKindGeocodeFailed, err, constvars.StatusBadGateway, constvars.NotifyLocationLookupFailed, fmt.Sprintf(constvars.ErrDevGeocodeFailed, placeName))
	}
	ErrQueryFailed = func(err error) *CustomError {
		return buildKindError(ErrKindQueryFailed, err, constvars.StatusBadGateway, constvars.NotifyConsultantsFetchFailed, constvars.ErrDevQueryFailed)
	}
	ErrBookingRejected = func(serverMessage string) *CustomError {
		return buildKindError(ErrKindBookingRejected, nil, constvars.StatusConflict, serverMessage, constvars.ErrDevBookingRejected)
	}
	ErrBookingTransportFailed = func(err error) *CustomError {
		return buildKindError(ErrKindBookingTransportFailed, err, constvars.StatusBadGateway, constvars.NotifyBookingFailed, constvars.ErrDevBookingTransportFailed)
	}
	ErrBookingDraftIncomplete = func(err error) *CustomError {
		return buildKindError(ErrKindBookingDraftIncomplete, err, constvars.StatusUnprocessableEntity, FormatFirstValidationError(err), constvars.ErrDevBookingDraftIncomplete)
	}
	ErrDialogNotOpen = func() *CustomError {
		return buildKindError(ErrKindDialogNotOpen, nil, constvars.StatusConflict, constvars.ErrClientDialogNotOpen, constvars.ErrDevDialogNotOpen)
	}
	ErrDialogSubmitting = func() *CustomError {
		return buildKindError(ErrKindDialogSubmitting, nil, constvars.StatusConflict, constvars.ErrClientBookingInProgress, constvars.ErrDevDialogSubmitting)
	}
	ErrConsultantNotFound = func(consultantID string) *CustomError {
		return buildKindError(ErrKindConsultantNotFound, nil, constvars.StatusNotFound, constvars.ErrClientConsultantNotFound, fmt.Sprintf(constvars.ErrDevConsultantNotInResults, consultantID))
	}
	ErrNotificationNotFound = func(notificationID string) *CustomError {
		return buildKindError(ErrKindNotificationNotFound, nil, constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevNotificationNotFound, notificationID))
	}
)
