package domain

import (
	"fmt"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Err:        err,
	}
}

// Pre-defined errors
var (
	ErrInternal = &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		StatusCode: 500,
	}

	ErrBadRequest = &AppError{
		Code:       "BAD_REQUEST",
		Message:    "Invalid request",
		StatusCode: 400,
	}

	ErrUnauthorized = &AppError{
		Code:       "UNAUTHORIZED",
		Message:    "Invalid or missing session token",
		StatusCode: 401,
	}

	ErrValidationFailed = &AppError{
		Code:       "VALIDATION_FAILED",
		Message:    "Request validation failed",
		StatusCode: 422,
	}

	ErrZoneNotFound = &AppError{
		Code:       "ZONE_NOT_FOUND",
		Message:    "Zone index out of range",
		StatusCode: 404,
	}

	ErrCameraNotReady = &AppError{
		Code:       "CAMERA_NOT_READY",
		Message:    "Camera has no decoded frame available yet",
		StatusCode: 409,
	}

	ErrCameraUnavailable = &AppError{
		Code:       "CAMERA_UNAVAILABLE",
		Message:    "Camera access is not available",
		StatusCode: 409,
	}

	ErrFrameCaptureFailed = &AppError{
		Code:       "FRAME_CAPTURE_FAILED",
		Message:    "Failed to capture a frame from the camera stream",
		StatusCode: 500,
	}

	ErrGateway = &AppError{
		Code:       "GATEWAY_ERROR",
		Message:    "Analysis gateway request failed",
		StatusCode: 502,
	}

	ErrGatewayTimeout = &AppError{
		Code:       "GATEWAY_TIMEOUT",
		Message:    "Analysis gateway did not respond in time",
		StatusCode: 504,
	}

	ErrInvalidImage = &AppError{
		Code:       "INVALID_IMAGE",
		Message:    "Invalid image payload, expected a base64 data URI",
		StatusCode: 422,
	}

	ErrRateLimitExceeded = &AppError{
		Code:       "RATE_LIMIT_EXCEEDED",
		Message:    "Rate limit exceeded, slow down",
		StatusCode: 429,
	}
)
