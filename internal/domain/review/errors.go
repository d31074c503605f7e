package review

import (
	apperrors "github.com/xiebiao/bookreviews/pkg/errors"
)

var (
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidParams, "rating must be between 0 and 5")
	ErrInvalidUserID = apperrors.New(apperrors.ErrCodeInvalidParams, "user_id is required")
)
