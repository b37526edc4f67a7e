package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameExists      = errors.New("username already exists")
	ErrInvalidRole         = errors.New("role must be scanner or viewer")
	ErrAdminRequired       = errors.New("admin access required")
	ErrScannerRoleRequired = errors.New("scanner or admin access required")
)
