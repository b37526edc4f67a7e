package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDNIExists        = errors.New("an employee with this DNI already exists")
	ErrUnknownType      = errors.New("unknown employee type")
	ErrQRNotFound       = errors.New("employee QR code not found")
)
