package employee

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name          string          `json:"name"`
	DNI           string          `json:"dni"`
	Type          string          `json:"type"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`

	// Optional photo, handled as a side effect after the record persists
	Photo         io.Reader `json:"-"`
	PhotoFilename string    `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidDNI(r.DNI) {
		errs = append(errs, validator.ValidationError{
			Field:   "dni",
			Message: "dni must be exactly 13 digits",
		})
	}

	if !validator.IsInSlice(r.Type, []string{string(TypeProduction), string(TypeAlDia)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be Produccion or AlDia",
		})
	}

	if r.Type == string(TypeAlDia) && !r.MonthlySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "AlDia employees require a positive monthly salary",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string          `json:"-"`
	Name          string          `json:"name"`
	DNI           string          `json:"dni"`
	Type          string          `json:"type"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	RemovePhoto   bool            `json:"remove_photo"`

	Photo         io.Reader `json:"-"`
	PhotoFilename string    `json:"-"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		Name:          r.Name,
		DNI:           r.DNI,
		Type:          r.Type,
		MonthlySalary: r.MonthlySalary,
	}
	return create.Validate()
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	DNI           string          `json:"dni"`
	Type          string          `json:"type"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	PhotoURL      *string         `json:"photo"`
	QRCode        string          `json:"qr_code"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     string          `json:"created_at"`
}
