package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type distinguishes the two pay classes.
type Type string

const (
	// TypeProduction employees are paid per unit of task performed.
	TypeProduction Type = "Produccion"
	// TypeAlDia employees draw a fixed monthly salary plus overtime.
	TypeAlDia Type = "AlDia"
)

type Employee struct {
	ID            string
	Name          string
	DNI           string
	Type          Type
	MonthlySalary decimal.Decimal
	PhotoPath     *string
	QRCode        string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
