package entity

// Unidades de tempo válidas para a estimativa de um serviço.
const (
	TimeUnitHours = "hours"
	TimeUnitDays  = "days"
	TimeUnitWeeks = "weeks"
)

// Service representa um serviço oferecido pela empresa.
type Service struct {
	Base
	Name          string
	Description   string
	EstimatedTime int    // sempre positivo
	TimeUnit      string // hours | days | weeks
}
