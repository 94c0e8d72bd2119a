package dto

// StatsResponse contagens das três coleções no instante da chamada.
type StatsResponse struct {
	Customers int `json:"customers"`
	Employees int `json:"employees"`
	Services  int `json:"services"`
}
