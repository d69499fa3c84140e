package dto

import "time"

// AlertResponse salida de una alerta derivada.
type AlertResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	ProductID    string    `json:"product_id"`
	Message      string    `json:"message"`
	Severity     string    `json:"severity"`
	CreatedAt    time.Time `json:"created_at"`
	Acknowledged bool      `json:"acknowledged"`
}

// AlertListResponse generación actual de alertas.
type AlertListResponse struct {
	Items []AlertResponse `json:"items"`
	Total int             `json:"total"`
}
