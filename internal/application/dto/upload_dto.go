package dto

import "time"

// UploadResponse salida de una carga masiva (la colección siempre está vacía:
// el parseo de archivos está fuera del alcance).
type UploadResponse struct {
	ID          string     `json:"id"`
	Filename    string     `json:"filename"`
	TotalRows   int        `json:"total_rows"`
	TotalAmount float64    `json:"total_amount"`
	Timestamp   time.Time  `json:"timestamp"`
	HashCode    string     `json:"hash_code"`
	Status      string     `json:"status"`
	UploadedBy  string     `json:"uploaded_by"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

// UploadListResponse listado de cargas masivas.
type UploadListResponse struct {
	Items []UploadResponse `json:"items"`
	Total int              `json:"total"`
}
