package entity

import "time"

// Estados válidos para FileUpload.
const (
	UploadStatusPending   = "pending"
	UploadStatusProcessed = "processed"
	UploadStatusFailed    = "failed"
)

// FileUpload representa una carga masiva de inventario. La carga y el parseo
// de archivos están fuera del alcance; solo se modela el registro.
type FileUpload struct {
	ID          string
	Filename    string
	TotalRows   int
	TotalAmount float64
	Timestamp   time.Time
	HashCode    string
	Status      string // pending, processed, failed
	UploadedBy  string
	ProcessedAt *time.Time
}
