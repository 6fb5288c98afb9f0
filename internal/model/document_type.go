package model

// DocumentType is identification reference data (CC, NIT, PAS, ...).
// Rows are seeded by migration and shared by many clients.
type DocumentType struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
