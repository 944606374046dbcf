package shared

// Minimal snapshots for command read operations
type CustomerSnapshot struct {
	ID           int64
	FullName     string
	Email        *string
	Phone        *string
	PasswordHash string
	Role         string
}

type BranchSnapshot struct {
	ID     int64
	Name   string
	City   string
	Active bool
}
