package storage

import "context"

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// ReportArchive keeps a copy of every generated report outside the database.
type ReportArchive interface {
	Put(ctx context.Context, key string, body []byte) error
}
