// Package persistence implements the GORM-backed key store and database
// connection management for the supported database types.
package persistence
