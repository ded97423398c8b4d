// Package models contains the GORM database models backing the key store.
package models
