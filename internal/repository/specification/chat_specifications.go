package specification

import "gorm.io/gorm"

// BySessionID filters conversation logs by their session identifier
type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// BySourceLabel filters document chunks by the option they document
type BySourceLabel struct {
	Label string
}

func (s BySourceLabel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source_label = ?", s.Label)
}
