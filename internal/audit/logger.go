package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/GabrielAraujo027/Kalenner/internal/models"
)

// Sink persists one audit record. The gorm Logger is the production
// sink; tests use NopSink.
type Sink interface {
	Log(companyID uint, userID *string, action, entity string, entityID *uint, metadata any) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	companyID uint,
	userID *string,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		CompanyID: companyID,
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
	}

	return l.db.Create(&entry).Error
}

// NopSink discards events. Used where an audit trail is not wanted,
// notably in use-case tests.
type NopSink struct{}

func (NopSink) Log(uint, *string, string, string, *uint, any) error { return nil }
