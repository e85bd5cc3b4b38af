package models

import (
	"strings"
	"time"

	"github.com/carebridge/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shift represents a rostered support shift for a client.
//
// A shift is completed by clearing the Active flag and setting the end
// time. The ledger only ever reads shifts, it never mutates them.
type Shift struct {
	DefaultModel
	TenantID uuid.UUID
	Tenant   Tenant
	ClientID uuid.UUID
	Client   Client
	UserID   uuid.UUID // the rostered staff member

	Title           string
	ShiftType       types.ShiftType
	StaffRatio      types.StaffRatio
	FundingCategory *types.FundingCategory // nil means the category is inferred from the shift type at billing time

	StartTime time.Time  // scheduled start, billing charges the booking
	EndTime   *time.Time `gorm:"check:end_after_start,end_time IS NULL OR end_time > start_time"` // scheduled end
	Active    bool
}

func (s Shift) Self() string {
	return "Shift"
}

// Completed reports whether the shift has been completed and is ready
// for billing.
func (s Shift) Completed() bool {
	return !s.Active && s.EndTime != nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (s *Shift) AfterFind(tx *gorm.DB) (err error) {
	err = s.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	s.StartTime = s.StartTime.In(time.UTC)
	if s.EndTime != nil {
		end := s.EndTime.In(time.UTC)
		s.EndTime = &end
	}

	return nil
}

// BeforeSave sets the timezone for the scheduled times to UTC and trims
// string fields.
func (s *Shift) BeforeSave(_ *gorm.DB) (err error) {
	s.Title = strings.TrimSpace(s.Title)

	s.StartTime = s.StartTime.In(time.UTC)
	if s.EndTime != nil {
		end := s.EndTime.In(time.UTC)
		s.EndTime = &end
	}

	return nil
}
