package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a care recipient enrolled with a tenant.
type Client struct {
	DefaultModel
	TenantID   uuid.UUID `gorm:"uniqueIndex:client_tenant_ndis"`
	Tenant     Tenant
	Name       string
	NDISNumber string `gorm:"uniqueIndex:client_tenant_ndis"` // NDIS participant number, unique per tenant
	Note       string
}

func (c Client) Self() string {
	return "Client"
}

func (c *Client) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.NDISNumber = strings.TrimSpace(c.NDISNumber)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}
