package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/artmovehq/artmove-backend/pkg/enums"
)

// User is a login principal; organization access goes through Memberships.
type User struct {
	ID           uuid.UUID    `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string       `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash string       `gorm:"column:password_hash;not null"`
	FullName     string       `gorm:"column:full_name;not null"`
	Memberships  []Membership `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time    `gorm:"column:updated_at;autoUpdateTime"`
}

// Membership grants a user a role inside an organization.
type Membership struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID        `gorm:"column:user_id;type:uuid;not null;index"`
	OrgID     uuid.UUID        `gorm:"column:org_id;type:uuid;not null;index"`
	Role      enums.MemberRole `gorm:"column:role;type:member_role;not null;default:'member'"`
	Org       *Organization    `gorm:"foreignKey:OrgID"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
}
