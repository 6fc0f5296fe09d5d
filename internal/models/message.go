package models

import (
	"database/sql"
	"time"
)

// Message represents a message between users about a project
type Message struct {
	ID          int64         `gorm:"primaryKey;autoIncrement;column:id"`
	ProjectID   int64         `gorm:"not null;index:messages_ix2;column:project_id"`
	SenderID    sql.NullInt64 `gorm:"index:messages_ix3;column:sender_id"`
	RecipientID int64         `gorm:"not null;index:messages_ix1;column:recipient_id"`

	// Message content
	Subject     string `gorm:"type:varchar(200);not null;default:'';column:subject"`
	Content     string `gorm:"type:text;not null;column:content"`
	MessageType string `gorm:"type:varchar(20);not null;default:'general';column:message_type"`

	// Anonymous sender fields, used when SenderID is null
	SenderName  string `gorm:"type:varchar(100);not null;default:'';column:sender_name"`
	SenderEmail string `gorm:"type:varchar(254);not null;default:'';column:sender_email"`

	// Message status
	IsRead     bool `gorm:"not null;default:false;index:messages_ix1;column:is_read"`
	IsArchived bool `gorm:"not null;default:false;column:is_archived"`
	IsSpam     bool `gorm:"not null;default:false;column:is_spam"`

	// Timestamps
	CreatedAt time.Time    `gorm:"not null;autoCreateTime;index:messages_ix1;index:messages_ix2;index:messages_ix3;column:created_at"`
	ReadAt    sql.NullTime `gorm:"column:read_at"`

	// Relationships
	Project   *ProjectIdea `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Sender    *User        `gorm:"foreignKey:SenderID;references:ID;constraint:OnDelete:SET NULL"`
	Recipient *User        `gorm:"foreignKey:RecipientID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Message
func (Message) TableName() string {
	return "messages"
}

// SenderDisplayName returns the display name for the message sender
func (m *Message) SenderDisplayName() string {
	if m.Sender != nil {
		if m.Sender.FirstName != "" || m.Sender.LastName != "" {
			name := m.Sender.FirstName
			if m.Sender.LastName != "" {
				if name != "" {
					name += " "
				}
				name += m.Sender.LastName
			}
			return name
		}
		return m.Sender.Email
	}
	if m.SenderName != "" {
		return m.SenderName
	}
	return m.SenderEmail
}

// Message type constants
const (
	MessageTypeInquiry       = "inquiry"
	MessageTypeCollaboration = "collaboration"
	MessageTypeFeedback      = "feedback"
	MessageTypeGeneral       = "general"
)

// MessageTypes lists the valid message type values
var MessageTypes = []string{
	MessageTypeInquiry,
	MessageTypeCollaboration,
	MessageTypeFeedback,
	MessageTypeGeneral,
}

// MessageThread groups related messages loosely; messages carry no direct
// thread reference
type MessageThread struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	ProjectID int64     `gorm:"not null;index;column:project_id"`
	Subject   string    `gorm:"type:varchar(200);not null;column:subject"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime;column:updated_at"`

	// Relationships
	Project      *ProjectIdea `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Participants []User       `gorm:"many2many:message_threads_participants"`
}

// TableName specifies the table name for MessageThread
func (MessageThread) TableName() string {
	return "message_threads"
}
