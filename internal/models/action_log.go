// Package models contains data structures for the application's domain models.
package models

import (
	"strings"
	"time"
)

// ActionType is the kind of interaction a user performs on a target.
type ActionType string

const (
	ActionTypeView     ActionType = "view"
	ActionTypeLike     ActionType = "like"
	ActionTypeBookmark ActionType = "bookmark"
	ActionTypeReport   ActionType = "report"
)

// ActionTypes lists every accepted action type in display order.
var ActionTypes = []ActionType{ActionTypeView, ActionTypeLike, ActionTypeBookmark, ActionTypeReport}

// Valid reports whether t is one of the known action types.
func (t ActionType) Valid() bool {
	switch t {
	case ActionTypeView, ActionTypeLike, ActionTypeBookmark, ActionTypeReport:
		return true
	}
	return false
}

// TargetType is the kind of entity an action applies to.
type TargetType string

const (
	TargetTypePost    TargetType = "post"
	TargetTypeComment TargetType = "comment"
)

// Valid reports whether t is one of the known target types.
func (t TargetType) Valid() bool {
	return t == TargetTypePost || t == TargetTypeComment
}

// ParseActionType converts raw input into an ActionType.
func ParseActionType(raw string) (ActionType, error) {
	t := ActionType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", NewValidationError("Invalid action type")
	}
	return t, nil
}

// ParseTargetType converts raw input into a TargetType.
func ParseTargetType(raw string) (TargetType, error) {
	t := TargetType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", NewValidationError("Invalid target type")
	}
	return t, nil
}

// ActionLog records the latest state of one user's action on one target.
// At most one row exists per (user, action type, target type, target id);
// repeated actions update IsOn and CreatedAt in place.
type ActionLog struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;uniqueIndex:uq_action_logs_key,priority:1" json:"user_id"`
	ActionType ActionType `gorm:"type:varchar(20);not null;uniqueIndex:uq_action_logs_key,priority:2" json:"action_type"`
	TargetType TargetType `gorm:"type:varchar(20);not null;uniqueIndex:uq_action_logs_key,priority:3;index:idx_action_logs_target,priority:1" json:"target_type"`
	TargetID   uint       `gorm:"not null;uniqueIndex:uq_action_logs_key,priority:4;index:idx_action_logs_target,priority:2" json:"target_id"`
	IsOn       bool       `gorm:"not null" json:"is_on"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`
}

// TableName specifies the table name for GORM
func (ActionLog) TableName() string {
	return "action_logs"
}

// ActionKey identifies the single ActionLog row for a user's action on a target.
type ActionKey struct {
	UserID     uint
	ActionType ActionType
	TargetType TargetType
	TargetID   uint
}

// Key returns the identifying key of the log.
func (l *ActionLog) Key() ActionKey {
	return ActionKey{UserID: l.UserID, ActionType: l.ActionType, TargetType: l.TargetType, TargetID: l.TargetID}
}
