// Package plan implements the action planning stage: a deterministic
// action-type and urgency decision followed by generative step rendering.
package plan

// ActionType is the categorical response a document requires.
type ActionType string

// Action types.
const (
	ActionNone   ActionType = "NONE"   // informational, nothing to do
	ActionPay    ActionType = "PAY"    // payment required
	ActionCall   ActionType = "CALL"   // phone inquiry required
	ActionVisit  ActionType = "VISIT"  // in-person visit required
	ActionCheck  ActionType = "CHECK"  // further confirmation needed
	ActionSubmit ActionType = "SUBMIT" // paperwork submission required
	ActionUrgent ActionType = "URGENT" // immediate action required
)

// Urgency grades how soon the reader must act.
type Urgency string

// Urgency levels.
const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
)

// Plan is the planning stage result. Steps is never empty in a delivered
// plan.
type Plan struct {
	ActionType   ActionType `json:"action_type"`
	Urgency      Urgency    `json:"urgency"`
	Steps        []string   `json:"steps"`
	DeadlineInfo string     `json:"deadline_info"`
	ContactInfo  string     `json:"contact_info"`
	WhatIfIgnore string     `json:"what_if_ignore"`
}

// FallbackStep fills plans whose generative step rendering produced nothing.
const FallbackStep = "이 문서에 대해 추가 확인이 필요합니다."
