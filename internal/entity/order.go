package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/adewale-s/po-intake/constants"
)

// ExtractedFields is the mutable accumulator the extraction passes fill in.
// A nil field means "not resolved yet"; once a pass sets a field, later
// passes must leave it alone.
type ExtractedFields struct {
	Product         *string `json:"product,omitempty"`
	Quantity        *string `json:"quantity,omitempty"`
	Unit            *string `json:"unit,omitempty"`
	DueDate         *string `json:"due_date,omitempty"` // ISO calendar date (2006-01-02)
	RetailerName    *string `json:"retailer_name,omitempty"`
	RetailerEmail   *string `json:"retailer_email,omitempty"`
	RetailerAddress *string `json:"retailer_address,omitempty"`
}

// Order represents a purchase order for data transfer between layers.
type Order struct {
	ID              uuid.UUID               `json:"id"`
	OrderNumber     string                  `json:"order_number"`
	Product         *string                 `json:"product,omitempty"`
	Quantity        *string                 `json:"quantity,omitempty"`
	Unit            *string                 `json:"unit,omitempty"`
	DueDate         *string                 `json:"due_date,omitempty"`
	RetailerName    *string                 `json:"retailer_name,omitempty"`
	RetailerEmail   *string                 `json:"retailer_email,omitempty"`
	RetailerAddress *string                 `json:"retailer_address,omitempty"`
	RawText         string                  `json:"raw_text"`
	EmailHash       string                  `json:"email_hash"`
	DuplicateFlag   bool                    `json:"duplicate_flag"`
	ConfidenceScore float64                 `json:"confidence_score"`
	PriorityLevel   constants.PriorityLevel `json:"priority_level"`
	OrderStatus     constants.OrderStatus   `json:"order_status"`
	SourceOfOrder   string                  `json:"source_of_order"`
	Remarks         *string                 `json:"remarks,omitempty"`
	EmailSubject    string                  `json:"client_email_subject"`
	CreatedAt       time.Time               `json:"created_at"`
	ProcessedAt     time.Time               `json:"processed_at"`
}
