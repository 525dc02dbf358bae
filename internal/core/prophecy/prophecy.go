// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package prophecy manages recorded prophetic words and their review status.

A prophecy is submitted as pending and reviewed by staff into verified or
rejected. Only verified prophecies are visible outside the staff.
*/
package prophecy

import "time"

// Status is the review state of a prophecy.
type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
)

// Prophecy is a single recorded word.
type Prophecy struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	ProphetName string     `json:"prophet_name"`
	ReceivedOn  *time.Time `json:"received_on"`
	Status      Status     `json:"status"`
	CreatedBy   *int64     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateInput is the body of POST /prophecies.
type CreateInput struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Content     string  `json:"content" validate:"required"`
	ProphetName string  `json:"prophet_name" validate:"max=100"`
	ReceivedOn  *string `json:"received_on" validate:"omitempty,datetime=2006-01-02"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending verified rejected"`
}

// UpdateInput is the body of PUT /prophecies/{id}.
type UpdateInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content     *string `json:"content" validate:"omitempty,min=1"`
	ProphetName *string `json:"prophet_name" validate:"omitempty,max=100"`
	ReceivedOn  *string `json:"received_on" validate:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending verified rejected"`
}

// StatusInput is the body of PATCH /prophecies/{id}/status.
type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending verified rejected"`
}

const resourceName = "Prophecy"
