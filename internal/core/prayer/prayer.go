// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package prayer collects prayer requests from visitors and members.

Anyone may submit a request; only staff can read, follow up on, or remove
them. A signed-in submitter is recorded so staff can reach them.
*/
package prayer

import "time"

// Status tracks how staff have followed up on a request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusPraying  Status = "praying"
	StatusAnswered Status = "answered"
)

// Request is one prayer request.
type Request struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Content     string    `json:"content"`
	Status      Status    `json:"status"`
	SubmittedBy *int64    `json:"submitted_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubmitInput is the body of POST /prayer-requests.
type SubmitInput struct {
	Name    string `json:"name" validate:"max=100"`
	Email   string `json:"email" validate:"omitempty,email,max=255"`
	Content string `json:"content" validate:"required,max=5000"`
}

// StatusInput is the body of PATCH /prayer-requests/{id}/status.
type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending praying answered"`
}

const resourceName = "Prayer request"
