package domain

import "time"

// Case is a legal matter handled for a client. It references its client by
// id and does not own it.
type Case struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ClientID    int64     `json:"clientId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (c *Case) Clone() *Case {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
