package domain

import "time"

// Conversation is an opened chat between two users. The user pair is
// stored ordered (User1ID < User2ID) so a pair maps to one row.
type Conversation struct {
	ID        string    `json:"id" db:"id"`
	User1ID   string    `json:"user1_id" db:"user1_id"`
	User2ID   string    `json:"user2_id" db:"user2_id"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (c *Conversation) HasUser(userID string) bool {
	return c.User1ID == userID || c.User2ID == userID
}

func (c *Conversation) OtherUserID(userID string) (string, bool) {
	if c.User1ID == userID {
		return c.User2ID, true
	}
	if c.User2ID == userID {
		return c.User1ID, true
	}
	return "", false
}
