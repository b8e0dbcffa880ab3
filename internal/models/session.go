package models

// Session represents one occurrence of the weekly game for one chat
type Session struct {
	// ID is the store-assigned numeric identifier
	ID int64

	// ChatID is the Telegram chat this session belongs to
	ChatID int64

	// TargetDate is the occurrence's calendar date in ISO form (2006-01-02)
	TargetDate string

	// IsClosed marks a finished session; closed sessions are never reused
	IsClosed bool

	// ListMessageID is the chat message carrying the live summary, 0 if none
	ListMessageID int

	// PinnedMessageID is the pinned vote prompt message, 0 if none
	PinnedMessageID int
}
