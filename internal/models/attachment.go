package models

import "time"

// Attachment is file metadata plus its binary payload. The payload
// lives in the same row but is omitted from metadata reads and never
// serialized to JSON; it is immutable once written (full delete only,
// no content update). Attachment IDs are referenced by free-form lists
// on Project/Task without reference counting, so orphaned rows are
// never reclaimed.
type Attachment struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	FileName  string    `gorm:"not null" json:"fileName"`
	MimeType  string    `json:"mimeType"`
	Size      int64     `json:"size"`
	Data      []byte    `gorm:"column:data" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// Meta returns a copy of the attachment without the binary payload.
func (a Attachment) Meta() Attachment {
	a.Data = nil
	return a
}
