package draft

import (
	"time"

	"github.com/edirooss/livectl/pkg/jsonx"
)

// Draft is a linted request document parked for later submission.
// Payload holds the canonical encoding of the decoded record, so two drafts of
// the same document carry identical bytes and the same Hash.
type Draft struct {
	ID        string           `json:"id"`         // uuid v4
	Type      string           `json:"type"`       // registry name, e.g. CreateChannelRequest
	Payload   jsonx.RawMessage `json:"payload"`    //
	Hash      string           `json:"hash"`       // hex schema.Hash of the decoded record
	CreatedAt time.Time        `json:"created_at"` //
	ExpiresAt time.Time        `json:"expires_at"` //
}

// Summary is the list view of a Draft.
type Summary struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (d *Draft) Summary() Summary {
	return Summary{
		ID:        d.ID,
		Type:      d.Type,
		Hash:      d.Hash,
		CreatedAt: d.CreatedAt,
		ExpiresAt: d.ExpiresAt,
	}
}
