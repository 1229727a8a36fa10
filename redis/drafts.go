package redis

import (
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/gislain231/greenshare/models"
)

// DraftTTL bounds one wizard session. A draft untouched for this long
// is treated the same as a closed modal.
const DraftTTL = 30 * time.Minute

var ErrDraftNotFound = fmt.Errorf("booking draft not found")

func draftKey(id string) string {
	return "booking:draft:" + id
}

// SaveDraft stores the draft and refreshes its session TTL.
func SaveDraft(d *models.BookingDraft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return Client.Set(Ctx, draftKey(d.ID), data, DraftTTL).Err()
}

// GetDraft loads a draft by id. Expired or unknown ids return
// ErrDraftNotFound.
func GetDraft(id string) (*models.BookingDraft, error) {
	data, err := Client.Get(Ctx, draftKey(id)).Bytes()
	if err == goredis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}
	var draft models.BookingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// DeleteDraft discards a draft. Deleting an unknown id is not an error:
// closing an already-reset wizard is a no-op.
func DeleteDraft(id string) error {
	return Client.Del(Ctx, draftKey(id)).Err()
}
