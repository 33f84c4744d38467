package store

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Fixtures is the TOML shape of an extra catalog file:
//
//	[[conversation]]
//	id = "7"
//	display_name = "Julie"
//	pending_overlay = "invite"
//
//	  [[conversation.message]]
//	  id = "1"
//	  kind = "text"
//	  text = "hello"
type Fixtures struct {
	Conversations []FixtureConversation `toml:"conversation"`
}

type FixtureConversation struct {
	ID              string           `toml:"id"`
	DisplayName     string           `toml:"display_name"`
	PreviewText     string           `toml:"preview_text"`
	TimestampLabel  string           `toml:"timestamp_label"`
	IsGroup         bool             `toml:"is_group"`
	AvatarRef       string           `toml:"avatar_ref"`
	MemberAvatarRef string           `toml:"member_avatar_ref"`
	PendingOverlay  string           `toml:"pending_overlay"`
	Messages        []FixtureMessage `toml:"message"`
}

type FixtureMessage struct {
	ID             string `toml:"id"`
	Kind           string `toml:"kind"`
	Text           string `toml:"text"`
	ImageRef       string `toml:"image_ref"`
	Outgoing       bool   `toml:"outgoing"`
	TimestampLabel string `toml:"timestamp_label"`
}

// LoadFixtures decodes a fixture file.
func LoadFixtures(path string) (*Fixtures, error) {
	var f Fixtures
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode fixtures %s: %w", path, err)
	}
	return &f, nil
}

// ImportFixtures upserts conversations and their messages in one transaction.
// New conversations are appended after the existing ones.
func (db *DB) ImportFixtures(f *Fixtures) (int, error) {
	for i, c := range f.Conversations {
		if c.ID == "" || c.DisplayName == "" {
			return 0, fmt.Errorf("conversation %d: id and display_name are required", i)
		}
		if _, err := parsePending(c.PendingOverlay); err != nil {
			return 0, fmt.Errorf("conversation %s: %w", c.ID, err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var next int
	if err := tx.QueryRow(`SELECT COALESCE(MAX(position), 0) + 1 FROM conversations`).Scan(&next); err != nil {
		return 0, fmt.Errorf("next position: %w", err)
	}

	for _, c := range f.Conversations {
		_, err := tx.Exec(`
			INSERT INTO conversations (id, position, display_name, preview_text, timestamp_label,
				is_group, avatar_ref, member_avatar_ref, pending_overlay)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				display_name = excluded.display_name,
				preview_text = excluded.preview_text,
				timestamp_label = excluded.timestamp_label,
				is_group = excluded.is_group,
				avatar_ref = excluded.avatar_ref,
				member_avatar_ref = excluded.member_avatar_ref,
				pending_overlay = excluded.pending_overlay`,
			c.ID, next, c.DisplayName, c.PreviewText, c.TimestampLabel,
			boolInt(c.IsGroup), c.AvatarRef, c.MemberAvatarRef, c.PendingOverlay)
		if err != nil {
			return 0, fmt.Errorf("upsert conversation %s: %w", c.ID, err)
		}
		next++

		for j, m := range c.Messages {
			id := m.ID
			if id == "" {
				id = fmt.Sprintf("%d", j+1)
			}
			kind := m.Kind
			if kind == "" {
				kind = "text"
			}
			_, err := tx.Exec(`
				INSERT INTO messages (conversation_id, msg_id, kind, body, image_ref, outgoing, timestamp_label)
				VALUES (?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(conversation_id, msg_id) DO UPDATE SET
					kind = excluded.kind,
					body = excluded.body,
					image_ref = excluded.image_ref,
					outgoing = excluded.outgoing,
					timestamp_label = excluded.timestamp_label`,
				c.ID, id, kind, m.Text, m.ImageRef, boolInt(m.Outgoing), m.TimestampLabel)
			if err != nil {
				return 0, fmt.Errorf("upsert message %s/%s: %w", c.ID, id, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(f.Conversations), nil
}
