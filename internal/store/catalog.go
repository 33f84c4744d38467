package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/matheus3301/chatshell/internal/conversation"
	"github.com/matheus3301/chatshell/internal/overlay"
	"github.com/matheus3301/chatshell/internal/timeline"
)

const conversationColumns = `id, display_name, preview_text, timestamp_label, is_group,
	avatar_ref, member_avatar_ref, pending_overlay`

// ListConversations returns every conversation in display order.
func (db *DB) ListConversations() ([]conversation.Item, error) {
	rows, err := db.Query(`SELECT ` + conversationColumns + ` FROM conversations ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	items := []conversation.Item{}
	for rows.Next() {
		it, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetConversation returns one conversation by id, or nil if it does not exist.
func (db *DB) GetConversation(id string) (*conversation.Item, error) {
	row := db.QueryRow(`SELECT `+conversationColumns+` FROM conversations WHERE id = ?`, id)
	it, err := scanConversation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// ListMessages returns the seed thread of a conversation, oldest first.
// It satisfies timeline.SeedFunc.
func (db *DB) ListMessages(conversationID string) ([]timeline.Message, error) {
	rows, err := db.Query(`
		SELECT msg_id, kind, body, image_ref, outgoing, timestamp_label
		FROM messages WHERE conversation_id = ? ORDER BY id`, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var msgs []timeline.Message
	for rows.Next() {
		var (
			m        timeline.Message
			kind     string
			outgoing int
		)
		if err := rows.Scan(&m.ID, &kind, &m.Text, &m.ImageRef, &outgoing, &m.TimestampLabel); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		if m.Kind, err = timeline.ParseKind(kind); err != nil {
			return nil, err
		}
		m.Outgoing = outgoing != 0
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConversation(s scanner) (conversation.Item, error) {
	var (
		it      conversation.Item
		isGroup int
		pending string
	)
	err := s.Scan(&it.ID, &it.DisplayName, &it.PreviewText, &it.TimestampLabel, &isGroup,
		&it.AvatarRef, &it.MemberAvatarRef, &pending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return it, err
		}
		return it, fmt.Errorf("scan conversation: %w", err)
	}
	it.IsGroup = isGroup != 0
	if it.PendingOverlay, err = parsePending(pending); err != nil {
		return it, err
	}
	return it, nil
}

func parsePending(s string) (overlay.Kind, error) {
	switch s {
	case "":
		return overlay.None, nil
	case "invite":
		return overlay.Invite, nil
	case "agreement":
		return overlay.Agreement, nil
	default:
		return overlay.None, fmt.Errorf("unknown pending overlay %q", s)
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
