package tui

import (
	"errors"

	"github.com/matheus3301/chatshell/internal/attachment"
	"github.com/matheus3301/chatshell/internal/timeline"
	"github.com/matheus3301/chatshell/internal/tui/model"
	"github.com/matheus3301/chatshell/internal/tui/ui"
	"go.uber.org/zap"
)

// sendText appends the composed text and reports whether the composer may
// clear. Blank input is dropped quietly and the text stays in the field.
func sendText(chat *model.Chat, flash *ui.FlashModel, logger *zap.Logger, text string) bool {
	_, err := chat.Send(text)
	if err == nil {
		return true
	}
	var ve *timeline.ValidationError
	if errors.As(err, &ve) {
		logger.Debug("send ignored", zap.String("reason", ve.Reason))
		return false
	}
	flash.Notice(err)
	return false
}

// reportAttach surfaces a finished pick. Only failures reach the user.
func reportAttach(flash *ui.FlashModel, logger *zap.Logger, res attachment.Result, err error) {
	switch {
	case err != nil:
		flash.Notice(err)
	case res.Cancelled:
		logger.Debug("image pick cancelled")
	}
}
