package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/KirkDiggler/matchday/internal/models"
)

// Callback data prefixes and actions
const (
	callbackStatusPrefix = "status:"
	callbackTeamPrefix   = "team:"
	callbackAddGuest     = "add_guest"
	callbackDeleteGuest  = "delete_guest"
	callbackChangeTeam   = "change_team"
)

// promptKeyboard builds the main status keyboard posted with the prompt
// message, one button per row
func promptKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Я буду, запиши меня", callbackStatusPrefix+string(models.StatusYes)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Пока не определился", callbackStatusPrefix+string(models.StatusMaybe)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Не смогу пойти, занят", callbackStatusPrefix+string(models.StatusNo)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить участника не из группы", callbackAddGuest),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➖ Удалить участника не из группы", callbackDeleteGuest),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Изменить команду участника", callbackChangeTeam),
		),
	)
}

// teamKeyboard builds the two-button team picker
func teamKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(models.TeamArmada.Display(), callbackTeamPrefix+string(models.TeamArmada)),
			tgbotapi.NewInlineKeyboardButtonData(models.TeamKabany.Display(), callbackTeamPrefix+string(models.TeamKabany)),
		),
	)
}
