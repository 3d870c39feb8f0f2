package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"kcalbot/internal/adapter/charts"
	"kcalbot/internal/app"
	"kcalbot/internal/domain"
)

const msgGreeting = `Hi! I help you track daily water and calorie goals.

Commands:
/set_profile - guided profile setup
/set_calorie_goal <kcal> - override the calorie goal
/log_water <ml> - log water intake
/log_food - log a meal
/log_workout - log a workout
/check_progress - today's totals
/progress_graphs - progress charts
/cancel - abandon the current dialog`

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID
	args := strings.TrimSpace(msg.CommandArguments())

	switch msg.Command() {
	case "start":
		b.reply(chatID, msgGreeting)

	case "set_profile":
		b.reply(chatID, b.dialogs.StartProfileSetup(ctx, userID))

	case "set_calorie_goal":
		goal, err := strconv.ParseFloat(args, 64)
		if args == "" || err != nil {
			b.reply(chatID, "Usage: /set_calorie_goal 2000")
			return
		}
		if err := b.tracker.SetCalorieGoal(ctx, userID, goal); err != nil {
			b.replyError(chatID, err)
			return
		}
		b.reply(chatID, fmt.Sprintf("New calorie goal: %.1f kcal.", goal))

	case "log_water":
		amount, err := strconv.Atoi(args)
		if args == "" || err != nil {
			b.reply(chatID, "Usage: /log_water 330")
			return
		}
		st, err := b.tracker.LogWater(ctx, userID, float64(amount))
		if err != nil {
			b.replyError(chatID, err)
			return
		}
		b.reply(chatID, fmt.Sprintf("Logged %.0f ml of water.\nTotal: %.0f ml.\nRemaining to goal: %.0f ml.",
			st.LoggedMl, st.TotalMl, st.RemainingMl))

	case "log_food":
		prompt, err := b.dialogs.StartLogFood(ctx, userID)
		if err != nil {
			b.replyError(chatID, err)
			return
		}
		b.reply(chatID, prompt)

	case "log_workout":
		prompt, err := b.dialogs.StartLogWorkout(ctx, userID)
		if err != nil {
			b.replyError(chatID, err)
			return
		}
		b.reply(chatID, prompt)

	case "check_progress":
		rep, err := b.progress.Report(ctx, userID)
		if err != nil {
			b.replyError(chatID, err)
			return
		}
		b.reply(chatID, formatReport(rep))

	case "progress_graphs":
		b.sendGraphs(ctx, userID, chatID)

	default:
		b.reply(chatID, "Unknown command. Send /start for the list of commands.")
	}
}

func (b *Bot) sendGraphs(ctx context.Context, userID, chatID int64) {
	water, calories, err := b.progress.Series(ctx, userID)
	if errors.Is(err, app.ErrNotEnoughData) {
		b.reply(chatID, "Not enough data for graphs yet (need at least 2 entries of each).")
		return
	}
	if err != nil {
		b.replyError(chatID, err)
		return
	}

	waterPNG, err := charts.RenderSeries("Water progress", "ml", water)
	if err != nil {
		b.log.Error("water chart render failed", zap.Error(err))
		b.reply(chatID, "Could not render the graphs, try again later.")
		return
	}
	caloriesPNG, err := charts.RenderSeries("Calorie progress", "kcal", calories)
	if err != nil {
		b.log.Error("calorie chart render failed", zap.Error(err))
		b.reply(chatID, "Could not render the graphs, try again later.")
		return
	}

	b.sendPhoto(chatID, "water.png", "Water intake", waterPNG)
	b.sendPhoto(chatID, "calories.png", "Calorie intake", caloriesPNG)
}

// replyError maps service errors to user-facing guidance.
func (b *Bot) replyError(chatID int64, err error) {
	if errors.Is(err, domain.ErrProfileNotFound) {
		b.reply(chatID, app.MsgProfileRequired)
		return
	}
	b.log.Error("command failed", zap.Error(err))
	b.reply(chatID, "Something went wrong, try again later.")
}

func formatReport(rep *app.Report) string {
	return fmt.Sprintf(
		"Progress:\nWater: %.0f ml (goal: %.0f ml)\nCalories eaten: %.1f (goal: %.1f)\nBurned: %.1f kcal\nBalance (eaten - burned): %.1f kcal",
		rep.TotalWaterMl, rep.WaterGoalMl, rep.TotalCalories, rep.CalorieGoal,
		rep.BurnedCalories, rep.Balance)
}
