package discord

import (
	"fmt"

	"github.com/sheetwatch/sheetwatch-cli/questions"
)

const (
	doneTruncateAt   = 60
	recentDoneCount  = 3
	mentionThreshold = 3
)

// Compose builds the webhook message for a run result. It never fails:
// oversized todo lists are packed into successive embeds so that no field
// value exceeds the ceiling. Delivery is the caller's problem.
func Compose(r questions.Result) WebhookMessage {
	color := colorFor(r)

	main := Embed{
		Title:     fmt.Sprintf("📋 %s Questions Update", columnLabel(r)),
		Color:     color,
		Timestamp: r.Timestamp,
		Footer:    &EmbedFooter{Text: "sheetwatch"},
	}

	if r.Status != questions.StatusSuccess {
		main.Description = "❌ **Error occurred**"
		message := r.Message
		if message == "" {
			message = "Unknown error"
		}
		main.Fields = []EmbedField{{Name: "Error Message", Value: message}}
		return WebhookMessage{Embeds: []Embed{main}}
	}

	main.Description = statusEmoji(r) + " **Status Update**"
	main.Fields = []EmbedField{{
		Name: "📊 Summary",
		Value: fmt.Sprintf("**Total Questions:** %d\n**✅ Done:** %d\n**📝 Todo:** %d",
			r.TotalQuestions, r.DoneCount, r.TodoCount),
		Inline: true,
	}}

	if r.HasNewQuestions {
		alert := EmbedField{
			Name:  "🚨 Alert",
			Value: fmt.Sprintf("**%d question(s) need attention!**", r.TodoCount),
		}
		main.Fields = append([]EmbedField{alert}, main.Fields...)
	}

	main.Fields = append(main.Fields, EmbedField{
		Name:  "✅ Recently Completed",
		Value: recentlyCompleted(r.DoneQuestions),
	})

	msg := WebhookMessage{
		Embeds: append([]Embed{main}, todoEmbeds(r, color)...),
	}
	if r.HasNewQuestions && r.TodoCount > mentionThreshold {
		msg.Content = "@here Multiple questions need attention!"
	}
	return msg
}

func colorFor(r questions.Result) int {
	switch {
	case r.Status != questions.StatusSuccess:
		return ColorError
	case r.HasNewQuestions:
		return ColorNew
	case r.TodoCount == 0:
		return ColorAllDone
	default:
		return ColorNormal
	}
}

func statusEmoji(r questions.Result) string {
	switch {
	case r.HasNewQuestions:
		return "🆕"
	case r.TodoCount == 0:
		return "✅"
	default:
		return "📊"
	}
}

func columnLabel(r questions.Result) string {
	if r.Column != "" {
		return r.Column
	}
	return "Sheet"
}

// recentlyCompleted renders the last few done entries, each truncated and
// wrapped in strikethrough delimiters.
func recentlyCompleted(done []questions.Question) string {
	if len(done) == 0 {
		return "None"
	}
	start := len(done) - recentDoneCount
	if start < 0 {
		start = 0
	}
	text := ""
	for _, q := range done[start:] {
		text += "~~" + truncate(q.Text, doneTruncateAt) + "~~\n"
	}
	return text
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// todoEmbeds packs the numbered todo entries, untruncated, into embeds whose
// field value stays under the ceiling. When appending the next entry would
// overflow, the current embed is flushed and a new one opened.
func todoEmbeds(r questions.Result, color int) []Embed {
	if len(r.TodoQuestions) == 0 {
		return nil
	}

	var embeds []Embed
	text := ""
	blockCount := 1

	flush := func(name string) {
		embeds = append(embeds, Embed{
			Color:  color,
			Fields: []EmbedField{{Name: name, Value: text}},
		})
	}

	for i, q := range r.TodoQuestions {
		line := fmt.Sprintf("%d. %s\n", i+1, q.Text)
		if text != "" && len(text)+len(line) > fieldValueLimit {
			flush(fmt.Sprintf("📝 Todo Questions (%d)", blockCount))
			text = line
			blockCount++
		} else {
			text += line
		}
	}

	if text != "" {
		if blockCount > 1 {
			flush(fmt.Sprintf("📝 Todo Questions (%d)", blockCount))
		} else {
			flush(fmt.Sprintf("📝 Todo Questions (%d)", r.TodoCount))
		}
	}
	return embeds
}
