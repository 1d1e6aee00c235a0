package discord

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sheetwatch/sheetwatch-cli/questions"
)

func successResult(done, todo []questions.Question) questions.Result {
	all := append(append([]questions.Question{}, done...), todo...)
	return questions.Result{
		Status:          questions.StatusSuccess,
		Timestamp:       "2026-08-23T10:00:00Z",
		Column:          "Group4",
		TotalQuestions:  len(all),
		DoneCount:       len(done),
		TodoCount:       len(todo),
		HasNewQuestions: len(todo) > 0,
		DoneQuestions:   done,
		TodoQuestions:   todo,
		AllQuestions:    all,
	}
}

func q(text string) questions.Question {
	return questions.Question{Text: text}
}

func TestCompose_Colors(t *testing.T) {
	tests := []struct {
		name   string
		result questions.Result
		want   int
	}{
		{"error", questions.ErrorResult("boom"), ColorError},
		{"new questions", successResult(nil, []questions.Question{q("open")}), ColorNew},
		{"all done", successResult([]questions.Question{q("done")}, nil), ColorAllDone},
	}
	for _, tt := range tests {
		msg := Compose(tt.result)
		if len(msg.Embeds) == 0 {
			t.Fatalf("%s: no embeds", tt.name)
		}
		if got := msg.Embeds[0].Color; got != tt.want {
			t.Errorf("%s: color = 0x%06X, want 0x%06X", tt.name, got, tt.want)
		}
	}
}

func TestCompose_ErrorResultIsSingleEmbed(t *testing.T) {
	msg := Compose(questions.ErrorResult("no header containing \"Group4\" found"))

	if len(msg.Embeds) != 1 {
		t.Fatalf("expected a single embed, got %d", len(msg.Embeds))
	}
	e := msg.Embeds[0]
	if e.Description != "❌ **Error occurred**" {
		t.Fatalf("unexpected description: %q", e.Description)
	}
	if len(e.Fields) != 1 || e.Fields[0].Name != "Error Message" {
		t.Fatalf("expected only the error field, got %+v", e.Fields)
	}
	if !strings.Contains(e.Fields[0].Value, "Group4") {
		t.Fatalf("error field should carry the message, got %q", e.Fields[0].Value)
	}
	if msg.Content != "" {
		t.Fatalf("error message must not mention anyone, got %q", msg.Content)
	}
}

func TestCompose_SummaryAndAlert(t *testing.T) {
	todo := []questions.Question{q("a"), q("b")}
	msg := Compose(successResult(nil, todo))

	main := msg.Embeds[0]
	if !strings.HasPrefix(main.Description, "🆕") {
		t.Fatalf("expected new-questions emoji, got %q", main.Description)
	}
	if main.Fields[0].Name != "🚨 Alert" {
		t.Fatalf("alert field must come first, got %q", main.Fields[0].Name)
	}
	if !strings.Contains(main.Fields[0].Value, "2 question(s)") {
		t.Fatalf("alert should carry the todo count, got %q", main.Fields[0].Value)
	}
	if main.Fields[1].Name != "📊 Summary" || !main.Fields[1].Inline {
		t.Fatalf("expected inline summary second, got %+v", main.Fields[1])
	}
	if !strings.Contains(main.Fields[1].Value, "**Total Questions:** 2") {
		t.Fatalf("unexpected summary: %q", main.Fields[1].Value)
	}

	// Only 2 todos: no @here mention.
	if msg.Content != "" {
		t.Fatalf("expected no mention for small todo lists, got %q", msg.Content)
	}
}

func TestCompose_MentionWhenManyTodos(t *testing.T) {
	todo := []questions.Question{q("a"), q("b"), q("c"), q("d")}
	msg := Compose(successResult(nil, todo))
	if msg.Content != "@here Multiple questions need attention!" {
		t.Fatalf("expected urgent mention, got %q", msg.Content)
	}
}

func TestCompose_NoAlertWhenAllDone(t *testing.T) {
	msg := Compose(successResult([]questions.Question{q("done")}, nil))
	main := msg.Embeds[0]
	if !strings.HasPrefix(main.Description, "✅") {
		t.Fatalf("expected all-done emoji, got %q", main.Description)
	}
	for _, f := range main.Fields {
		if f.Name == "🚨 Alert" {
			t.Fatal("no alert field expected when nothing is todo")
		}
	}
	if len(msg.Embeds) != 1 {
		t.Fatalf("expected no todo embeds, got %d embeds", len(msg.Embeds))
	}
}

func TestCompose_RecentlyCompletedTruncation(t *testing.T) {
	long := strings.Repeat("x", 75)
	short := strings.Repeat("y", 40)
	msg := Compose(successResult([]questions.Question{q(long), q(short)}, nil))

	var value string
	for _, f := range msg.Embeds[0].Fields {
		if f.Name == "✅ Recently Completed" {
			value = f.Value
		}
	}
	if value == "" {
		t.Fatal("recently completed field missing")
	}
	wantLong := "~~" + strings.Repeat("x", 60) + "...~~"
	if !strings.Contains(value, wantLong) {
		t.Fatalf("75-char entry should be truncated to 60 plus ellipsis:\n%q", value)
	}
	if !strings.Contains(value, "~~"+short+"~~") {
		t.Fatalf("40-char entry should be unmodified:\n%q", value)
	}
}

func TestCompose_RecentlyCompletedLastThreeAndPlaceholder(t *testing.T) {
	done := []questions.Question{q("one"), q("two"), q("three"), q("four")}
	msg := Compose(successResult(done, nil))

	var value string
	for _, f := range msg.Embeds[0].Fields {
		if f.Name == "✅ Recently Completed" {
			value = f.Value
		}
	}
	if strings.Contains(value, "~~one~~") {
		t.Fatalf("only the last 3 done entries should appear:\n%q", value)
	}
	for _, want := range []string{"~~two~~", "~~three~~", "~~four~~"} {
		if !strings.Contains(value, want) {
			t.Fatalf("missing %q in:\n%q", want, value)
		}
	}

	// No done entries: placeholder.
	msg = Compose(successResult(nil, []questions.Question{q("open")}))
	for _, f := range msg.Embeds[0].Fields {
		if f.Name == "✅ Recently Completed" && f.Value != "None" {
			t.Fatalf("expected placeholder, got %q", f.Value)
		}
	}
}

func TestCompose_TodoBlockPacking(t *testing.T) {
	// 50 entries of ~37 chars each: the numbered text overflows the
	// 1000-char ceiling partway through, forcing multiple blocks.
	var todo []questions.Question
	for i := 0; i < 50; i++ {
		todo = append(todo, q(fmt.Sprintf("question number %02d padded out a bit", i)))
	}
	msg := Compose(successResult(nil, todo))

	if len(msg.Embeds) < 3 {
		t.Fatalf("expected main embed plus multiple todo embeds, got %d", len(msg.Embeds))
	}

	var lines []string
	blocks := 0
	for _, e := range msg.Embeds[1:] {
		blocks++
		if len(e.Fields) != 1 {
			t.Fatalf("todo embed should have exactly one field, got %d", len(e.Fields))
		}
		f := e.Fields[0]
		if !strings.HasPrefix(f.Name, "📝 Todo Questions (") {
			t.Fatalf("unexpected todo field name: %q", f.Name)
		}
		if len(f.Value) > 1000 {
			t.Fatalf("todo field exceeds 1000 chars: %d", len(f.Value))
		}
		lines = append(lines, strings.Split(strings.TrimRight(f.Value, "\n"), "\n")...)
	}

	if len(lines) != 50 {
		t.Fatalf("expected all 50 entries across blocks, got %d", len(lines))
	}
	for i, line := range lines {
		want := fmt.Sprintf("%d. question number %02d padded out a bit", i+1, i)
		if line != want {
			t.Fatalf("entry %d out of order or altered:\ngot  %q\nwant %q", i+1, line, want)
		}
	}

	// Last block is titled with the running block counter when >1 blocks.
	last := msg.Embeds[len(msg.Embeds)-1].Fields[0]
	if last.Name != fmt.Sprintf("📝 Todo Questions (%d)", blocks) {
		t.Fatalf("last block title should use the block counter, got %q", last.Name)
	}
}

func TestCompose_SingleTodoBlockTitledWithCount(t *testing.T) {
	todo := []questions.Question{q("alpha"), q("beta")}
	msg := Compose(successResult(nil, todo))

	if len(msg.Embeds) != 2 {
		t.Fatalf("expected main embed plus one todo embed, got %d", len(msg.Embeds))
	}
	f := msg.Embeds[1].Fields[0]
	if f.Name != "📝 Todo Questions (2)" {
		t.Fatalf("single block should be titled with the todo count, got %q", f.Name)
	}
	if f.Value != "1. alpha\n2. beta\n" {
		t.Fatalf("unexpected todo text: %q", f.Value)
	}
}
