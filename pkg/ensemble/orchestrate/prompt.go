package orchestrate

import (
	"fmt"
	"strings"
)

const (
	// maxAnswerExcerpt bounds each embedded answer so prompt size stays
	// independent of upstream verbosity.
	maxAnswerExcerpt = 8000

	// historyTail is how many trailing user/assistant turns seed the
	// synthesis call.
	historyTail = 6

	// usedAsSummarizer marks a pipeline summarizer that produced no draft
	// of its own; its output lives only in the combined answer.
	usedAsSummarizer = "(used as summarizer)"
)

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

// mergePrompt builds the synthesis instruction enumerating every provider's
// answer.
func mergePrompt(query string, answers *AnswerSet) string {
	var b strings.Builder
	b.WriteString("Several AI assistants answered the same question independently. ")
	b.WriteString("Merge their answers into one final answer.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\n", query)

	for _, id := range answers.Identities() {
		text, _ := answers.Get(id)
		fmt.Fprintf(&b, "Answer from %s:\n%s\n\n",
			strings.ToUpper(string(id)), truncate(text, maxAnswerExcerpt))
	}

	b.WriteString("Prefer the points the answers agree on. Where they conflict, ")
	b.WriteString("pick the better-supported claim and briefly say why. Keep the ")
	b.WriteString("final answer under roughly 12 sentences, and include concrete ")
	b.WriteString("steps or examples when they are useful.")
	return b.String()
}

// polishPrompt builds the pipeline stage-2 instruction embedding the
// retriever's draft.
func polishPrompt(query string, draft string) string {
	var b strings.Builder
	b.WriteString("Improve the draft answer below: fix mistakes, tighten the ")
	b.WriteString("wording and keep it easy to read. Return only the improved ")
	b.WriteString("answer.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\n", query)
	fmt.Fprintf(&b, "Draft answer:\n%s", truncate(draft, maxAnswerExcerpt))
	return b.String()
}
