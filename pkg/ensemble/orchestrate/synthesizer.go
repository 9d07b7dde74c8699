package orchestrate

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/triadhq/triad/pkg/ensemble/chat"
	"github.com/triadhq/triad/pkg/ensemble/provider"
)

// synthesize merges the collected answers into one combined answer by
// invoking a single provider with the merge prompt, seeded with a short
// tail of the conversation for continuity. Any failure degrades to the
// deterministic concatenation fallback, so the combined answer is never
// empty as long as one provider produced text.
func (o *Orchestrator) synthesize(ctx context.Context, query string, history []chat.Message, answers *AnswerSet, choice string) string {
	id := o.registry.Default()
	if parsed, ok := provider.Parse(choice); ok {
		id = parsed
	}

	messages := make([]chat.Message, 0, historyTail+1)
	messages = append(messages, chat.Tail(history, historyTail)...)
	messages = append(messages, chat.Message{
		Role:    chat.RoleUser,
		Content: mergePrompt(query, answers),
	})

	if p, ok := o.registry.Get(id); ok {
		res := p.Ask(ctx, messages, "")
		if !res.Failed() && strings.TrimSpace(res.Content) != "" {
			return res.Content
		}
		o.log.WithFields(logrus.Fields{
			"summarizer": id,
			"error":      res.Error,
		}).Warn("synthesis call failed, falling back to concatenation")
	}

	return answers.Concatenate()
}
