package orchestrate

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/triadhq/triad/pkg/ensemble/chat"
	"github.com/triadhq/triad/pkg/ensemble/provider"
)

// Request describes one orchestration run.
type Request struct {
	// Query is the new user question. The HTTP layer rejects blank queries
	// before a run starts.
	Query string

	// History is the prior conversation, oldest first.
	History []chat.Message

	// Enabled selects providers by name, case-insensitively. Empty selects
	// the full enumeration.
	Enabled []string

	// Retriever names the pipeline stage-1 provider. Empty defaults to the
	// first enabled provider.
	Retriever string

	// Summarizer names the synthesis provider. Empty defaults to the
	// registry default.
	Summarizer string
}

// Orchestrator runs the two execution strategies against a provider
// registry. Runs are stateless and independent; the orchestrator holds no
// per-run state.
type Orchestrator struct {
	registry *provider.Registry
	log      *logrus.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the structured logger.
func WithLogger(log *logrus.Logger) Option {
	return func(o *Orchestrator) {
		o.log = log
	}
}

// New creates an orchestrator over the given registry.
func New(registry *provider.Registry, options ...Option) *Orchestrator {
	o := &Orchestrator{
		registry: registry,
		log:      logrus.New(),
	}
	for _, option := range options {
		option(o)
	}
	return o
}

// RunParallel fans the query out to every selected provider concurrently,
// waits for all of them to settle, and synthesizes a combined answer.
// There is no per-provider timeout and no early cancellation: the run
// completes when every provider has succeeded or failed.
func (o *Orchestrator) RunParallel(ctx context.Context, req Request) *Result {
	selected := provider.Resolve(req.Enabled)

	// One shared message sequence so every provider sees identical context.
	messages := chat.BuildMessages(req.History, req.Query)

	texts := make([]string, len(selected))
	var wg sync.WaitGroup
	wg.Add(len(selected))
	for i, id := range selected {
		go func(i int, id provider.Identity) {
			defer wg.Done()
			texts[i] = o.ask(ctx, id, messages, "")
		}(i, id)
	}
	wg.Wait()

	answers := NewAnswerSet()
	for i, id := range selected {
		answers.Add(id, texts[i])
	}

	combined := o.synthesize(ctx, req.Query, req.History, answers, req.Summarizer)
	return &Result{Answers: answers, Combined: combined}
}

// RunPipeline chains two sequential stages: a retriever drafts an answer,
// then a summarizer polishes it. The second call cannot start before the
// first settles because its prompt embeds the draft.
func (o *Orchestrator) RunPipeline(ctx context.Context, req Request) *Result {
	selected := provider.Resolve(req.Enabled)

	retriever := provider.Enumeration[0]
	if len(selected) > 0 {
		retriever = selected[0]
	}
	if id, ok := provider.Parse(req.Retriever); ok {
		retriever = id
	}

	summarizer := o.registry.Default()
	if id, ok := provider.Parse(req.Summarizer); ok {
		summarizer = id
	}

	draft := o.ask(ctx, retriever, chat.BuildMessages(req.History, req.Query), "")

	answers := NewAnswerSet()
	answers.Add(retriever, draft)
	if summarizer != retriever {
		// The summarizer's own output lives only in the combined answer.
		answers.Add(summarizer, usedAsSummarizer)
	}

	combined := draft
	if p, ok := o.registry.Get(summarizer); ok {
		res := p.Ask(ctx, chat.BuildMessages(nil, polishPrompt(req.Query, draft)), "")
		if res.Failed() || res.Content == "" {
			o.log.WithFields(logrus.Fields{
				"summarizer": summarizer,
				"error":      res.Error,
			}).Warn("polish call failed, returning retriever draft")
		} else {
			combined = res.Content
		}
	}

	return &Result{Answers: answers, Combined: combined}
}

// ask invokes one adapter and returns its content-or-error text.
func (o *Orchestrator) ask(ctx context.Context, id provider.Identity, messages []chat.Message, modelOverride string) string {
	p, ok := o.registry.Get(id)
	if !ok {
		return string(id) + " is not registered"
	}

	start := time.Now()
	res := p.Ask(ctx, messages, modelOverride)
	o.log.WithFields(logrus.Fields{
		"provider": id,
		"failed":   res.Failed(),
		"elapsed":  time.Since(start),
	}).Debug("provider call settled")

	return res.Text()
}
