package domain

import "context"

// Alerter reacts to a finished countdown. Implementations can play a sound,
// print a line, ring the terminal bell, or do nothing at all.
//
// Alerters run outside the engine. A failing alerter must never influence
// timer state: by the time Alert is called the countdown has already reset.
type Alerter interface {
	Alert(ctx context.Context, c Completion) error
}

// AlertDispatcher hands a completion to every alerter without blocking the
// host loop. Wait blocks until alerts already fired have returned.
type AlertDispatcher interface {
	Fire(ctx context.Context, c Completion)
	Wait()
}

// CompletionLog keeps the completions of the current process. Nothing is
// written to disk.
type CompletionLog interface {
	Alerter
	List(ctx context.Context) ([]Completion, error)
}
