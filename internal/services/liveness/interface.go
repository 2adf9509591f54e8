package liveness

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/clockin/internal/services/liveness Notifier

// Notifier delivers liveness messages to users. The Discord handler
// implements it; tests swap in a mock.
type Notifier interface {
	// Prompt asks a user to confirm they are still working
	Prompt(ctx context.Context, input *PromptInput) (*PromptOutput, error)

	// NotifyAutoClose tells a user their session was closed for them
	NotifyAutoClose(ctx context.Context, input *NotifyAutoCloseInput) error
}
