package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/clockin/internal/services/liveness"
	"github.com/KirkDiggler/clockin/internal/services/report"
)

// Notifier delivers liveness prompts and auto-close notices over DM
type Notifier struct {
	session *discordgo.Session
}

// Prompt DMs the user a check-in with confirm and clock-out buttons
func (n *Notifier) Prompt(ctx context.Context, input *liveness.PromptInput) (*liveness.PromptOutput, error) {
	sess := input.Session

	channel, err := n.session.UserChannelCreate(sess.UserID)
	if err != nil {
		log.Printf("Failed to open DM channel for user %s: %v", sess.UserID, err)
		return &liveness.PromptOutput{Delivered: false}, nil
	}

	description := fmt.Sprintf("You've been clocked in for **%s**.", report.FormatDuration(sess.Duration(sess.PromptedAt)))
	if sess.ProjectName != "" {
		description += fmt.Sprintf(" Project: **%s**.", sess.ProjectName)
	}
	description += fmt.Sprintf("\nStill working? Answer before **%s** or the session closes automatically.",
		input.Deadline.UTC().Format("15:04 UTC"))

	_, err = n.session.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "⏰ Check-in",
				Description: description,
				Color:       0xf1c40f,
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Still working",
						Style:    discordgo.SuccessButton,
						CustomID: ButtonPrefixConfirm + sess.ID,
					},
					discordgo.Button{
						Label:    "Clock out",
						Style:    discordgo.SecondaryButton,
						CustomID: ButtonPrefixClockOut + sess.ID,
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("Failed to deliver check-in to user %s: %v", sess.UserID, err)
		return &liveness.PromptOutput{Delivered: false}, nil
	}

	return &liveness.PromptOutput{Delivered: true}, nil
}

// NotifyAutoClose DMs the user that their session was closed for them
func (n *Notifier) NotifyAutoClose(ctx context.Context, input *liveness.NotifyAutoCloseInput) error {
	sess := input.Session

	channel, err := n.session.UserChannelCreate(sess.UserID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel for user %s: %w", sess.UserID, err)
	}

	_, err = n.session.ChannelMessageSendEmbed(channel.ID, &discordgo.MessageEmbed{
		Title: "Session closed",
		Description: fmt.Sprintf("No answer to the last check-in, so your session was closed at %s. Recorded: **%s**.",
			sess.EndTime.UTC().Format("15:04 UTC"),
			report.FormatDuration(sess.Duration(sess.EndTime))),
		Color: 0xe67e22,
	})
	if err != nil {
		return fmt.Errorf("failed to send auto-close notice to user %s: %w", sess.UserID, err)
	}

	return nil
}
