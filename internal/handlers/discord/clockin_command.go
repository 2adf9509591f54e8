package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/clockin/internal/models"
	"github.com/KirkDiggler/clockin/internal/services/attendance"
)

// ClockInCommand handles the /clockin command
type ClockInCommand struct {
	BaseCommand
	attendanceService attendance.Service
}

// NewClockInCommand creates a new clockin command handler
func NewClockInCommand(attendanceService attendance.Service) *ClockInCommand {
	return &ClockInCommand{
		BaseCommand: BaseCommand{
			Name:        "clockin",
			Description: "Start a work session",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "project",
					Description: "Project to log this session against",
				},
			},
		},
		attendanceService: attendanceService,
	}
}

// Handle processes a Discord interaction for the clockin command
func (c *ClockInCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	input := &attendance.ClockInInput{
		GuildID: i.GuildID,
		UserID:  interactionUser(i).ID,
	}

	opts := optionMap(i.ApplicationCommandData().Options)
	if opt, ok := opts["project"]; ok {
		input.ProjectID = opt.StringValue()
	}

	output, err := c.attendanceService.ClockIn(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrAlreadyClockedIn):
			return RespondWithEphemeralMessage(s, i, "You're already clocked in. Use `/clockout` first.")
		case errors.Is(err, attendance.ErrGuildNotSetUp):
			return RespondWithEphemeralMessage(s, i, "This server isn't set up yet. An admin needs to run `/setup`.")
		case errors.Is(err, attendance.ErrMemberNotFound), errors.Is(err, attendance.ErrMemberInactive):
			return RespondWithEphemeralMessage(s, i, "You're not registered for tracking. Ask an admin to run `/user add`.")
		case errors.Is(err, attendance.ErrProjectNotFound):
			return RespondWithEphemeralMessage(s, i, "That project doesn't exist. Use `/project list` to see available projects.")
		case errors.Is(err, attendance.ErrProjectArchived):
			return RespondWithEphemeralMessage(s, i, "That project has been archived.")
		case errors.Is(err, attendance.ErrNotProjectMember):
			return RespondWithEphemeralMessage(s, i, "You're not assigned to that project.")
		}
		log.Printf("Error clocking in user %s: %v", input.UserID, err)
		return RespondWithError(s, i, "Failed to clock you in. Try again.")
	}

	sess := output.Session

	description := fmt.Sprintf("⏱️ **%s** clocked in.", interactionUserName(i))
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Started",
			Value:  sess.StartTime.UTC().Format("15:04 UTC"),
			Inline: true,
		},
	}
	if sess.ProjectName != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Project",
			Value:  sess.ProjectName,
			Inline: true,
		})
	}
	if sess.RequireConfirmation {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Check-ins",
			Value:  fmt.Sprintf("every %s", sess.CheckInterval),
			Inline: true,
		})
	}

	return RespondWithEmbed(s, i, "Clocked In", description, fields)
}

// ClockOutCommand handles the /clockout command
type ClockOutCommand struct {
	BaseCommand
	attendanceService attendance.Service
}

// NewClockOutCommand creates a new clockout command handler
func NewClockOutCommand(attendanceService attendance.Service) *ClockOutCommand {
	return &ClockOutCommand{
		BaseCommand: BaseCommand{
			Name:        "clockout",
			Description: "End your current work session",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "summary",
					Description: "What you worked on",
				},
			},
		},
		attendanceService: attendanceService,
	}
}

// Handle processes a Discord interaction for the clockout command
func (c *ClockOutCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	input := &attendance.ClockOutInput{
		GuildID: i.GuildID,
		UserID:  interactionUser(i).ID,
	}

	opts := optionMap(i.ApplicationCommandData().Options)
	if opt, ok := opts["summary"]; ok {
		input.Summary = opt.StringValue()
	}

	output, err := c.attendanceService.ClockOut(ctx, input)
	if err != nil {
		if errors.Is(err, attendance.ErrNotClockedIn) {
			return RespondWithEphemeralMessage(s, i, "You're not clocked in.")
		}
		log.Printf("Error clocking out user %s: %v", input.UserID, err)
		return RespondWithError(s, i, "Failed to clock you out. Try again.")
	}

	return RespondWithEmbed(s, i, "Clocked Out",
		fmt.Sprintf("⏹️ **%s** clocked out.", interactionUserName(i)),
		renderSessionFields(output.Session, output.Duration))
}

// StatusCommand handles the /status command
type StatusCommand struct {
	BaseCommand
	attendanceService attendance.Service
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(attendanceService attendance.Service) *StatusCommand {
	return &StatusCommand{
		BaseCommand: BaseCommand{
			Name:        "status",
			Description: "Show your current work session",
		},
		attendanceService: attendanceService,
	}
}

// Handle processes a Discord interaction for the status command
func (c *StatusCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	userID := interactionUser(i).ID

	output, err := c.attendanceService.GetOpenSession(ctx, &attendance.GetOpenSessionInput{
		GuildID: i.GuildID,
		UserID:  userID,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrNotClockedIn) {
			return RespondWithEphemeralMessage(s, i, "You're not clocked in. Use `/clockin` to start a session.")
		}
		log.Printf("Error getting open session for user %s: %v", userID, err)
		return RespondWithError(s, i, "Failed to look up your session. Try again.")
	}

	sess := output.Session
	fields := renderSessionFields(sess, output.Elapsed)

	if sess.Status == models.SessionStatusAwaitingConfirmation {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Check-in",
			Value:  fmt.Sprintf("⚠️ waiting for your confirmation until %s", sess.ConfirmDeadline.UTC().Format("15:04 UTC")),
			Inline: false,
		})
	} else if sess.RequireConfirmation {
		next := sess.LastConfirmedAt.Add(sess.CheckInterval)
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Next check-in",
			Value:  next.UTC().Format("15:04 UTC"),
			Inline: false,
		})
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:  "Current Session",
					Color:  0x2ecc71,
					Fields: fields,
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

// renderSessionFields builds the embed fields shared by session replies
func renderSessionFields(sess *models.Session, elapsed time.Duration) []*discordgo.MessageEmbedField {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Started",
			Value:  sess.StartTime.UTC().Format("Jan 2 15:04 UTC"),
			Inline: true,
		},
		{
			Name:   "Duration",
			Value:  formatDuration(elapsed),
			Inline: true,
		},
	}
	if sess.ProjectName != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Project",
			Value:  sess.ProjectName,
			Inline: true,
		})
	}
	if sess.EndSummary != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Summary",
			Value:  sess.EndSummary,
			Inline: false,
		})
	}
	return fields
}
