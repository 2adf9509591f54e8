package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/clockin/internal/common/clock"
	"github.com/KirkDiggler/clockin/internal/services/attendance"
	"github.com/KirkDiggler/clockin/internal/services/report"
)

// Component custom ID prefixes; the session ID rides after the colon
const (
	ButtonPrefixConfirm  = "confirm:"
	ButtonPrefixClockOut = "clockout:"
)

// Bot represents the Discord bot instance
type Bot struct {
	session           *discordgo.Session
	commands          map[string]CommandHandler
	commandIDs        map[string]string // Maps command name to command ID
	attendanceService attendance.Service
	reportService     report.Service
	clock             clock.Clock
	config            *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Attendance service
	AttendanceService attendance.Service

	// Report service
	ReportService report.Service

	// Clock provides the current time for report windows
	Clock clock.Clock
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.AttendanceService == nil {
		return nil, errors.New("attendance service cannot be nil")
	}

	if cfg.ReportService == nil {
		return nil, errors.New("report service cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:           session,
		commands:          make(map[string]CommandHandler),
		commandIDs:        make(map[string]string),
		attendanceService: cfg.AttendanceService,
		reportService:     cfg.ReportService,
		clock:             cfg.Clock,
		config:            cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	// Clean up guild state when the bot is removed from a server
	session.AddHandler(bot.handleGuildDelete)

	return bot, nil
}

// handleGuildDelete deprovisions a guild the bot was removed from. Open
// sessions are closed and kept as history.
func (b *Bot) handleGuildDelete(s *discordgo.Session, e *discordgo.GuildDelete) {
	// An unavailable guild is a Discord outage, not a removal
	if e.Unavailable {
		return
	}

	output, err := b.attendanceService.DeprovisionGuild(context.Background(), &attendance.DeprovisionGuildInput{
		GuildID: e.ID,
	})
	if err != nil {
		log.Printf("Failed to deprovision guild %s: %v", e.ID, err)
		return
	}

	log.Printf("Deprovisioned guild %s (%d open sessions closed)", e.ID, output.ClosedSessions)
}

// Notifier returns a liveness notifier backed by this bot's session
func (b *Bot) Notifier() *Notifier {
	return &Notifier{session: b.session}
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		NewSetupCommand(b.attendanceService),
		NewClockInCommand(b.attendanceService),
		NewClockOutCommand(b.attendanceService),
		NewStatusCommand(b.attendanceService),
		NewUserCommand(b.attendanceService),
		NewProjectCommand(b.attendanceService),
		NewTodayCommand(b.reportService),
		NewLogCommand(b.reportService, b.clock),
		NewExportCommand(b.reportService, b.clock),
	}

	for _, cmd := range handlers {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), b.config.GuildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons and other components
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// handleComponentInteraction handles button clicks. Buttons arrive from
// DMs as well as guild channels, so the session ID is carried in the
// custom ID rather than read from the channel.
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, ButtonPrefixConfirm):
		return b.handleConfirmButton(s, i, strings.TrimPrefix(customID, ButtonPrefixConfirm))
	case strings.HasPrefix(customID, ButtonPrefixClockOut):
		return b.handleClockOutButton(s, i, strings.TrimPrefix(customID, ButtonPrefixClockOut))
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// handleConfirmButton records a liveness confirmation
func (b *Bot) handleConfirmButton(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) error {
	ctx := context.Background()

	output, err := b.attendanceService.Confirm(ctx, &attendance.ConfirmInput{
		SessionID: sessionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrConfirmationExpired):
			return RespondWithEphemeralMessage(s, i,
				"Too late — that check-in expired and your session was closed. Use `/clockin` to start a new one.")
		case errors.Is(err, attendance.ErrSessionNotFound), errors.Is(err, attendance.ErrInvalidSessionState):
			return RespondWithEphemeralMessage(s, i, "That session is no longer active.")
		}
		log.Printf("Error confirming session %s: %v", sessionID, err)
		return RespondWithError(s, i, "Failed to record your confirmation. Try again.")
	}

	next := output.Session.LastConfirmedAt.Add(output.Session.CheckInterval)
	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("👍 Still clocked in. Next check-in around %s.", next.UTC().Format("15:04 UTC")))
}

// handleClockOutButton closes the session behind a prompt's clock-out button
func (b *Bot) handleClockOutButton(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) error {
	ctx := context.Background()

	// Resolve the session to find its guild; the button may have been
	// clicked in a DM where the interaction has no guild ID
	resolved, err := b.attendanceService.GetSession(ctx, &attendance.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrSessionNotFound) {
			return RespondWithEphemeralMessage(s, i, "That session is no longer active.")
		}
		log.Printf("Error resolving session %s: %v", sessionID, err)
		return RespondWithError(s, i, "Failed to clock you out. Try again.")
	}

	sess := resolved.Session
	if sess.UserID != interactionUser(i).ID {
		return RespondWithEphemeralMessage(s, i, "That button belongs to someone else's session.")
	}
	if !sess.IsOpen() {
		return RespondWithEphemeralMessage(s, i, "That session is no longer active.")
	}

	output, err := b.attendanceService.ClockOut(ctx, &attendance.ClockOutInput{
		GuildID: sess.GuildID,
		UserID:  sess.UserID,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrNotClockedIn) {
			return RespondWithEphemeralMessage(s, i, "You're not clocked in.")
		}
		log.Printf("Error clocking out session %s: %v", sessionID, err)
		return RespondWithError(s, i, "Failed to clock you out. Try again.")
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("⏹️ Clocked out. You worked %s.", report.FormatDuration(output.Duration)))
}
