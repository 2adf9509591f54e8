package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/clockin/internal/services/attendance"
)

// adminPermission restricts a command to members who can manage the server
var adminPermission int64 = discordgo.PermissionManageServer

// SetupCommand handles the /setup command
type SetupCommand struct {
	BaseCommand
	attendanceService attendance.Service
}

// NewSetupCommand creates a new setup command handler
func NewSetupCommand(attendanceService attendance.Service) *SetupCommand {
	return &SetupCommand{
		BaseCommand: BaseCommand{
			Name:        "setup",
			Description: "Set up attendance tracking for this server",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "check_interval",
					Description: "Minutes between liveness check-ins (default 30)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "response_timeout",
					Description: "Minutes a member has to answer a check-in (default 60)",
				},
			},
		},
		attendanceService: attendanceService,
	}
}

// GetCommand returns the application command definition
func (c *SetupCommand) GetCommand() *discordgo.ApplicationCommand {
	cmd := c.BaseCommand.GetCommand()
	cmd.DefaultMemberPermissions = &adminPermission
	return cmd
}

// Handle processes a Discord interaction for the setup command
func (c *SetupCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	input := &attendance.SetupGuildInput{
		GuildID: i.GuildID,
		Locale:  string(i.Locale),
	}

	opts := optionMap(i.ApplicationCommandData().Options)
	if opt, ok := opts["check_interval"]; ok {
		input.CheckInterval = time.Duration(opt.IntValue()) * time.Minute
	}
	if opt, ok := opts["response_timeout"]; ok {
		input.ResponseTimeout = time.Duration(opt.IntValue()) * time.Minute
	}

	output, err := c.attendanceService.SetupGuild(ctx, input)
	if err != nil {
		log.Printf("Error setting up guild %s: %v", i.GuildID, err)
		return RespondWithError(s, i, "Failed to set up this server. Try again.")
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Check-in interval",
			Value:  output.Config.CheckInterval.String(),
			Inline: true,
		},
		{
			Name:   "Response timeout",
			Value:  output.Config.ResponseTimeout.String(),
			Inline: true,
		},
	}

	return RespondWithEmbed(s, i, "Attendance Tracking Ready",
		"Members can be registered with `/user add` and start tracking with `/clockin`.", fields)
}

// UserCommand handles the /user command
type UserCommand struct {
	BaseCommand
	attendanceService attendance.Service
}

// NewUserCommand creates a new user command handler
func NewUserCommand(attendanceService attendance.Service) *UserCommand {
	return &UserCommand{
		BaseCommand: BaseCommand{
			Name:        "user",
			Description: "Manage tracked members",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Register a member for attendance tracking",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "member",
							Description: "The member to register",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Stop tracking a member (history is kept)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "member",
							Description: "The member to remove",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List tracked members",
				},
			},
		},
		attendanceService: attendanceService,
	}
}

// GetCommand returns the application command definition
func (c *UserCommand) GetCommand() *discordgo.ApplicationCommand {
	cmd := c.BaseCommand.GetCommand()
	cmd.DefaultMemberPermissions = &adminPermission
	return cmd
}

// Handle processes a Discord interaction for the user command
func (c *UserCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()

	switch data.Options[0].Name {
	case "add":
		return c.handleAdd(s, i, data.Options[0])
	case "remove":
		return c.handleRemove(s, i, data.Options[0])
	case "list":
		return c.handleList(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleAdd handles the add subcommand
func (c *UserCommand) handleAdd(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	target := optionMap(sub.Options)["member"].UserValue(s)

	output, err := c.attendanceService.AddMember(ctx, &attendance.AddMemberInput{
		GuildID:  i.GuildID,
		UserID:   target.ID,
		UserName: target.Username,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrGuildNotSetUp) {
			return RespondWithEphemeralMessage(s, i, "This server isn't set up yet. Run `/setup` first.")
		}
		log.Printf("Error adding member %s: %v", target.ID, err)
		return RespondWithError(s, i, "Failed to register that member. Try again.")
	}

	if output.Reactivated {
		return RespondWithMessage(s, i, fmt.Sprintf("**%s** is back on the roster. ✅", output.Member.UserName))
	}
	return RespondWithMessage(s, i, fmt.Sprintf("**%s** is now tracked. They can use `/clockin`.", output.Member.UserName))
}

// handleRemove handles the remove subcommand
func (c *UserCommand) handleRemove(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	target := optionMap(sub.Options)["member"].UserValue(s)

	output, err := c.attendanceService.RemoveMember(ctx, &attendance.RemoveMemberInput{
		GuildID: i.GuildID,
		UserID:  target.ID,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrMemberNotFound) {
			return RespondWithEphemeralMessage(s, i, "That member isn't tracked.")
		}
		log.Printf("Error removing member %s: %v", target.ID, err)
		return RespondWithError(s, i, "Failed to remove that member. Try again.")
	}

	message := fmt.Sprintf("**%s** is no longer tracked. Their history is kept.", output.Member.UserName)
	if output.ClosedSession != nil {
		message += fmt.Sprintf(" Their open session was closed at %s.",
			output.ClosedSession.EndTime.UTC().Format("15:04 UTC"))
	}
	return RespondWithMessage(s, i, message)
}

// handleList handles the list subcommand
func (c *UserCommand) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.attendanceService.ListMembers(ctx, &attendance.ListMembersInput{
		GuildID:    i.GuildID,
		ActiveOnly: true,
	})
	if err != nil {
		log.Printf("Error listing members for guild %s: %v", i.GuildID, err)
		return RespondWithError(s, i, "Failed to list members. Try again.")
	}

	if len(output.Members) == 0 {
		return RespondWithEphemeralMessage(s, i, "No members are tracked yet. Use `/user add` to register some.")
	}

	var description strings.Builder
	for _, m := range output.Members {
		description.WriteString(fmt.Sprintf("• **%s** (since %s)\n", m.UserName, m.JoinedAt.UTC().Format("Jan 2 2006")))
	}

	return RespondWithEmbed(s, i, fmt.Sprintf("Tracked Members (%d)", len(output.Members)),
		description.String(), nil)
}

// ProjectCommand handles the /project command
type ProjectCommand struct {
	BaseCommand
	attendanceService attendance.Service
}

// NewProjectCommand creates a new project command handler
func NewProjectCommand(attendanceService attendance.Service) *ProjectCommand {
	return &ProjectCommand{
		BaseCommand: BaseCommand{
			Name:        "project",
			Description: "Manage projects",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a new project",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Project name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "description",
							Description: "What the project is about",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "check_interval",
							Description: "Minutes between check-ins, overriding the server default",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "confirmations",
							Description: "Whether sessions on this project get liveness check-ins (default true)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "archive",
					Description: "Archive a project (history is kept)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "project",
							Description: "Project ID to archive",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "members",
					Description: "Restrict who may clock in on a project",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "project",
							Description: "Project ID",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "members",
							Description: "Member mentions or IDs; leave empty to open the project to everyone",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List projects",
				},
			},
		},
		attendanceService: attendanceService,
	}
}

// GetCommand returns the application command definition
func (c *ProjectCommand) GetCommand() *discordgo.ApplicationCommand {
	cmd := c.BaseCommand.GetCommand()
	cmd.DefaultMemberPermissions = &adminPermission
	return cmd
}

// Handle processes a Discord interaction for the project command
func (c *ProjectCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()

	switch data.Options[0].Name {
	case "create":
		return c.handleCreate(s, i, data.Options[0])
	case "archive":
		return c.handleArchive(s, i, data.Options[0])
	case "members":
		return c.handleMembers(s, i, data.Options[0])
	case "list":
		return c.handleList(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleMembers handles the members subcommand
func (c *ProjectCommand) handleMembers(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	opts := optionMap(sub.Options)

	var memberIDs []string
	if opt, ok := opts["members"]; ok {
		memberIDs = parseUserIDs(opt.StringValue())
	}

	output, err := c.attendanceService.SetProjectMembers(ctx, &attendance.SetProjectMembersInput{
		GuildID:   i.GuildID,
		ProjectID: opts["project"].StringValue(),
		MemberIDs: memberIDs,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrProjectNotFound) {
			return RespondWithEphemeralMessage(s, i, "That project doesn't exist.")
		}
		log.Printf("Error setting project members in guild %s: %v", i.GuildID, err)
		return RespondWithError(s, i, "Failed to update the project. Try again.")
	}

	if len(output.Project.MemberIDs) == 0 {
		return RespondWithMessage(s, i,
			fmt.Sprintf("Project **%s** is now open to all tracked members.", output.Project.Name))
	}
	return RespondWithMessage(s, i,
		fmt.Sprintf("Project **%s** is now restricted to %d members.",
			output.Project.Name, len(output.Project.MemberIDs)))
}

// parseUserIDs pulls user IDs out of a string of mentions or raw IDs
func parseUserIDs(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == ','
	})

	ids := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimPrefix(f, "<@")
		f = strings.TrimPrefix(f, "!")
		f = strings.TrimSuffix(f, ">")
		if f != "" {
			ids = append(ids, f)
		}
	}
	return ids
}

// handleCreate handles the create subcommand
func (c *ProjectCommand) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()
	opts := optionMap(sub.Options)

	input := &attendance.CreateProjectInput{
		GuildID:             i.GuildID,
		Name:                opts["name"].StringValue(),
		CreatedBy:           interactionUser(i).ID,
		RequireConfirmation: true,
	}
	if opt, ok := opts["description"]; ok {
		input.Description = opt.StringValue()
	}
	if opt, ok := opts["check_interval"]; ok {
		input.CheckInterval = time.Duration(opt.IntValue()) * time.Minute
	}
	if opt, ok := opts["confirmations"]; ok {
		input.RequireConfirmation = opt.BoolValue()
	}

	output, err := c.attendanceService.CreateProject(ctx, input)
	if err != nil {
		if errors.Is(err, attendance.ErrGuildNotSetUp) {
			return RespondWithEphemeralMessage(s, i, "This server isn't set up yet. Run `/setup` first.")
		}
		log.Printf("Error creating project in guild %s: %v", i.GuildID, err)
		return RespondWithError(s, i, "Failed to create the project. Try again.")
	}

	return RespondWithMessage(s, i,
		fmt.Sprintf("Project **%s** created. Members can use `/clockin project:%s`.",
			output.Project.Name, output.Project.ID))
}

// handleArchive handles the archive subcommand
func (c *ProjectCommand) handleArchive(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	output, err := c.attendanceService.ArchiveProject(ctx, &attendance.ArchiveProjectInput{
		GuildID:   i.GuildID,
		ProjectID: optionMap(sub.Options)["project"].StringValue(),
	})
	if err != nil {
		if errors.Is(err, attendance.ErrProjectNotFound) {
			return RespondWithEphemeralMessage(s, i, "That project doesn't exist.")
		}
		log.Printf("Error archiving project in guild %s: %v", i.GuildID, err)
		return RespondWithError(s, i, "Failed to archive the project. Try again.")
	}

	return RespondWithMessage(s, i,
		fmt.Sprintf("Project **%s** archived. Logged sessions are kept.", output.Project.Name))
}

// handleList handles the list subcommand
func (c *ProjectCommand) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.attendanceService.ListProjects(ctx, &attendance.ListProjectsInput{
		GuildID: i.GuildID,
	})
	if err != nil {
		log.Printf("Error listing projects for guild %s: %v", i.GuildID, err)
		return RespondWithError(s, i, "Failed to list projects. Try again.")
	}

	if len(output.Projects) == 0 {
		return RespondWithEphemeralMessage(s, i, "No projects yet. Use `/project create` to add one.")
	}

	var description strings.Builder
	for _, p := range output.Projects {
		description.WriteString(fmt.Sprintf("• **%s** — `%s`", p.Name, p.ID))
		if p.Description != "" {
			description.WriteString(fmt.Sprintf("\n  %s", p.Description))
		}
		description.WriteString("\n")
	}

	return RespondWithEmbed(s, i, fmt.Sprintf("Projects (%d)", len(output.Projects)),
		description.String(), nil)
}
