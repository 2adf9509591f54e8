package discord

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/clockin/internal/common/clock"
	"github.com/KirkDiggler/clockin/internal/services/report"
)

// defaultLogDays is the report window when no days option is given
const defaultLogDays = 7

// TodayCommand handles the /today command
type TodayCommand struct {
	BaseCommand
	reportService report.Service
}

// NewTodayCommand creates a new today command handler
func NewTodayCommand(reportService report.Service) *TodayCommand {
	return &TodayCommand{
		BaseCommand: BaseCommand{
			Name:        "today",
			Description: "Show time worked today",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "member",
					Description: "Show one member instead of the whole server",
				},
			},
		},
		reportService: reportService,
	}
}

// Handle processes a Discord interaction for the today command
func (c *TodayCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	input := &report.TodayInput{
		GuildID: i.GuildID,
	}
	if opt, ok := optionMap(i.ApplicationCommandData().Options)["member"]; ok {
		input.UserID = opt.UserValue(s).ID
	}

	output, err := c.reportService.Today(ctx, input)
	if err != nil {
		log.Printf("Error building today report for guild %s: %v", i.GuildID, err)
		return RespondWithError(s, i, "Failed to build the report. Try again.")
	}

	r := output.Report
	if len(r.Entries) == 0 {
		return RespondWithEphemeralMessage(s, i, "No time logged today yet.")
	}

	return RespondWithEmbed(s, i,
		fmt.Sprintf("Today — %s", r.From.UTC().Format("Jan 2 2006")),
		"", renderReportFields(r))
}

// LogCommand handles the /log command
type LogCommand struct {
	BaseCommand
	reportService report.Service
	clock         clock.Clock
}

// NewLogCommand creates a new log command handler
func NewLogCommand(reportService report.Service, clk clock.Clock) *LogCommand {
	return &LogCommand{
		BaseCommand: BaseCommand{
			Name:        "log",
			Description: "Show recent work sessions",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "days",
					Description: "How many days back to look (default 7)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "member",
					Description: "Show one member instead of the whole server",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "project",
					Description: "Show one project only",
				},
			},
		},
		reportService: reportService,
		clock:         clk,
	}
}

// Handle processes a Discord interaction for the log command
func (c *LogCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	input, days := buildReportInput(s, i, c.clock.Now())

	output, err := c.reportService.BuildReport(ctx, input)
	if err != nil {
		log.Printf("Error building log report for guild %s: %v", i.GuildID, err)
		return RespondWithError(s, i, "Failed to build the report. Try again.")
	}

	r := output.Report
	fields := renderReportFields(r)

	return RespondWithEmbed(s, i,
		fmt.Sprintf("Work Log — last %d days", days),
		renderReportEntries(r), fields)
}

// ExportCommand handles the /export command
type ExportCommand struct {
	BaseCommand
	reportService report.Service
	clock         clock.Clock
}

// NewExportCommand creates a new export command handler
func NewExportCommand(reportService report.Service, clk clock.Clock) *ExportCommand {
	return &ExportCommand{
		BaseCommand: BaseCommand{
			Name:        "export",
			Description: "Export work sessions as CSV",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "days",
					Description: "How many days back to export (default 7)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "member",
					Description: "Export one member instead of the whole server",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "project",
					Description: "Export one project only",
				},
			},
		},
		reportService: reportService,
		clock:         clk,
	}
}

// Handle processes a Discord interaction for the export command
func (c *ExportCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	input, days := buildReportInput(s, i, c.clock.Now())

	output, err := c.reportService.BuildReport(ctx, input)
	if err != nil {
		log.Printf("Error building export report for guild %s: %v", i.GuildID, err)
		return RespondWithError(s, i, "Failed to build the export. Try again.")
	}

	r := output.Report
	if len(r.Entries) == 0 {
		return RespondWithEphemeralMessage(s, i, "No sessions in that period.")
	}

	var buf bytes.Buffer
	if err := c.reportService.WriteCSV(&buf, r); err != nil {
		log.Printf("Error writing CSV for guild %s: %v", i.GuildID, err)
		return RespondWithError(s, i, "Failed to build the export. Try again.")
	}

	fileName := fmt.Sprintf("attendance-%s.csv", r.GeneratedAt.UTC().Format("2006-01-02"))
	message := fmt.Sprintf("📄 %d sessions from the last %d days, %s total.",
		len(r.Entries), days, report.FormatDuration(r.Total))

	return RespondWithFile(s, i, message, fileName, &buf)
}

// buildReportInput reads the shared days/member/project options
func buildReportInput(s *discordgo.Session, i *discordgo.InteractionCreate, now time.Time) (*report.BuildReportInput, int) {
	opts := optionMap(i.ApplicationCommandData().Options)

	days := defaultLogDays
	if opt, ok := opts["days"]; ok && opt.IntValue() > 0 {
		days = int(opt.IntValue())
	}

	input := &report.BuildReportInput{
		GuildID: i.GuildID,
		From:    now.UTC().AddDate(0, 0, -days),
	}
	if opt, ok := opts["member"]; ok {
		input.UserID = opt.UserValue(s).ID
	}
	if opt, ok := opts["project"]; ok {
		input.ProjectID = opt.StringValue()
	}

	return input, days
}
