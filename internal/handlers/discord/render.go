package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/clockin/internal/services/report"
)

// maxReportEntries caps how many sessions a log embed lists before
// pointing at /export
const maxReportEntries = 15

// formatDuration renders a duration for embed fields
func formatDuration(d time.Duration) string {
	return report.FormatDuration(d)
}

// renderReportFields builds the totals fields shared by report replies
func renderReportFields(r *report.Report) []*discordgo.MessageEmbedField {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Total",
			Value:  formatDuration(r.Total),
			Inline: true,
		},
		{
			Name:   "Sessions",
			Value:  fmt.Sprintf("%d", len(r.Entries)),
			Inline: true,
		},
	}

	if len(r.ProjectTotals) > 0 {
		var b strings.Builder
		for _, pt := range r.ProjectTotals {
			b.WriteString(fmt.Sprintf("**%s** — %s (%d sessions)\n",
				pt.ProjectName, formatDuration(pt.Total), pt.Sessions))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "By project",
			Value:  b.String(),
			Inline: false,
		})
	}

	if len(r.DayTotals) > 1 {
		var b strings.Builder
		for _, dt := range r.DayTotals {
			b.WriteString(fmt.Sprintf("`%s` — %s (%d sessions)\n",
				dt.Day.Format("Jan 02"), formatDuration(dt.Total), dt.Sessions))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "By day",
			Value:  b.String(),
			Inline: false,
		})
	}

	if len(r.UserTotals) > 1 {
		var b strings.Builder
		for _, ut := range r.UserTotals {
			b.WriteString(fmt.Sprintf("<@%s> — %s (%d sessions)\n",
				ut.UserID, formatDuration(ut.Total), ut.Sessions))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "By member",
			Value:  b.String(),
			Inline: false,
		})
	}

	return fields
}

// renderReportEntries builds the per-session log listing
func renderReportEntries(r *report.Report) string {
	if len(r.Entries) == 0 {
		return "No sessions in this period."
	}

	entries := r.Entries
	truncated := false
	if len(entries) > maxReportEntries {
		entries = entries[len(entries)-maxReportEntries:]
		truncated = true
	}

	var b strings.Builder
	for _, e := range entries {
		sess := e.Session
		b.WriteString(fmt.Sprintf("`%s` <@%s>", sess.StartTime.UTC().Format("Jan 02 15:04"), sess.UserID))
		if sess.ProjectName != "" {
			b.WriteString(fmt.Sprintf(" · %s", sess.ProjectName))
		}
		b.WriteString(fmt.Sprintf(" · %s", formatDuration(e.Duration)))
		if e.Provisional {
			b.WriteString(" _(open)_")
		}
		if sess.EndSummary != "" {
			b.WriteString(fmt.Sprintf("\n  %s", sess.EndSummary))
		}
		b.WriteString("\n")
	}
	if truncated {
		b.WriteString(fmt.Sprintf("…and %d more. Use `/export` for the full log.\n", len(r.Entries)-maxReportEntries))
	}
	return b.String()
}
