package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"staff-scheduler-api/config"
	"staff-scheduler-api/store"
	"staff-scheduler-api/utils"
)

// NotifyDayChanged emails the configured recipients a summary of a day's
// assignments after an edit. Notification is best-effort: it runs after the
// mutation has committed, and failures are logged, never returned to the
// API caller. No-op unless NOTIFY_TO and SMTP are configured.
func NotifyDayChanged(ctx context.Context, s *store.Store, date time.Time) {
	recipients := splitRecipients(os.Getenv("NOTIFY_TO"))
	if len(recipients) == 0 || os.Getenv("SMTP_HOST") == "" {
		return
	}

	day := utils.DateOnly(date)
	rows, err := s.Schedules.ListByDate(ctx, day)
	if err != nil {
		log.Printf("notify: failed to load schedules for %s: %v", utils.FormatDate(day), err)
		return
	}
	staff, err := s.Staff.List(ctx)
	if err != nil {
		log.Printf("notify: failed to load staff: %v", err)
		return
	}
	projects, err := s.Projects.List(ctx)
	if err != nil {
		log.Printf("notify: failed to load projects: %v", err)
		return
	}

	names := make(map[int]string, len(staff))
	for _, member := range staff {
		names[member.StaffID] = member.Name
	}
	projectNames := make(map[int]string, len(projects))
	for _, project := range projects {
		projectNames[project.ProjectID] = project.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<p>Schedule for %s now has %d assignment(s):</p><ul>", utils.FormatDate(day), len(rows))
	for _, row := range rows {
		name := names[row.StaffID]
		if name == "" {
			name = fmt.Sprintf("staff #%d", row.StaffID)
		}
		project := projectNames[row.ProjectID]
		if project == "" {
			project = "no project"
		}
		fmt.Fprintf(&b, "<li>%s: %s</li>", name, project)
	}
	b.WriteString("</ul>")

	subject := fmt.Sprintf("Schedule updated for %s", utils.FormatDate(day))
	if err := config.SendMail(recipients, subject, b.String()); err != nil {
		log.Printf("notify: failed to send schedule email: %v", err)
	}
}

func splitRecipients(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if addr := strings.TrimSpace(part); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
