package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/acmchapter/chapterdesk/internal/client/api"
	"github.com/acmchapter/chapterdesk/internal/client/forms"
	"github.com/acmchapter/chapterdesk/internal/client/models"
)

// timeNow is a seam for the default meeting date.
var timeNow = time.Now

func (a *App) newAttendanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Record and review meeting attendance",
	}
	cmd.AddCommand(
		a.newAttendanceMarkCmd(),
		a.newAttendanceHistoryCmd(),
		a.newAttendanceShowCmd(),
		a.newAttendanceEditCmd(),
		a.newMeetingEditCmd(),
		a.newMeetingDeleteCmd(),
		a.newMeetingPDFCmd(),
	)
	a.guard(cmd)
	return cmd
}

// newAttendanceMarkCmd records a meeting with a full roll call. Marks come
// from --mark user=status, then --all for everyone left, then an interactive
// prompt per remaining member.
func (a *App) newAttendanceMarkCmd() *cobra.Command {
	var (
		m          forms.Meeting
		start, end string
		marks      []string
		all        string
	)

	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Record a meeting and mark attendance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if m.Date == "" {
				m.Date = timeNow().Format("2006-01-02")
			}
			m.StartClock, m.StartPeriod = splitClock(start)
			m.EndClock, m.EndPeriod = splitClock(end)

			students, err := a.api.ListStudents(ctx)
			if err != nil {
				return err
			}
			if len(students) == 0 {
				return fmt.Errorf("no members to mark")
			}

			m.Attendance, err = parseMarks(marks)
			if err != nil {
				return err
			}
			if err := a.rollCall(students, m.Attendance, all); err != nil {
				return err
			}

			a.out.AttendanceChart(m.Stats())
			if err := m.Validate(); err != nil {
				return err
			}

			if err := a.api.CreateMeeting(ctx, m.Payload()); err != nil {
				return err
			}
			a.out.Success("Attendance recorded.")
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&m.Date, "date", "", "meeting date YYYY-MM-DD (default today)")
	fl.StringVar(&start, "start", "", `start time, e.g. "2:00 PM"`)
	fl.StringVar(&end, "end", "", `end time, e.g. "3:30 PM"`)
	fl.StringVar(&m.Venue, "venue", "", "venue")
	fl.StringVar(&m.Agenda, "agenda", "", "agenda")
	fl.StringVar(&m.Highlights, "highlights", "", "highlights")
	fl.StringArrayVar(&marks, "mark", nil, "user=STATUS, repeatable (P/A/L or full name)")
	fl.StringVar(&all, "all", "", "status for every member not marked otherwise")
	return cmd
}

// rollCall fills marks for every student. Students already marked are kept.
func (a *App) rollCall(students []models.Student, marks map[int]models.AttendanceStatus, all string) error {
	var fallback models.AttendanceStatus
	if all != "" {
		st, ok := models.ParseAttendanceStatus(all)
		if !ok {
			return forms.ValidationErrors{fmt.Sprintf("unknown status %q", all)}
		}
		fallback = st
	}

	for _, s := range students {
		if _, done := marks[s.User.ID]; done {
			continue
		}
		if fallback != "" {
			marks[s.User.ID] = fallback
			continue
		}
		ans, err := getSimpleText(a.reader, fmt.Sprintf("%s (%s) [P/A/L]", s.User.FullName(), s.RollNo), a.out.Writer())
		if err != nil {
			return err
		}
		st, _ := models.ParseAttendanceStatus(ans)
		marks[s.User.ID] = st
	}
	return nil
}

// parseMarks reads "12=P" pairs into a map keyed by user id.
func parseMarks(pairs []string) (map[int]models.AttendanceStatus, error) {
	out := make(map[int]models.AttendanceStatus, len(pairs))
	var bad forms.ValidationErrors
	for _, p := range pairs {
		idStr, stStr, ok := strings.Cut(p, "=")
		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		st, valid := models.ParseAttendanceStatus(stStr)
		if !ok || err != nil || !valid {
			bad = append(bad, fmt.Sprintf("bad mark %q, want <id>=P|A|L", p))
			continue
		}
		out[id] = st
	}
	if len(bad) > 0 {
		return nil, bad
	}
	return out, nil
}

// splitClock separates "2:00 PM" (or "2:00pm") into clock and period.
func splitClock(s string) (clock, period string) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, p := range []string{"AM", "PM"} {
		if strings.HasSuffix(s, p) {
			return strings.TrimSpace(strings.TrimSuffix(s, p)), p
		}
	}
	return s, ""
}

func (a *App) newAttendanceHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List recorded meetings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.api.ListMeetings(cmd.Context())
			if err != nil {
				return err
			}
			a.out.Meetings(list)
			return nil
		},
	}
}

func (a *App) newAttendanceShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <meeting-id>",
		Short: "Show a meeting with its attendance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, recs, names, err := a.loadMeeting(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.out.Meeting(m, recs, names)
			return nil
		},
	}
}

// loadMeeting fetches a meeting, its records and member names concurrently.
// Names are best effort: without them records show user ids.
func (a *App) loadMeeting(ctx context.Context, id string) (models.Meeting, []models.AttendanceRecord, map[int]string, error) {
	var (
		m     models.Meeting
		recs  []models.AttendanceRecord
		names = map[int]string{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		m, err = a.api.GetMeeting(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		recs, err = a.api.MeetingAttendance(gctx, id)
		return err
	})

	students, serr := a.api.ListStudents(ctx)
	if err := g.Wait(); err != nil {
		return m, nil, nil, err
	}
	if serr != nil {
		a.log.Warn(ctx, "member names unavailable", "error", serr)
	}
	for _, s := range students {
		names[s.User.ID] = s.User.FullName()
	}
	return m, recs, names, nil
}

// newAttendanceEditCmd changes individual records: --set <record-id>=STATUS.
// One PUT is issued per changed record.
func (a *App) newAttendanceEditCmd() *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "edit <meeting-id>",
		Short: "Change attendance statuses of a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			meetingID := args[0]

			changes, err := parseMarks(sets)
			if err != nil {
				return err
			}
			if len(changes) == 0 {
				return forms.ValidationErrors{"nothing to update, pass --set <record-id>=STATUS"}
			}

			recs, err := a.api.MeetingAttendance(ctx, meetingID)
			if err != nil {
				return err
			}
			byID := make(map[int]models.AttendanceRecord, len(recs))
			for _, r := range recs {
				byID[r.ID] = r
			}

			updated := 0
			for _, r := range recs {
				st, ok := changes[r.ID]
				if !ok || st == r.Status {
					continue
				}
				r.Status = st
				if err := a.api.UpdateAttendance(ctx, meetingID, r); err != nil {
					return fmt.Errorf("record %d: %w", r.ID, err)
				}
				updated++
			}
			for id := range changes {
				if _, ok := byID[id]; !ok {
					a.out.Note(fmt.Sprintf("Record %d is not part of meeting %s; skipped.", id, meetingID))
				}
			}

			a.out.Success(fmt.Sprintf("Updated %d attendance record(s).", updated))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "record-id=STATUS, repeatable")
	return cmd
}

func (a *App) newMeetingEditCmd() *cobra.Command {
	var m forms.MeetingEdit

	cmd := &cobra.Command{
		Use:   "edit-meeting <meeting-id>",
		Short: "Edit meeting details; only the given fields change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := m.Validate(); err != nil {
				return err
			}
			if err := a.api.UpdateMeeting(cmd.Context(), args[0], m.Payload()); err != nil {
				return err
			}
			a.out.Success("Meeting updated.")
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&m.Date, "date", "", "date YYYY-MM-DD")
	fl.StringVar(&m.StartTime, "start", "", "start time HH:MM (24h)")
	fl.StringVar(&m.EndTime, "end", "", "end time HH:MM (24h)")
	fl.StringVar(&m.Venue, "venue", "", "venue")
	fl.StringVar(&m.Agenda, "agenda", "", "agenda")
	fl.StringVar(&m.Highlights, "highlights", "", "highlights")
	return cmd
}

func (a *App) newMeetingDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <meeting-id>",
		Short: "Delete a meeting and its attendance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.confirmDelete(yes, "meeting "+args[0], func() error {
				return a.api.DeleteMeeting(cmd.Context(), args[0])
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "do not ask for confirmation")
	return cmd
}

func (a *App) newMeetingPDFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pdf <meeting-id>",
		Short: "Download the meeting report as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dl, err := a.api.MeetingPDF(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.saveDownload(cmd.Context(), dl)
		},
	}
}

// saveDownload hands a downloaded export to the archive.
func (a *App) saveDownload(ctx context.Context, dl *api.Download) error {
	loc, err := a.archive.Save(ctx, dl.Filename, dl.ContentType, dl.Body)
	if err != nil {
		return err
	}
	a.out.Success("Saved " + loc)
	return nil
}

// confirmDelete asks before running del unless yes is set.
func (a *App) confirmDelete(yes bool, what string, del func() error) error {
	if !yes {
		ok, err := a.confirm("Delete " + what + "?")
		if err != nil {
			return err
		}
		if !ok {
			a.out.Note("Cancelled.")
			return nil
		}
	}
	if err := del(); err != nil {
		return err
	}
	a.out.Success("Deleted " + what + ".")
	return nil
}
