package usecase

import (
	"context"
	"fmt"
	"time"

	"eduvibe/internal/modules/dashboard/domain"
	"eduvibe/internal/modules/dashboard/dto"
	dashboardin "eduvibe/internal/modules/dashboard/port/in"
	"eduvibe/internal/modules/dashboard/service"
	streakdto "eduvibe/internal/modules/streak/dto"
	streakin "eduvibe/internal/modules/streak/port/in"
	apperrors "eduvibe/internal/platform/errors"
)

type Interactor struct {
	svc    *service.DashboardService
	streak streakin.Usecase
}

// NewInteractor builds the read side. Every call first lets the streak
// usecase apply missed-day decay; streak may be nil to skip that.
func NewInteractor(svc *service.DashboardService, streak streakin.Usecase) dashboardin.Usecase {
	return &Interactor{svc: svc, streak: streak}
}

func (i *Interactor) Stats(ctx context.Context) (dto.StatsOutput, error) {
	status, err := i.refresh(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	s, err := i.svc.Stats(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return dto.StatsOutput{
		Playlists:          s.Playlists,
		CompletedPlaylists: s.CompletedPlaylists,
		CompletedVideos:    s.CompletedVideos,
		TotalVideos:        s.TotalVideos,
		GoalsCompleted:     s.Today.Completed,
		GoalsTotal:         s.Today.Total,
		GoalsPercentage:    s.Today.Percentage,
		Streak:             s.Streak,
		StudiedToday:       status.StudiedToday,
		AtRisk:             status.AtRisk,
		TotalFocusHours:    s.TotalFocusHours,
	}, nil
}

func (i *Interactor) Calendar(ctx context.Context, input dto.CalendarInput) (dto.CalendarOutput, error) {
	if _, err := i.refresh(ctx); err != nil {
		return dto.CalendarOutput{}, err
	}
	var (
		year  int
		month time.Month
	)
	if input.Month != "" {
		parsed, err := time.Parse("2006-01", input.Month)
		if err != nil {
			return dto.CalendarOutput{}, fmt.Errorf("%w: month must look like 2006-01", apperrors.ErrInvalidInput)
		}
		year, month = parsed.Year(), parsed.Month()
	}
	marks, err := i.svc.Month(ctx, year, month)
	if err != nil {
		return dto.CalendarOutput{}, err
	}
	return toCalendar(marks), nil
}

func (i *Interactor) Day(ctx context.Context, date string) (dto.DayOutput, error) {
	if _, err := i.refresh(ctx); err != nil {
		return dto.DayOutput{}, err
	}
	d, err := i.svc.Day(ctx, date)
	if err != nil {
		return dto.DayOutput{}, err
	}
	out := dto.DayOutput{
		Date:            d.Day,
		Studied:         make([]dto.StudyEntryOutput, 0, len(d.Studied)),
		Goals:           make([]dto.DayGoalOutput, 0, len(d.Goals)),
		GoalsPercentage: d.Progress.Percentage,
		Sessions:        make([]dto.DaySessionOutput, 0, len(d.Sessions)),
	}
	for _, e := range d.Studied {
		out.Studied = append(out.Studied, dto.StudyEntryOutput{Playlist: e.Playlist, Video: e.Video, CompletedAt: e.CompletedAt})
	}
	for _, g := range d.Goals {
		out.Goals = append(out.Goals, dto.DayGoalOutput{ID: string(g.ID), Title: g.Title, Category: g.Category, Completed: g.Completed})
	}
	for _, s := range d.Sessions {
		out.Sessions = append(out.Sessions, dto.DaySessionOutput{Task: s.Task, Hours: s.Duration})
	}
	return out, nil
}

func (i *Interactor) refresh(ctx context.Context) (streakdto.StatusOutput, error) {
	if i.streak == nil {
		return streakdto.StatusOutput{}, nil
	}
	return i.streak.Status(ctx)
}

func toCalendar(marks []domain.CalendarDay) dto.CalendarOutput {
	out := dto.CalendarOutput{Days: make([]dto.CalendarDayOutput, 0, len(marks))}
	for idx, m := range marks {
		parsed, err := time.Parse("2006-01-02", m.Day)
		if err != nil {
			continue
		}
		if idx == 0 {
			out.Month = parsed.Format("2006-01")
			out.Weekday = parsed.Weekday()
		}
		if m.Studied {
			out.StudiedDays++
		}
		out.Days = append(out.Days, dto.CalendarDayOutput{Date: m.Day, Day: parsed.Day(), Studied: m.Studied, Today: m.Today})
	}
	return out
}
