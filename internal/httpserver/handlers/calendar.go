package handlers

import (
	"fmt"
	"net/http"

	"github.com/mlutra/watched/internal/calendar"
	"github.com/mlutra/watched/internal/httpserver/deps"
	"github.com/mlutra/watched/internal/logger"
	"github.com/mlutra/watched/internal/session"
)

type monthView struct {
	calendar.Month
	Grid []calendar.Cell `json:"grid"`
}

type calendarResponse struct {
	AvailableDates []string    `json:"availableDates"`
	Selected       string      `json:"selected"`
	Months         []monthView `json:"months"`
}

type jumpResponse struct {
	Op     string `json:"op"`
	Base   string `json:"base"`
	Target string `json:"target"` // "" when no destination exists
}

// Calendar serves the month pages built from the watched folder's dates.
// With an op parameter it instead resolves one navigation step:
//
//	?op=today
//	?op=prev-day|next-day|prev-week|next-week[&base=YYYY-MM-DD]
//	?op=on-or-before|on-or-after&base=YYYY-MM-DD
func Calendar(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := loadWatched(d)
		if err != nil {
			d.Logger.Error("failed to load watched bookmarks",
				logger.String("path", d.BookmarksPath),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "ingestion_failed", err)
			return
		}

		sess := session.New(&resp)

		op := r.URL.Query().Get("op")
		if op == "" {
			months := sess.Months()
			views := make([]monthView, 0, len(months))
			for _, m := range months {
				views = append(views, monthView{Month: m, Grid: m.Grid()})
			}
			writeJSON(w, http.StatusOK, calendarResponse{
				AvailableDates: sess.Calendar().Dates(),
				Selected:       sess.Selected(),
				Months:         views,
			})
			return
		}

		base := r.URL.Query().Get("base")
		target, err := resolveJump(sess, d, op, base)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_op", err)
			return
		}

		writeJSON(w, http.StatusOK, jumpResponse{
			Op:     op,
			Base:   base,
			Target: target,
		})
	}
}

// resolveJump executes one navigation operation against the session. For the
// stepping ops the base moves the selection first when it is an available
// date; otherwise the session steps from its default (the latest date).
func resolveJump(sess *session.Session, d deps.Deps, op, base string) (string, error) {
	switch op {
	case "on-or-before", "on-or-after":
		if base == "" {
			return "", fmt.Errorf("op %q requires a base date", op)
		}
		if op == "on-or-before" {
			return sess.Calendar().OnOrBefore(base), nil
		}
		return sess.Calendar().OnOrAfter(base), nil

	case "today":
		target, _ := sess.JumpToday(d.Now())
		return target, nil

	case "prev-day", "next-day", "prev-week", "next-week":
		if base != "" {
			sess.Select(base)
		}
		var target string
		switch op {
		case "prev-day":
			target, _ = sess.StepDay(true)
		case "next-day":
			target, _ = sess.StepDay(false)
		case "prev-week":
			target, _ = sess.StepWeek(true)
		case "next-week":
			target, _ = sess.StepWeek(false)
		}
		return target, nil

	default:
		return "", fmt.Errorf("unknown calendar op %q", op)
	}
}
