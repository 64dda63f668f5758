package pipeline

import (
	"sort"

	"github.com/mjrivers/mailtrail/internal/model"
)

// followUpLagDays is the fixed mailing-to-response lag: text and voicemail
// reminders trail each mail drop by 13 calendar days. Business constant,
// not configurable.
const followUpLagDays = 13

// Derive expands records into scheduled tasks. A mailing record yields a
// mail task on its own date plus text/voicemail tasks 13 days later; a
// no-mail record yields only same-day text/voicemail tasks. The returned
// planned records carry the computed follow-up date; the inputs are left
// untouched. Tasks come back sorted by date ascending, stable within a
// date in per-record order.
func Derive(records []model.Record) ([]model.PlannedRecord, []model.Task) {
	planned := make([]model.PlannedRecord, 0, len(records))
	for _, r := range records {
		p := model.PlannedRecord{Record: r, FollowUp: r.Date}
		if !r.NoMail {
			p.FollowUp = r.Date.AddDate(0, 0, followUpLagDays)
		}
		planned = append(planned, p)
	}

	var tasks []model.Task
	for i := range planned {
		p := &planned[i]
		if !p.NoMail {
			tasks = append(tasks, model.Task{Date: p.Date, Type: model.TaskMail, Record: p, Campaign: p.Campaign})
		}
		tasks = append(tasks,
			model.Task{Date: p.FollowUp, Type: model.TaskText, Record: p, Campaign: p.Campaign},
			model.Task{Date: p.FollowUp, Type: model.TaskVoicemail, Record: p, Campaign: p.Campaign},
		)
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Date.Before(tasks[j].Date)
	})
	return planned, tasks
}
