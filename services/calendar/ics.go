// services/calendar/ics.go
package calendar

import (
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"trimly/models"
	"trimly/utils"
)

// ExportICS serializes occupancy items as an iCalendar document so a
// provider's schedule can be pulled into external calendar clients. Items
// whose date or times do not parse are skipped with a debug log, the same
// best-effort posture as availability loading.
func ExportICS(items []models.CalendarItem, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	logger := utils.GetLogger()

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//trimly//schedule//EN")

	for _, it := range items {
		day, err := time.ParseInLocation(dateLayout, it.ItemDate(), loc)
		if err != nil {
			logger.Debug("skipping item with bad date", zap.String("date", it.ItemDate()))
			continue
		}
		start, serr := models.ParseTimeOfDay(it.ItemStart())
		end, eerr := models.ParseTimeOfDay(it.ItemEnd())
		if serr != nil || eerr != nil {
			logger.Debug("skipping item with bad times",
				zap.String("start", it.ItemStart()), zap.String("end", it.ItemEnd()))
			continue
		}

		ev := cal.AddEvent(uuid.NewString())
		ev.SetStartAt(day.Add(time.Duration(start.Minutes()) * time.Minute))
		ev.SetEndAt(day.Add(time.Duration(end.Minutes()) * time.Minute))
		ev.SetSummary(it.ItemSummary())
	}

	return cal.Serialize()
}
