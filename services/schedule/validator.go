// services/schedule/validator.go
package schedule

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"trimly/models"
)

const dateLayout = "2006-01-02"

// BlockRequest is the ad-hoc block-time payload submitted by the admin UI.
type BlockRequest struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	Reason    string `json:"reason"`
}

// FieldError ties one violation to the input field that caused it, so a form
// can render one message per field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// ValidationResult aggregates every violation found in one pass. Validation
// never raises; an empty result means the input is acceptable.
type ValidationResult struct {
	Errors []FieldError `json:"errors"`
}

func (r ValidationResult) Valid() bool { return len(r.Errors) == 0 }

// ByField returns the errors recorded against one field.
func (r ValidationResult) ByField(field string) []FieldError {
	var out []FieldError
	for _, fe := range r.Errors {
		if fe.Field == field {
			out = append(out, fe)
		}
	}
	return out
}

func (r *ValidationResult) add(field string, err error, msg string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: msg, Err: err})
}

// Validator runs pure, all-errors-at-once checks over UI requests.
// The clock is injectable so past-date checks are deterministic under test.
type Validator struct {
	validate *validator.Validate
	loc      *time.Location
	now      func() time.Time
}

// NewValidator builds a validator evaluating dates in the given location.
func NewValidator(loc *time.Location) *Validator {
	if loc == nil {
		loc = time.UTC
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under json field names, matching what the form sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v, loc: loc, now: time.Now}
}

// ValidateBlockRequest checks a block-time request and returns all applicable
// errors at once: missing fields, unparseable or past dates, and end-before-start
// ordering. The date comparison is date-only in the validator's location.
func (v *Validator) ValidateBlockRequest(req BlockRequest) ValidationResult {
	var res ValidationResult

	if err := v.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				res.add(fe.Field(), models.ErrMissingField, fe.Field()+" is required")
			}
		}
	}

	if req.Date != "" {
		day, err := time.ParseInLocation(dateLayout, req.Date, v.loc)
		if err != nil {
			res.add("date", models.ErrBadTimeFormat, "date must be YYYY-MM-DD")
		} else if day.Before(v.today()) {
			res.add("date", models.ErrPastDate, "date must not be in the past")
		}
	}

	var (
		start, end models.TimeOfDay
		serr, eerr error
	)
	if req.StartTime != "" {
		if start, serr = models.ParseTimeOfDay(req.StartTime); serr != nil {
			res.add("startTime", models.ErrBadTimeFormat, "start time must be HH:MM")
		}
	}
	if req.EndTime != "" {
		if end, eerr = models.ParseTimeOfDay(req.EndTime); eerr != nil {
			res.add("endTime", models.ErrBadTimeFormat, "end time must be HH:MM")
		}
	}
	if req.StartTime != "" && req.EndTime != "" && serr == nil && eerr == nil {
		if end.Minutes() <= start.Minutes() {
			res.add("endTime", models.ErrBadOrder, "end time must be after start time")
		}
	}

	return res
}

// ValidateNewSlot checks a slot being added to a day schedule: both endpoints
// present, parseable, and start strictly before end. Overlap against the
// day's existing slots is intentionally not validated here; stored schedules
// have always been allowed to contain overlapping slots and callers may rely
// on that. ValidateNoOverlap is the opt-in check.
func (v *Validator) ValidateNewSlot(slot models.RawSlot, existing []models.TimeInterval) ValidationResult {
	var res ValidationResult

	var (
		start, end models.TimeOfDay
		serr, eerr error
	)
	if slot.Start == "" {
		res.add("start", models.ErrMissingField, "start is required")
	} else if start, serr = models.ParseTimeOfDay(slot.Start); serr != nil {
		res.add("start", models.ErrBadTimeFormat, "start must be HH:MM")
	}
	if slot.End == "" {
		res.add("end", models.ErrMissingField, "end is required")
	} else if end, eerr = models.ParseTimeOfDay(slot.End); eerr != nil {
		res.add("end", models.ErrBadTimeFormat, "end must be HH:MM")
	}
	if slot.Start != "" && slot.End != "" && serr == nil && eerr == nil {
		if end.Minutes() <= start.Minutes() {
			res.add("end", models.ErrBadOrder, "end must be after start")
		}
	}

	return res
}

// ValidateNoOverlap reports every pair of overlapping slots in a day.
// Opt-in: no other engine path calls it.
func ValidateNoOverlap(slots []models.TimeInterval) ValidationResult {
	var res ValidationResult
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			if models.Overlaps(slots[i], slots[j]) {
				res.add(fmt.Sprintf("slots[%d]", j), models.ErrBadOrder,
					fmt.Sprintf("overlaps slot %d (%s..%s)", i, slots[i].Start.Format24(), slots[i].End.Format24()))
			}
		}
	}
	return res
}

// NewBlockedRange materializes a blocked range from a request that validated
// clean, stamping identity and creation time.
func NewBlockedRange(req BlockRequest) models.BlockedRange {
	return models.BlockedRange{
		BlockID:   uuid.NewString(),
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
		CreatedAt: time.Now(),
	}
}

func (v *Validator) today() time.Time {
	n := v.now().In(v.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, v.loc)
}
