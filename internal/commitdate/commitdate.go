// Package commitdate models the dialog used to pick the author date of the
// next commit: a calendar date, a time of day and a slider that scrubs
// through the day.
package commitdate

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/thiagokokada/gitgui-go/internal/observable"
)

const (
	// SliderRange is the slider's maximum; 0 is midnight.
	SliderRange = 500
	// SecondsRange is the last second of a day.
	SecondsRange = 24*60*60 - 1
	// TickSeconds is the time covered by one slider step.
	TickSeconds = SecondsRange / SliderRange

	// GitLayout is the date format passed to git commit --date.
	GitLayout = "Mon Jan 02 15:04:05 2006 -0700"
	// TimeLayout is how the time of day is displayed.
	TimeLayout = "03:04:05 PM"
	DateLayout = "2006-01-02"
)

func SliderToSeconds(value int) int {
	value = clamp(value, 0, SliderRange)
	return int(math.Round(float64(value) / SliderRange * SecondsRange))
}

func SecondsToSlider(seconds int) int {
	seconds = clamp(seconds, 0, SecondsRange)
	return int(math.Round(float64(seconds) / SecondsRange * SliderRange))
}

// TickTime moves t forward by one slider step.
func TickTime(t time.Time) time.Time {
	return t.Add(TickSeconds * time.Second)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Date is a calendar day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func SecondsOfDay(t time.Time) int {
	h, m, s := t.Clock()
	return h*3600 + m*60 + s
}

// FormatTimeOfDay renders seconds since midnight as "hh:mm:ss AM".
func FormatTimeOfDay(seconds int) string {
	seconds = clamp(seconds, 0, SecondsRange)
	return time.Date(2000, 1, 1, 0, 0, seconds, 0, time.UTC).Format(TimeLayout)
}

var timeLayouts = []string{TimeLayout, "3:04:05 PM", "03:04 PM", "3:04 PM", "15:04:05", "15:04"}

// ParseTimeOfDay accepts 12-hour times with AM/PM and 24-hour times.
func ParseTimeOfDay(s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return SecondsOfDay(t), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

// Picker keeps the time of day and the slider in step. Writing either one
// updates the other with its notifications suspended.
type Picker struct {
	loc    *time.Location
	date   *observable.Value[Date]
	time   *observable.Value[int]
	slider *observable.Value[int]
}

func NewPicker(initial time.Time, loc *time.Location) *Picker {
	if loc == nil {
		loc = time.Local
	}
	initial = initial.In(loc)
	p := &Picker{
		loc:    loc,
		date:   observable.New(DateOf(initial)),
		time:   observable.New(SecondsOfDay(initial)),
		slider: observable.New(0),
	}
	observable.Link(p.time, p.slider, SecondsToSlider, SliderToSeconds)
	p.slider.SetQuiet(SecondsToSlider(p.time.Get()))
	return p
}

func (p *Picker) Date() Date { return p.date.Get() }

func (p *Picker) TimeOfDay() int { return p.time.Get() }

func (p *Picker) Slider() int { return p.slider.Get() }

func (p *Picker) SetDate(d Date) { p.date.Set(d) }

func (p *Picker) SetTimeOfDay(seconds int) {
	p.time.Set(clamp(seconds, 0, SecondsRange))
}

func (p *Picker) SetSlider(value int) {
	p.slider.Set(clamp(value, 0, SliderRange))
}

// Adjust moves the slider by delta steps.
func (p *Picker) Adjust(delta int) {
	p.SetSlider(p.slider.Get() + delta)
}

// Reset jumps to t, usually the latest commit's author date.
func (p *Picker) Reset(t time.Time) {
	t = t.In(p.loc)
	p.date.SetQuiet(DateOf(t))
	p.time.SetQuiet(SecondsOfDay(t))
	p.slider.SetQuiet(SecondsToSlider(SecondsOfDay(t)))
}

func (p *Picker) DateTime() time.Time {
	d := p.date.Get()
	return time.Date(d.Year, d.Month, d.Day, 0, 0, p.time.Get(), 0, p.loc)
}

// GitDate formats the picked moment for git commit --date.
func (p *Picker) GitDate() string {
	return FormatGitDate(p.DateTime())
}

func FormatGitDate(t time.Time) string {
	return t.Format(GitLayout)
}

// LatestCommitTime interprets the output of git log -1 --format=%aI HEAD.
// Failures, empty output and unparsable dates all yield now.
func LatestCommitTime(status int, out string, now time.Time) time.Time {
	out = strings.TrimSpace(out)
	if status != 0 || out == "" {
		return now
	}
	t, err := time.Parse(time.RFC3339, out)
	if err != nil {
		return now
	}
	return t
}

// Memory is the editor's recollection of the last picked date. While
// amending it holds the amended commit's date instead.
type Memory struct {
	last   time.Time
	backup time.Time
}

// Last returns the date to open the dialog with, if any.
func (m *Memory) Last() (time.Time, bool) {
	return m.last, !m.last.IsZero()
}

// Accepted records a picked date, one step ahead so that consecutive commits
// get increasing dates.
func (m *Memory) Accepted(t time.Time) {
	m.last = TickTime(t)
}

func (m *Memory) EnterAmend(head time.Time) {
	m.backup = m.last
	m.last = head
}

func (m *Memory) LeaveAmend() {
	m.last = m.backup
	m.backup = time.Time{}
}
