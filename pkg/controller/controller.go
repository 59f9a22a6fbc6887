package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/borgmon/day-reserve/pkg/calendar"
	"github.com/borgmon/day-reserve/pkg/models"
)

// State is the interaction state of the calendar
type State int

const (
	StateIdle       State = iota // No entry open
	StateEditingDay              // Entry modal open for ActiveDateKey
)

func (s State) String() string {
	if s == StateEditingDay {
		return "EditingDay"
	}
	return "Idle"
}

// Prompt texts
const (
	PromptCreate  = "Enter your name:"
	PromptEdit    = "Edit name (or type OFF):"
	PromptEditOff = "Type a name or OFF:"
)

// ErrEditing is returned by actions that are not allowed while an entry is open
var ErrEditing = errors.New("an entry is open")

// Prompter asks the user for a line of text. done receives ok=false when the
// user cancels. done may run before AskText returns.
type Prompter interface {
	AskText(message, initial string, done func(value string, ok bool))
}

// View displays controller output
type View interface {
	Render(grid models.Grid)
	ShowEntry(label string)
	HideEntry()
}

// Store holds the reservations. *store.ReservationStore implements it.
type Store interface {
	Get(key string) (models.ReservationValue, bool)
	Set(key string, value models.ReservationValue)
	Unset(key string)
	Save() error
}

// Controller turns user actions into store mutations and re-renders
type Controller struct {
	store    Store
	schedule *calendar.Schedule
	prompter Prompter
	view     View
	now      func() time.Time

	anchor        time.Time // first day of the displayed month
	state         State
	activeDateKey string

	// OnReserved runs after a create or edit has been saved
	OnReserved func(key string, value models.ReservationValue)
	// OnError receives save failures
	OnError func(err error)
}

// Option configures a Controller
type Option func(*Controller)

// WithClock overrides the source of "today"
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithSchedule overrides the reservable weekdays
func WithSchedule(schedule *calendar.Schedule) Option {
	return func(c *Controller) {
		c.schedule = schedule
	}
}

// New creates a controller showing the current month
func New(rs Store, prompter Prompter, view View, opts ...Option) *Controller {
	c := &Controller{
		store:    rs,
		schedule: calendar.DefaultSchedule(),
		prompter: prompter,
		view:     view,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.anchor = monthStart(c.now())
	return c
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// State returns the current interaction state
func (c *Controller) State() State {
	return c.state
}

// ActiveDateKey returns the key of the open entry, or ""
func (c *Controller) ActiveDateKey() string {
	return c.activeDateKey
}

// CurrentMonth returns the displayed year and month
func (c *Controller) CurrentMonth() (int, time.Month) {
	return c.anchor.Year(), c.anchor.Month()
}

// Schedule returns the reservable weekdays
func (c *Controller) Schedule() *calendar.Schedule {
	return c.schedule
}

// Grid computes the displayed month
func (c *Controller) Grid() models.Grid {
	return calendar.BuildGrid(c.anchor.Year(), c.anchor.Month(), c.now(), c.schedule, c.store.Get)
}

// Reload re-renders after the store was changed from outside
func (c *Controller) Reload() {
	c.render()
}

// HandleDayClick reacts to a click on the day with key
func (c *Controller) HandleDayClick(key string) {
	if c.state != StateIdle {
		log.Printf("[CONTROLLER] Ignoring click on %s while editing %s", key, c.activeDateKey)
		return
	}

	date, err := calendar.ParseDateKey(key)
	if err != nil {
		log.Printf("[CONTROLLER] Ignoring click: %v", err)
		return
	}

	if !c.schedule.IsEventDay(date) {
		return
	}

	if value, ok := c.store.Get(key); ok {
		c.openEntry(key, date, value)
		return
	}

	c.prompter.AskText(PromptCreate, "", func(input string, ok bool) {
		if !ok {
			return
		}
		c.createReservation(key, input)
	})
}

func (c *Controller) createReservation(key, input string) {
	// The prompt may answer after the state changed
	if c.state != StateIdle {
		return
	}

	value, ok := models.ParseInput(input)
	if !ok {
		return
	}

	c.store.Set(key, value)
	if !c.save(key, models.ReservationValue{}, false) {
		return
	}

	log.Printf("[CONTROLLER] Reserved %s: %s", key, value.Label())
	c.render()
	c.notifyReserved(key, value)
}

func (c *Controller) openEntry(key string, date time.Time, value models.ReservationValue) {
	c.state = StateEditingDay
	c.activeDateKey = key
	c.view.ShowEntry(calendar.FormatDayLabel(date, value))
}

// HandleModalEdit prompts for a new value for the open entry
func (c *Controller) HandleModalEdit() {
	if c.state != StateEditingDay {
		return
	}

	key := c.activeDateKey
	current, _ := c.store.Get(key)

	message, initial := PromptEdit, current.Name
	if current.IsOff() {
		message, initial = PromptEditOff, ""
	}

	c.prompter.AskText(message, initial, func(input string, ok bool) {
		if !ok || c.activeDateKey != key {
			return
		}
		c.ConfirmEdit(input)
	})
}

// ConfirmEdit replaces the open entry's reservation. Blank input keeps the
// entry open.
func (c *Controller) ConfirmEdit(input string) {
	if c.state != StateEditingDay {
		return
	}

	value, ok := models.ParseInput(input)
	if !ok {
		return
	}

	key := c.activeDateKey
	previous, existed := c.store.Get(key)
	c.store.Set(key, value)
	if !c.save(key, previous, existed) {
		return
	}

	log.Printf("[CONTROLLER] Updated %s: %s", key, value.Label())
	c.closeEntry()
	c.render()
	c.notifyReserved(key, value)
}

// HandleModalRemove deletes the open entry's reservation
func (c *Controller) HandleModalRemove() {
	if c.state != StateEditingDay {
		return
	}

	key := c.activeDateKey
	previous, existed := c.store.Get(key)
	c.store.Unset(key)
	if !c.save(key, previous, existed) {
		return
	}

	log.Printf("[CONTROLLER] Removed %s", key)
	c.closeEntry()
	c.render()
}

// HandleModalCancel closes the open entry without changes
func (c *Controller) HandleModalCancel() {
	if c.state != StateEditingDay {
		return
	}
	c.closeEntry()
}

// HandleNavigate moves the displayed month by delta months
func (c *Controller) HandleNavigate(delta int) error {
	if c.state == StateEditingDay {
		return ErrEditing
	}

	// anchor is always day 1, so AddDate cannot overflow into another month
	c.anchor = c.anchor.AddDate(0, delta, 0)
	c.render()
	return nil
}

// GoToToday shows the current month
func (c *Controller) GoToToday() error {
	if c.state == StateEditingDay {
		return ErrEditing
	}

	c.anchor = monthStart(c.now())
	c.render()
	return nil
}

func (c *Controller) closeEntry() {
	c.state = StateIdle
	c.activeDateKey = ""
	c.view.HideEntry()
}

func (c *Controller) render() {
	c.view.Render(c.Grid())
}

// save persists the store. On failure the entry at key is restored to
// previous so memory keeps matching what was last written.
func (c *Controller) save(key string, previous models.ReservationValue, existed bool) bool {
	err := c.store.Save()
	if err == nil {
		return true
	}

	if existed {
		c.store.Set(key, previous)
	} else {
		c.store.Unset(key)
	}

	log.Printf("[CONTROLLER] Error saving reservations: %v", err)
	if c.OnError != nil {
		c.OnError(fmt.Errorf("failed to save reservations: %w", err))
	}
	return false
}

func (c *Controller) notifyReserved(key string, value models.ReservationValue) {
	if c.OnReserved != nil {
		c.OnReserved(key, value)
	}
}
