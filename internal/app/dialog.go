// Package app implements the application services: the per-user dialog state
// machines, the direct logging commands and the progress aggregator.
package app

import (
	"context"
	"sync"

	"github.com/looplab/fsm"

	"kcalbot/internal/domain"
)

// Flow identifies one multi-step dialog type.
type Flow string

// Flow constants.
const (
	FlowProfileSetup Flow = "profile_setup"
	FlowLogFood      Flow = "log_food"
	FlowLogWorkout   Flow = "log_workout"
)

// Step constants, scoped per flow.
const (
	stepWeight   = "weight"
	stepHeight   = "height"
	stepAge      = "age"
	stepGender   = "gender"
	stepActivity = "activity"
	stepCity     = "city"

	stepProduct = "product"
	stepGrams   = "grams"
	stepMethod  = "method"

	stepType     = "type"
	stepDuration = "duration"
)

const eventNext = "next"

// MsgProfileRequired is the guidance sent when a logging or reporting
// operation needs a profile that does not exist yet.
const MsgProfileRequired = "Set up your profile first with /set_profile."

// session is one in-progress dialog for a single user. It is created on the
// first step of a flow and never outlives it: commit and abort both remove
// it from the user's slot.
type session struct {
	flow    Flow
	machine *fsm.FSM

	// Exactly one accumulator matches flow; the others stay zero.
	profile profileDraft
	food    foodDraft
	workout workoutDraft
}

type profileDraft struct {
	weightKg    float64
	heightCm    float64
	ageYears    int
	gender      domain.Gender
	activityMin int
}

type foodDraft struct {
	productName string
	kcal100g    float64
	grams       float64
}

type workoutDraft struct {
	label string
}

func flowSteps(flow Flow) []string {
	switch flow {
	case FlowProfileSetup:
		return []string{stepWeight, stepHeight, stepAge, stepGender, stepActivity, stepCity}
	case FlowLogFood:
		return []string{stepProduct, stepGrams, stepMethod}
	case FlowLogWorkout:
		return []string{stepType, stepDuration}
	}
	return nil
}

// newSession builds a session whose machine walks the flow's steps through a
// linear chain of "next" transitions. A validation failure simply does not
// fire the event, which leaves the step and the accumulator untouched.
func newSession(flow Flow) *session {
	steps := flowSteps(flow)
	events := make(fsm.Events, 0, len(steps)-1)
	for i := 0; i+1 < len(steps); i++ {
		events = append(events, fsm.EventDesc{
			Name: eventNext,
			Src:  []string{steps[i]},
			Dst:  steps[i+1],
		})
	}
	return &session{flow: flow, machine: fsm.NewFSM(steps[0], events, nil)}
}

func (s *session) advance(ctx context.Context) {
	_ = s.machine.Event(ctx, eventNext)
}

// userSlot serializes all dialog processing for one user identity. Holding
// the slot mutex across a full message (including collaborator calls) keeps
// a user's messages strictly ordered without blocking other users.
type userSlot struct {
	mu      sync.Mutex
	session *session
}

// Dialogs drives the per-user dialog state machines and commits their
// results into the profile store.
type Dialogs struct {
	store   domain.ProfileStore
	weather domain.WeatherLookup
	food    domain.FoodLookup

	mu    sync.Mutex
	slots map[int64]*userSlot
}

// NewDialogs creates a dialog manager wired to the given store and external
// collaborators.
func NewDialogs(store domain.ProfileStore, weather domain.WeatherLookup, food domain.FoodLookup) *Dialogs {
	return &Dialogs{
		store:   store,
		weather: weather,
		food:    food,
		slots:   make(map[int64]*userSlot),
	}
}

func (d *Dialogs) slot(userID int64) *userSlot {
	d.mu.Lock()
	defer d.mu.Unlock()

	sl, ok := d.slots[userID]
	if !ok {
		sl = &userSlot{}
		d.slots[userID] = sl
	}
	return sl
}

// Active reports whether the user has a dialog in progress.
func (d *Dialogs) Active(userID int64) bool {
	sl := d.slot(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.session != nil
}

// Abandon destroys the user's current dialog session, if any, and reports
// whether one existed.
func (d *Dialogs) Abandon(userID int64) bool {
	sl := d.slot(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()

	had := sl.session != nil
	sl.session = nil
	return had
}

// StartProfileSetup begins the profile flow and returns the first prompt.
// Any previous profile is replaced only on commit; starting the flow alone
// changes nothing in the store.
func (d *Dialogs) StartProfileSetup(ctx context.Context, userID int64) string {
	sl := d.slot(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()

	sl.session = newSession(FlowProfileSetup)
	return promptWeight
}

// StartLogFood begins the food flow. It fails with domain.ErrProfileNotFound
// when the user has not completed profile setup.
func (d *Dialogs) StartLogFood(ctx context.Context, userID int64) (string, error) {
	if err := d.requireProfile(ctx, userID); err != nil {
		return "", err
	}

	sl := d.slot(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()

	sl.session = newSession(FlowLogFood)
	return promptProduct, nil
}

// StartLogWorkout begins the workout flow. It fails with
// domain.ErrProfileNotFound when the user has not completed profile setup.
func (d *Dialogs) StartLogWorkout(ctx context.Context, userID int64) (string, error) {
	if err := d.requireProfile(ctx, userID); err != nil {
		return "", err
	}

	sl := d.slot(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()

	sl.session = newSession(FlowLogWorkout)
	return promptWorkoutType, nil
}

// Handle routes one inbound message to the current step of the user's active
// dialog. The second return value reports whether a session consumed the
// message; callers treat an unconsumed message as a command.
func (d *Dialogs) Handle(ctx context.Context, userID int64, text string) ([]string, bool) {
	sl := d.slot(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()

	sess := sl.session
	if sess == nil {
		return nil, false
	}

	var replies []string
	var done bool
	switch sess.flow {
	case FlowProfileSetup:
		replies, done = d.handleProfileStep(ctx, userID, sess, text)
	case FlowLogFood:
		replies, done = d.handleFoodStep(ctx, userID, sess, text)
	case FlowLogWorkout:
		replies, done = d.handleWorkoutStep(ctx, userID, sess, text)
	}
	if done {
		sl.session = nil
	}
	return replies, true
}

func (d *Dialogs) requireProfile(ctx context.Context, userID int64) error {
	p, err := d.store.Get(ctx, userID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrProfileNotFound
	}
	return nil
}

func sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}
	return total
}
