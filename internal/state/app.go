package state

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

var (
	// ErrNotFound is returned by a Store when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrCreateFailed means the store did not persist a new record, so no
	// local entry was registered either.
	ErrCreateFailed = errors.New("create failed")
	ErrNoUser       = errors.New("no user configured")
)

// Store is the persistence collaborator. Every record is scoped to a user id;
// creates return the persisted record with its assigned id.
type Store interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	CreateProfile(ctx context.Context, p models.Profile) (*models.Profile, error)
	UpdateProfile(ctx context.Context, p models.Profile) error

	ListExercises(ctx context.Context, userID string) ([]models.Exercise, error)
	CreateExercise(ctx context.Context, ex models.Exercise) (*models.Exercise, error)
	UpdateExercise(ctx context.Context, ex models.Exercise) error
	DeleteExercise(ctx context.Context, userID, id string) error

	ListPlans(ctx context.Context, userID string) ([]models.WorkoutPlan, error)
	CreatePlan(ctx context.Context, plan models.WorkoutPlan) (*models.WorkoutPlan, error)
	UpdatePlan(ctx context.Context, plan models.WorkoutPlan) error
	DeletePlan(ctx context.Context, userID, id string) error

	ListHistory(ctx context.Context, userID string) ([]models.WorkoutHistory, error)
	CreateWorkout(ctx context.Context, w models.WorkoutHistory) (*models.WorkoutHistory, error)
	DeleteWorkout(ctx context.Context, userID, id string) error

	DeleteUserData(ctx context.Context, userID string) error
}

// App owns the state of one user and keeps it in step with the store.
// Creates wait for the store. Updates and deletes change local state first;
// store failures are logged and the local change is kept.
type App struct {
	store    Store
	userID   string
	userName string
	state    State
}

func NewApp(store Store, userID, userName string) *App {
	return &App{
		store:    store,
		userID:   userID,
		userName: userName,
		state:    State{UserID: userID},
	}
}

func (a *App) State() State { return a.state }

func (a *App) Dispatch(action Action) {
	a.state = Reduce(a.state, action)
}

func (a *App) Exercises() []models.Exercise { return a.state.Exercises }

func (a *App) Plans() []models.WorkoutPlan { return a.state.Plans }

func (a *App) History() []models.WorkoutHistory { return a.state.History }

func (a *App) Profile() *models.Profile { return a.state.Profile }

// Load fetches everything the user owns and makes sure a profile exists.
func (a *App) Load(ctx context.Context) error {
	if a.userID == "" {
		return ErrNoUser
	}

	profile, err := a.ensureProfile(ctx)
	if err != nil {
		return err
	}

	exercises, err := a.store.ListExercises(ctx, a.userID)
	if err != nil {
		return fmt.Errorf("fetch exercises: %w", err)
	}
	plans, err := a.store.ListPlans(ctx, a.userID)
	if err != nil {
		return fmt.Errorf("fetch plans: %w", err)
	}
	history, err := a.store.ListHistory(ctx, a.userID)
	if err != nil {
		return fmt.Errorf("fetch history: %w", err)
	}

	a.Dispatch(SetUserData{
		UserID:    a.userID,
		Profile:   profile,
		Exercises: exercises,
		Plans:     plans,
		History:   history,
	})
	log.Debugf("loaded %d exercises, %d plans, %d workouts", len(exercises), len(plans), len(history))
	return nil
}

func (a *App) ensureProfile(ctx context.Context) (*models.Profile, error) {
	profile, err := a.store.GetProfile(ctx, a.userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	name := a.userName
	if name == "" {
		name = "Gymrat"
	}
	profile, err = a.store.CreateProfile(ctx, models.Profile{
		ID:     a.userID,
		Name:   name,
		Avatar: models.Avatars[rand.IntN(len(models.Avatars))],
	})
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	log.Infof("created profile for %s", profile.Name)
	return profile, nil
}

func (a *App) UpdateProfile(ctx context.Context, name, avatar string) {
	p := models.Profile{ID: a.userID, Name: name, Avatar: avatar}
	a.Dispatch(UpdateProfileLocally{Profile: p})
	if err := a.store.UpdateProfile(ctx, p); err != nil {
		log.Errorf("update profile: %s", err)
	}
}

func (a *App) AddExercise(ctx context.Context, ex models.Exercise) (*models.Exercise, error) {
	ex.UserID = a.userID
	created, err := a.store.CreateExercise(ctx, ex)
	if err != nil {
		log.Errorf("add exercise %q: %s", ex.Name, err)
		return nil, ErrCreateFailed
	}
	a.Dispatch(AddExercise{Exercise: *created})
	return created, nil
}

func (a *App) UpdateExercise(ctx context.Context, ex models.Exercise) {
	ex.UserID = a.userID
	a.Dispatch(UpdateExercise{Exercise: ex})
	if err := a.store.UpdateExercise(ctx, ex); err != nil {
		log.Errorf("update exercise %s: %s", ex.ID, err)
	}
}

func (a *App) DeleteExercise(ctx context.Context, id string) {
	a.Dispatch(DeleteExercise{ID: id})
	if err := a.store.DeleteExercise(ctx, a.userID, id); err != nil {
		log.Errorf("delete exercise %s: %s", id, err)
	}
}

func (a *App) AddPlan(ctx context.Context, plan models.WorkoutPlan) (*models.WorkoutPlan, error) {
	plan.UserID = a.userID
	created, err := a.store.CreatePlan(ctx, plan)
	if err != nil {
		log.Errorf("add plan %q: %s", plan.Name, err)
		return nil, ErrCreateFailed
	}
	a.Dispatch(AddPlan{Plan: *created})
	return created, nil
}

func (a *App) UpdatePlan(ctx context.Context, plan models.WorkoutPlan) {
	plan.UserID = a.userID
	a.Dispatch(UpdatePlan{Plan: plan})
	if err := a.store.UpdatePlan(ctx, plan); err != nil {
		log.Errorf("update plan %s: %s", plan.ID, err)
	}
}

func (a *App) DeletePlan(ctx context.Context, id string) {
	a.Dispatch(DeletePlan{ID: id})
	if err := a.store.DeletePlan(ctx, a.userID, id); err != nil {
		log.Errorf("delete plan %s: %s", id, err)
	}
}

func (a *App) AddWorkout(ctx context.Context, w models.WorkoutHistory) (*models.WorkoutHistory, error) {
	w.UserID = a.userID
	created, err := a.store.CreateWorkout(ctx, w)
	if err != nil {
		log.Errorf("add workout %q: %s", w.PlanName, err)
		return nil, ErrCreateFailed
	}
	a.Dispatch(AddWorkout{Workout: *created})
	return created, nil
}

func (a *App) DeleteWorkout(ctx context.Context, id string) {
	a.Dispatch(DeleteWorkout{ID: id})
	if err := a.store.DeleteWorkout(ctx, a.userID, id); err != nil {
		log.Errorf("delete workout %s: %s", id, err)
	}
}

// DeleteAccount removes every record of the user and logs out locally.
func (a *App) DeleteAccount(ctx context.Context) error {
	log.Infof("deleting all data for user %s", a.userID)
	if err := a.store.DeleteUserData(ctx, a.userID); err != nil {
		return fmt.Errorf("delete user data: %w", err)
	}
	a.Dispatch(LogOut{})
	return nil
}

func (a *App) FindExercise(ref string) (models.Exercise, bool) {
	if ex, ok := models.FindExercise(a.state.Exercises, ref); ok {
		return ex, true
	}
	return models.FindExerciseByName(a.state.Exercises, ref)
}

// FindPlan looks a plan up by id, then by case-insensitive name.
func (a *App) FindPlan(ref string) (models.WorkoutPlan, bool) {
	for _, p := range a.state.Plans {
		if p.ID == ref {
			return p, true
		}
	}
	for _, p := range a.state.Plans {
		if strings.EqualFold(p.Name, strings.TrimSpace(ref)) {
			return p, true
		}
	}
	return models.WorkoutPlan{}, false
}

// FindWorkout accepts a workout id or a 1-based position in the history.
func (a *App) FindWorkout(ref string) (models.WorkoutHistory, bool) {
	for _, w := range a.state.History {
		if w.ID == ref {
			return w, true
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(a.state.History) {
		return a.state.History[n-1], true
	}
	return models.WorkoutHistory{}, false
}
