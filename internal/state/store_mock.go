package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

var errMockFailure = errors.New("mock store failure")

// storeMock is an in-memory Store used by tests. FailCreates and FailWrites
// make the matching calls fail without touching the stored records.
type storeMock struct {
	FailCreates bool
	FailWrites  bool

	nextID    int
	profiles  map[string]models.Profile
	exercises []models.Exercise
	plans     []models.WorkoutPlan
	history   []models.WorkoutHistory
}

func NewMockStore() *storeMock {
	return &storeMock{
		profiles: make(map[string]models.Profile),
	}
}

func (m *storeMock) id(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", prefix, m.nextID)
}

func (m *storeMock) GetProfile(_ context.Context, userID string) (*models.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *storeMock) CreateProfile(_ context.Context, p models.Profile) (*models.Profile, error) {
	if m.FailCreates {
		return nil, errMockFailure
	}
	m.profiles[p.ID] = p
	return &p, nil
}

func (m *storeMock) UpdateProfile(_ context.Context, p models.Profile) error {
	if m.FailWrites {
		return errMockFailure
	}
	if _, ok := m.profiles[p.ID]; !ok {
		return ErrNotFound
	}
	m.profiles[p.ID] = p
	return nil
}

func (m *storeMock) ListExercises(_ context.Context, userID string) ([]models.Exercise, error) {
	var out []models.Exercise
	for _, ex := range m.exercises {
		if ex.UserID == userID {
			out = append(out, ex)
		}
	}
	return out, nil
}

func (m *storeMock) CreateExercise(_ context.Context, ex models.Exercise) (*models.Exercise, error) {
	if m.FailCreates {
		return nil, errMockFailure
	}
	ex.ID = m.id("ex")
	m.exercises = append(m.exercises, ex)
	return &ex, nil
}

func (m *storeMock) UpdateExercise(_ context.Context, ex models.Exercise) error {
	if m.FailWrites {
		return errMockFailure
	}
	for i := range m.exercises {
		if m.exercises[i].ID == ex.ID && m.exercises[i].UserID == ex.UserID {
			m.exercises[i] = ex
			return nil
		}
	}
	return ErrNotFound
}

func (m *storeMock) DeleteExercise(_ context.Context, userID, id string) error {
	if m.FailWrites {
		return errMockFailure
	}
	m.exercises = removeByID(m.exercises, userID+"/"+id, func(e models.Exercise) string { return e.UserID + "/" + e.ID })
	return nil
}

func (m *storeMock) ListPlans(_ context.Context, userID string) ([]models.WorkoutPlan, error) {
	var out []models.WorkoutPlan
	for _, p := range m.plans {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *storeMock) CreatePlan(_ context.Context, plan models.WorkoutPlan) (*models.WorkoutPlan, error) {
	if m.FailCreates {
		return nil, errMockFailure
	}
	plan.ID = m.id("plan")
	m.plans = append(m.plans, plan)
	return &plan, nil
}

func (m *storeMock) UpdatePlan(_ context.Context, plan models.WorkoutPlan) error {
	if m.FailWrites {
		return errMockFailure
	}
	for i := range m.plans {
		if m.plans[i].ID == plan.ID && m.plans[i].UserID == plan.UserID {
			m.plans[i] = plan
			return nil
		}
	}
	return ErrNotFound
}

func (m *storeMock) DeletePlan(_ context.Context, userID, id string) error {
	if m.FailWrites {
		return errMockFailure
	}
	m.plans = removeByID(m.plans, userID+"/"+id, func(p models.WorkoutPlan) string { return p.UserID + "/" + p.ID })
	return nil
}

func (m *storeMock) ListHistory(_ context.Context, userID string) ([]models.WorkoutHistory, error) {
	var out []models.WorkoutHistory
	for _, w := range m.history {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *storeMock) CreateWorkout(_ context.Context, w models.WorkoutHistory) (*models.WorkoutHistory, error) {
	if m.FailCreates {
		return nil, errMockFailure
	}
	w.ID = m.id("workout")
	m.history = append(m.history, w)
	return &w, nil
}

func (m *storeMock) DeleteWorkout(_ context.Context, userID, id string) error {
	if m.FailWrites {
		return errMockFailure
	}
	m.history = removeByID(m.history, userID+"/"+id, func(w models.WorkoutHistory) string { return w.UserID + "/" + w.ID })
	return nil
}

func (m *storeMock) DeleteUserData(_ context.Context, userID string) error {
	if m.FailWrites {
		return errMockFailure
	}
	keep := func(owner string) bool { return owner != userID }
	m.exercises = filter(m.exercises, func(e models.Exercise) bool { return keep(e.UserID) })
	m.plans = filter(m.plans, func(p models.WorkoutPlan) bool { return keep(p.UserID) })
	m.history = filter(m.history, func(w models.WorkoutHistory) bool { return keep(w.UserID) })
	delete(m.profiles, userID)
	return nil
}

func filter[T any](in []T, keep func(T) bool) []T {
	var out []T
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
