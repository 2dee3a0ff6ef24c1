package coach

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/state"
)

// TestMain will run goleak after all tests have been run in the package
// to detect any goroutine leaks
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

type generatorMock struct {
	mu      sync.Mutex
	answer  string
	err     error
	prompts []string
	systems []string
	// release blocks Generate until closed, when set
	release chan struct{}
}

func (g *generatorMock) Generate(_ context.Context, prompt, systemInstruction string) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.systems = append(g.systems, systemInstruction)
	g.mu.Unlock()

	if g.release != nil {
		<-g.release
	}
	return g.answer, g.err
}

func testState() state.State {
	day := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	st := state.State{
		Exercises: []models.Exercise{{ID: "e1", Name: "Bench Press"}, {ID: "e2", Name: "Squat"}},
		Plans: []models.WorkoutPlan{
			{Name: "Push", Exercises: []models.PlanExercise{{ExerciseID: "e1"}, {ExerciseID: "e2"}}},
		},
	}
	for i := 0; i < 7; i++ {
		st.History = append(st.History, models.WorkoutHistory{
			PlanName:  "Push",
			Date:      day.AddDate(0, 0, -i),
			Exercises: []models.PerformedExercise{{ExerciseID: "e1"}},
		})
	}
	return st
}

func TestPrompt(t *testing.T) {
	prompt, err := Prompt(testState(), "How do I bench more?")
	require.NoError(t, err)

	ctxJSON, question, ok := strings.Cut(strings.TrimPrefix(prompt, "User Data Context: "), "\n\nUser Question: ")
	require.True(t, ok)
	assert.Equal(t, `"How do I bench more?"`, question)

	var uc userContext
	require.NoError(t, json.Unmarshal([]byte(ctxJSON), &uc))
	assert.Equal(t, []planContext{{Name: "Push", Exercises: 2}}, uc.Plans)
	assert.Len(t, uc.RecentHistory, 5)
	assert.Equal(t, 1, uc.RecentHistory[0].Exercises)
	assert.Equal(t, []string{"Bench Press", "Squat"}, uc.AvailableExercises)
}

func TestPrompt_EmptyState(t *testing.T) {
	prompt, err := Prompt(state.State{}, "hi")
	require.NoError(t, err)
	assert.Contains(t, prompt, `{"plans":[],"recentHistory":[],"availableExercises":[]}`)
}

func TestRespond(t *testing.T) {
	gen := &generatorMock{answer: "**Progressive overload.**"}
	c := New(gen)

	answer := c.Respond(context.Background(), testState(), "tips?")
	assert.Equal(t, "**Progressive overload.**", answer)
	require.Len(t, gen.systems, 1)
	assert.Equal(t, SystemInstruction, gen.systems[0])
	assert.True(t, strings.HasPrefix(gen.prompts[0], "User Data Context: "))
}

func TestRespond_Fallbacks(t *testing.T) {
	assert.Equal(t, NotConfiguredMessage, New(nil).Respond(context.Background(), testState(), "tips?"))

	var nilCoach *Coach
	assert.False(t, nilCoach.Configured())

	failing := New(&generatorMock{err: errors.New("quota exceeded")})
	assert.Equal(t, FallbackMessage, failing.Respond(context.Background(), testState(), "tips?"))
}

func TestChat(t *testing.T) {
	c := New(&generatorMock{answer: "Eat protein."})
	ch := c.NewChat(testState())
	assert.Equal(t, []Message{{Role: RoleModel, Content: Greeting}}, ch.Messages())

	answer, err := ch.Send(context.Background(), "diet?")
	require.NoError(t, err)
	assert.Equal(t, Message{Role: RoleModel, Content: "Eat protein."}, answer)
	assert.Len(t, ch.Messages(), 3)

	_, err = ch.Send(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyInput)

	ch.Close()
	_, err = ch.Send(context.Background(), "more?")
	assert.ErrorIs(t, err, ErrChatClosed)
}

func TestStartChat_NoGreeting(t *testing.T) {
	c := New(&generatorMock{answer: "Looks consistent."})
	ch, answer, err := c.StartChat(context.Background(), testState(), "analyse my data")
	require.NoError(t, err)
	assert.Equal(t, "Looks consistent.", answer.Content)
	assert.Equal(t, []Message{
		{Role: RoleUser, Content: "analyse my data"},
		{Role: RoleModel, Content: "Looks consistent."},
	}, ch.Messages())
}

func TestChat_LateAnswerDropped(t *testing.T) {
	gen := &generatorMock{answer: "late", release: make(chan struct{})}
	ch := New(gen).NewChat(testState())

	type result struct {
		msg Message
		err error
	}
	done := make(chan result)
	go func() {
		msg, err := ch.Send(context.Background(), "still there?")
		done <- result{msg, err}
	}()

	require.Eventually(t, func() bool {
		gen.mu.Lock()
		defer gen.mu.Unlock()
		return len(gen.prompts) == 1
	}, time.Second, time.Millisecond)

	_, err := ch.Send(context.Background(), "second")
	assert.ErrorIs(t, err, ErrBusy)

	ch.Close()
	close(gen.release)

	res := <-done
	assert.ErrorIs(t, res.err, ErrChatClosed)
	assert.Empty(t, res.msg.Content)

	msgs := ch.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleUser, msgs[1].Role)
}
