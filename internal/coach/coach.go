// Package coach answers fitness questions with a text-generation model,
// grounded on a summary of the user's own data.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/umer279/gymratting-fitness-tracker/internal/state"
)

const (
	SystemInstruction = "You are an expert fitness coach and nutritionist named Gymrat AI. " +
		"You are helping a user with their fitness journey. " +
		"Your tone should be encouraging and informative. " +
		"Use the provided user data to give personalized advice. " +
		"Keep your answers concise and well-formatted using markdown (e.g., lists, bold text)."

	NotConfiguredMessage = "AI features are not configured. Please set GEMINI_API_KEY in your environment or ai.api_key in the config file."
	FallbackMessage      = "Sorry, I'm having trouble connecting to my brain right now. Please try again later."

	recentWorkouts = 5
)

// Generator turns a prompt and a system instruction into a single response.
type Generator interface {
	Generate(ctx context.Context, prompt, systemInstruction string) (string, error)
}

type Coach struct {
	gen Generator
}

// New returns a coach backed by gen. A nil gen gives a coach that only
// answers with NotConfiguredMessage.
func New(gen Generator) *Coach {
	return &Coach{gen: gen}
}

func (c *Coach) Configured() bool {
	return c != nil && c.gen != nil
}

// Respond answers question for the user whose data is st. Failures are
// logged and answered with FallbackMessage.
func (c *Coach) Respond(ctx context.Context, st state.State, question string) string {
	if !c.Configured() {
		return NotConfiguredMessage
	}

	prompt, err := Prompt(st, question)
	if err != nil {
		log.Errorf("build coach prompt: %s", err)
		return FallbackMessage
	}

	start := time.Now()
	answer, err := c.gen.Generate(ctx, prompt, SystemInstruction)
	if err != nil {
		log.Errorf("coach generate: %s", err)
		return FallbackMessage
	}
	log.Debugf("coach answered in %s", time.Since(start))
	return answer
}

type planContext struct {
	Name      string `json:"name"`
	Exercises int    `json:"exercises"`
}

type workoutContext struct {
	PlanName  string    `json:"planName"`
	Date      time.Time `json:"date"`
	Exercises int       `json:"exercises"`
}

type userContext struct {
	Plans              []planContext    `json:"plans"`
	RecentHistory      []workoutContext `json:"recentHistory"`
	AvailableExercises []string         `json:"availableExercises"`
}

// Prompt wraps question with a compact JSON view of the user's plans, recent
// workouts and exercise names.
func Prompt(st state.State, question string) (string, error) {
	uc := userContext{
		Plans:              []planContext{},
		RecentHistory:      []workoutContext{},
		AvailableExercises: []string{},
	}
	for _, p := range st.Plans {
		uc.Plans = append(uc.Plans, planContext{Name: p.Name, Exercises: len(p.Exercises)})
	}
	for i, w := range st.History {
		if i == recentWorkouts {
			break
		}
		uc.RecentHistory = append(uc.RecentHistory, workoutContext{
			PlanName:  w.PlanName,
			Date:      w.Date,
			Exercises: len(w.Exercises),
		})
	}
	for _, ex := range st.Exercises {
		uc.AvailableExercises = append(uc.AvailableExercises, ex.Name)
	}

	data, err := json.Marshal(uc)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("User Data Context: %s\n\nUser Question: \"%s\"", data, question), nil
}
