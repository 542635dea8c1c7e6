package assistant

import (
	"fmt"
	"slices"
	"strings"

	"github.com/saketh8887/medconnect/internal/catalog"
	"github.com/saketh8887/medconnect/internal/profile"
)

const chatSystemPrompt = `You are MedConnect's study assistant for medical students. Answer questions about anatomy, physiology, pathology, pharmacology and clinical practice clearly and accurately. Keep answers under 200 words unless asked for more. Use plain text without markdown tables. If a question is not about medical study or campus life, say briefly that you can only help with those. Never give personal medical advice; suggest seeing a clinician instead.`

const feedbackSystemPrompt = `You are an academic mentor reviewing a medical student's simulation and quiz performance. Be specific, kind and practical. Refer to the tasks and topics by name.`

func feedbackUserMessage(cat *catalog.Catalog, user *profile.UserProfile, perf Performance) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Student: %s (%s)\n", user.Name, user.Year)
	fmt.Fprintf(&b, "Study hours logged: %.1f\n", perf.StudyHours)
	fmt.Fprintf(&b, "Topics completed: %d of %d\n", user.CompletedTopicIDs.Len(), cat.TopicCount())
	if len(user.QuizScores) > 0 {
		fmt.Fprintf(&b, "Average quiz score: %.0f%%\n", user.AverageScore())
	}

	b.WriteString("\nQuiz scores by chapter:\n")
	if len(user.QuizScores) == 0 {
		b.WriteString("None yet\n")
	}
	ids := make([]string, 0, len(user.QuizScores))
	for id := range user.QuizScores {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		name := id
		if ch, ok := cat.Chapter(id); ok {
			name = ch.Title
		}
		fmt.Fprintf(&b, "- %s: %.0f%%\n", name, user.QuizScores[id])
	}

	b.WriteString("\nSimulation tasks:\n")
	tasks := make(map[string]catalog.AnatomyTask)
	for _, t := range cat.Tasks() {
		tasks[t.ID] = t
	}
	for _, p := range perf.Tasks {
		t, ok := tasks[p.TaskID]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s (%s, %s): %d attempts, %.0f%% success, %s spent\n",
			t.Title, t.Organ, t.Difficulty, p.Attempts, p.SuccessRate*100, p.TimeSpent)
	}

	b.WriteString(`
Instructions:
1. Name the weak spots using the lowest success rates and quiz scores above.
2. Name mastered areas only where success is 80% or higher.
3. Give an action plan the student can start today.
4. Pick focus topics from the chapters and tasks listed.
5. End with encouragement that mentions something the student did well.`)

	return b.String()
}
