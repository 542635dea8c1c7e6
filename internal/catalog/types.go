package catalog

import "time"

// QuizQuestion is one multiple-choice item in a chapter's pool.
type QuizQuestion struct {
	ID            string
	Question      string
	Options       []string
	CorrectAnswer int
	Explanation   string
}

// Chapter is the smallest unit of study. Completing its quiz marks it done.
type Chapter struct {
	ID          string
	Title       string
	Description string
	QuizPool    []QuizQuestion
}

// Topic groups chapters within a subject.
type Topic struct {
	ID          string
	Title       string
	Description string
	Chapters    []Chapter
}

// Book is a library entry attached to a subject.
type Book struct {
	ID     string
	Title  string
	Author string
}

// Video is a recorded lecture attached to a subject.
type Video struct {
	ID       string
	Title    string
	Duration string
}

// Subject is a course with topics, reading and lectures.
type Subject struct {
	ID         string
	Name       string
	Code       string
	Attendance int
	Topics     []Topic
	Books      []Book
	Videos     []Video
}

// EventType classifies calendar entries.
type EventType string

const (
	EventExams    EventType = "Exams"
	EventHolidays EventType = "Holidays"
	EventPrograms EventType = "Programs"
)

// CalendarEvent is a dated academic event.
type CalendarEvent struct {
	ID       string
	Title    string
	Date     time.Time
	Type     EventType
	Status   string
	Location string
}

// Notice is a notice-board post.
type Notice struct {
	ID       string
	Title    string
	Content  string
	Date     time.Time
	Category string
	Author   string
}

// HostelInfo is the student's accommodation record.
type HostelInfo struct {
	RoomNumber string
	Block      string
	Roommates  []string
	// MessMenu is keyed by weekday.
	MessMenu map[time.Weekday][]string
}

// ClinicalDuty is one ward posting.
type ClinicalDuty struct {
	ID            string
	Department    string
	Time          string
	Date          time.Time
	Notes         string
	LogbookStatus string
}

// FeeRecord is one fee line item.
type FeeRecord struct {
	ID     string
	Title  string
	Amount int
	Date   time.Time
	Status string
}

// AnatomyTask is a simulation exercise.
type AnatomyTask struct {
	ID          string
	Organ       string
	Title       string
	Description string
	Difficulty  string
}

// TaskPerformance summarises attempts at an anatomy task.
type TaskPerformance struct {
	TaskID      string
	Attempts    int
	SuccessRate float64
	TimeSpent   time.Duration
}
