package catalog

import (
	"fmt"
	"time"

	"github.com/saketh8887/medconnect/internal/profile"
)

// DefaultPassword is the password of the seeded accounts.
const DefaultPassword = "Password@123"

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(fmt.Sprintf("catalog: bad date %q", s))
	}
	return t
}

func chapterQuiz(name string) []QuizQuestion {
	return []QuizQuestion{
		{
			ID:            "q-" + name + "-1",
			Question:      fmt.Sprintf("Which clinical presentation is most characteristic of pathology in %s?", name),
			Options:       []string{"Acute localized pain", "Referred sympathetic discharge", "Bilateral systemic fatigue", "Asymptomatic progression"},
			CorrectAnswer: 1,
			Explanation:   "Referred pain patterns are high-yield clinical indicators for visceral pathology.",
		},
		{
			ID:            "q-" + name + "-2",
			Question:      fmt.Sprintf("What is the gold standard diagnostic modality for evaluating %s?", name),
			Options:       []string{"High-resolution CT", "Contrast-enhanced MRI", "Bedside Ultrasound", "Serum biomarkers"},
			CorrectAnswer: 1,
			Explanation:   "MRI provides superior soft tissue contrast for detailed structural evaluation.",
		},
	}
}

func chapters(name, topicID string) []Chapter {
	return []Chapter{
		{ID: topicID + "c1", Title: "Foundational Principles", Description: "Introduction to the core mechanics of " + name + ".", QuizPool: chapterQuiz(name + " Foundations")},
		{ID: topicID + "c2", Title: "Clinical Presentation", Description: "How " + name + " manifests in symptomatic patients.", QuizPool: chapterQuiz(name + " Clinics")},
		{ID: topicID + "c3", Title: "Diagnostic Pathways", Description: "Standard protocols for verifying " + name + " integrity.", QuizPool: chapterQuiz(name + " Diagnostics")},
		{ID: topicID + "c4", Title: "Surgical Considerations", Description: "Interventional approaches to " + name + " pathology.", QuizPool: chapterQuiz(name + " Surgery")},
		{ID: topicID + "c5", Title: "Post-Operative Care", Description: "Rehabilitation and longitudinal management of " + name + ".", QuizPool: chapterQuiz(name + " Recovery")},
	}
}

func topic(id, title, desc, short string) Topic {
	return Topic{ID: id, Title: title, Description: desc, Chapters: chapters(short, id)}
}

var subjects = []Subject{
	{
		ID: "s1", Name: "Cardiology", Code: "CARD-101", Attendance: 92,
		Topics: []Topic{
			topic("s1t1", "Heart Valves & Mechanics", "Deep dive into mitral and aortic valve dynamics.", "Heart Valves"),
			topic("s1t2", "ECG Interpretation", "Understanding P-QRS-T patterns.", "ECG"),
			topic("s1t3", "Myocardial Infarction", "Pathophysiology of ST-elevation events.", "Infarction"),
			topic("s1t4", "Heart Failure", "Management of CHF and pulmonary edema.", "CHF"),
			topic("s1t5", "Congenital Defects", "VSD, ASD, and Tetralogy of Fallot.", "Congenital"),
		},
		Books:  []Book{{ID: "b1", Title: "Braunwald's Heart Disease", Author: "Eugene Braunwald"}},
		Videos: []Video{{ID: "v1", Title: "Valve Mechanics", Duration: "12:45"}},
	},
	{
		ID: "s2", Name: "Neurology", Code: "NEU-301", Attendance: 84,
		Topics: []Topic{
			topic("s2t1", "Synaptic Pathways", "Chemical signal propagation.", "Synapses"),
			topic("s2t2", "Cranial Nerve Mapping", "Study of the 12 cranial nerves.", "Cranial Nerves"),
			topic("s2t3", "Neurotransmitters", "Dopamine, Serotonin, and GABA dynamics.", "Neurotransmitters"),
			topic("s2t4", "Ischemic Stroke", "Diagnosis and thrombolytic therapy.", "Stroke"),
			topic("s2t5", "Basal Ganglia", "Motor control and Parkinson's disease.", "Basal Ganglia"),
		},
		Books:  []Book{{ID: "b2", Title: "Principles of Neural Science", Author: "Eric Kandel"}},
		Videos: []Video{{ID: "v2", Title: "Nerve Exam", Duration: "18:20"}},
	},
	{
		ID: "s3", Name: "Anatomy", Code: "ANAT-101", Attendance: 95,
		Topics: []Topic{
			topic("s3t1", "Thoracic Cavity", "Study of mediastinum.", "Thorax"),
			topic("s3t2", "Upper Limb Osteology", "Analysis of humerus and radius.", "Upper Limb"),
			topic("s3t3", "Abdominal Wall", "Inguinal canal and layers.", "Abdomen"),
			topic("s3t4", "Pelvic Anatomy", "Urogenital triangle and perineum.", "Pelvis"),
			topic("s3t5", "Head & Neck", "Pharyngeal arches and facial nerve.", "Head/Neck"),
		},
		Books:  []Book{{ID: "b3", Title: "Gray's Anatomy", Author: "Henry Gray"}},
		Videos: []Video{{ID: "v3", Title: "Thorax Dissection", Duration: "25:10"}},
	},
}

var calendarEvents = []CalendarEvent{
	{ID: "e1", Title: "Final Prof Examinations", Date: date("2025-05-15"), Type: EventExams, Status: "Upcoming", Location: "Examination Hall 1"},
}

var notices = []Notice{
	{ID: "n1", Title: "Mandatory Clinical Rotation", Content: "Posting in the Outreach Clinic is mandatory for all 3rd-year students.", Date: date("2025-03-10"), Category: "Urgent", Author: "Academic Dean"},
}

var hostel = HostelInfo{
	RoomNumber: "D-304",
	Block:      "Hostel No. 7",
	Roommates:  []string{"Ananya Iyer", "Priya Patel"},
	MessMenu: map[time.Weekday][]string{
		time.Monday:    {"Poha", "Rajma Chawal", "Paneer Butter Masala"},
		time.Tuesday:   {"Aloo Paratha", "Masala Dosa", "Veg Kadai"},
		time.Wednesday: {"Omelette", "Dal Makhani", "Chicken Curry"},
		time.Thursday:  {"Idli Sambar", "Veg Pulav", "Mixed Veg"},
		time.Friday:    {"Chole Bhature", "Kadhi Chawal", "Paneer Tikka"},
		time.Saturday:  {"Waffles", "Poori Sabzi", "Gulab Jamun"},
		time.Sunday:    {"Special Breakfast", "Biryani", "Fried Rice"},
	},
}

var clinicalDuties = []ClinicalDuty{
	{ID: "d1", Department: "General Medicine", Time: "09:00 - 16:00", Date: date("2025-03-10"), LogbookStatus: "Completed"},
}

var fees = []FeeRecord{
	{ID: "f1", Title: "Tuition Fee - Prof III", Amount: 150000, Date: date("2025-01-10"), Status: "Paid"},
}

var tasks = []AnatomyTask{
	{ID: "task1", Organ: "heart", Title: "Valve Recognition", Description: "Identify mitral valve in 3D.", Difficulty: "Beginner"},
}

var performance = []TaskPerformance{
	{TaskID: "task1", Attempts: 3, SuccessRate: 0.6, TimeSpent: 240 * time.Second},
}

// InitialUsers returns fresh copies of the accounts provisioned on first run.
func InitialUsers() []*profile.UserProfile {
	return []*profile.UserProfile{
		{
			ID:               "admin-01",
			Name:             "Institutional Admin",
			Role:             profile.RoleAdmin,
			College:          "Central Administration",
			Year:             "System Administrator",
			Avatar:           "Admin",
			Email:            "admin@medconnect.edu",
			Password:         DefaultPassword,
			BloodGroup:       "N/A",
			EmergencyContact: "000",
			ContactNumber:    "0000000000",
			CGPA:             "4.0",
			Percentage:       "100%",
		},
		{
			ID:               "u1",
			Name:             "Sarah Sharma",
			Role:             profile.RoleStudent,
			College:          "All India Institute of Medical Sciences (AIIMS), New Delhi",
			Year:             "MBBS Phase III",
			Avatar:           "Sarah",
			Email:            "sarah.s@aiims.edu.in",
			Password:         DefaultPassword,
			BloodGroup:       "B+",
			EmergencyContact: "+91 98765-43210",
			ContactNumber:    "9876543210",
			CGPA:             "8.5",
			Percentage:       "82%",
		},
	}
}
