package seed

import "github.com/Aman-Kr09/OrganicClasses/internal/app/models"

type sampleTeacher struct {
	name     string
	email    string
	password string
}

func sampleTeachers() []sampleTeacher {
	return []sampleTeacher{
		{name: "Dr. Rajesh Kumar", email: "rajesh@organicclasses.com", password: "teacher123"},
		{name: "Ms. Priya Sharma", email: "priya@organicclasses.com", password: "teacher123"},
	}
}

var (
	weekdays     = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	weekdaysPlus = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

func sampleCourses() []*models.Course {
	courses := []*models.Course{
		{
			Title:       "Science Foundation",
			Description: "Complete foundation course for Science students preparing for board exams with practical approach.",
			Class:       "9th-10th",
			Subjects:    []string{"Physics", "Chemistry", "Mathematics", "Biology"},
			Duration:    "12 months",
			BatchType:   models.BatchRegular,
			Teacher:     "Dr. Rajesh Kumar",
			Fee:         models.Fee{Monthly: 1500, Yearly: 15000, Currency: models.DefaultCurrency},
			Timing:      "Mon-Fri: 4:00 PM - 6:00 PM",
			Schedule:    models.Schedule{Days: weekdays, StartTime: "16:00", EndTime: "18:00"},
			Capacity:    25,
			Enrolled:    18,
			Syllabus: []models.SyllabusItem{
				{Topic: "Physics Fundamentals", Description: "Basic concepts of motion, force, and energy", Duration: "2 months"},
				{Topic: "Chemistry Basics", Description: "Atomic structure, periodic table, and chemical bonding", Duration: "2 months"},
			},
			Features: []string{"Regular Tests", "Doubt Clearing Sessions", "Study Material Provided", "Progress Tracking"},
			Level:    models.LevelBeginner,
			Tags:     []string{"science", "foundation", "board-exam"},
		},
		{
			Title:       "Commerce Excellence",
			Description: "Comprehensive Commerce course for higher secondary students with focus on practical applications.",
			Class:       "11th-12th",
			Subjects:    []string{"Accountancy", "Economics", "Business Studies"},
			Duration:    "24 months",
			BatchType:   models.BatchRegular,
			Teacher:     "Ms. Priya Sharma",
			Fee:         models.Fee{Monthly: 1800, Yearly: 18000, Currency: models.DefaultCurrency},
			Timing:      "Mon-Sat: 2:00 PM - 4:00 PM",
			Schedule:    models.Schedule{Days: weekdaysPlus, StartTime: "14:00", EndTime: "16:00"},
			Capacity:    20,
			Enrolled:    15,
			Features:    []string{"Case Study Method", "Real-world Examples", "Mock Tests", "Career Guidance"},
			Level:       models.LevelIntermediate,
			Tags:        []string{"commerce", "higher-secondary", "practical"},
		},
		{
			Title:       "Government School Special",
			Description: "Special batch designed for government school students with affordable fees and extra support.",
			Class:       "8th-10th",
			Subjects:    []string{"Physics", "Chemistry", "Mathematics"},
			Duration:    "10 months",
			BatchType:   models.BatchGovernmentSchool,
			Teacher:     "Dr. Rajesh Kumar",
			Fee:         models.Fee{Monthly: 800, Yearly: 8000, Currency: models.DefaultCurrency},
			Timing:      "Sat-Sun: 10:00 AM - 1:00 PM",
			Schedule:    models.Schedule{Days: []string{"Saturday", "Sunday"}, StartTime: "10:00", EndTime: "13:00"},
			Capacity:    30,
			Enrolled:    22,
			Features:    []string{"Free Study Material", "Extra Doubt Sessions", "Scholarship Guidance", "Parent Counseling"},
			Level:       models.LevelBeginner,
			Tags:        []string{"government-school", "affordable", "special-batch"},
		},
		{
			Title:       "Science Advanced (Medical Prep)",
			Description: "Advanced Science course for competitive exam preparation with focus on NEET/JEE.",
			Class:       "11th-12th",
			Subjects:    []string{"Physics", "Chemistry", "Biology"},
			Duration:    "24 months",
			BatchType:   models.BatchMedical,
			Teacher:     "Dr. Rajesh Kumar",
			Fee:         models.Fee{Monthly: 2500, Yearly: 25000, Currency: models.DefaultCurrency},
			Timing:      "Mon-Fri: 6:00 PM - 8:00 PM",
			Schedule:    models.Schedule{Days: weekdays, StartTime: "18:00", EndTime: "20:00"},
			Capacity:    15,
			Enrolled:    12,
			Features:    []string{"NEET/JEE Focused", "Mock Tests", "Previous Year Papers", "Rank Prediction"},
			Level:       models.LevelAdvanced,
			Tags:        []string{"medical", "neet", "competitive"},
		},
	}

	for _, c := range courses {
		c.IsActive = true
		c.ApplyDefaults()
	}
	return courses
}

func sampleInquiries() []*models.Inquiry {
	inquiries := []*models.Inquiry{
		{
			Name:     "Rahul Sharma",
			Phone:    "9876543210",
			Email:    "rahul@example.com",
			Class:    "10th",
			Subject:  "Physics",
			Message:  "I need help with Physics for board exams",
			Status:   models.InquiryStatusNew,
			Priority: models.PriorityMedium,
		},
		{
			Name:     "Priya Gupta",
			Phone:    "9876543211",
			Email:    "priya@example.com",
			Class:    "12th",
			Subject:  "Chemistry",
			Message:  "Looking for Chemistry coaching for competitive exams",
			Status:   models.InquiryStatusContacted,
			Priority: models.PriorityHigh,
		},
		{
			Name:     "Amit Kumar",
			Phone:    "9876543212",
			Class:    "9th",
			Subject:  "Mathematics",
			Message:  "Need help with Mathematics fundamentals",
			Status:   models.InquiryStatusNew,
			Priority: models.PriorityMedium,
		},
		{
			Name:     "Sneha Patel",
			Phone:    "9876543213",
			Email:    "sneha@example.com",
			Class:    "11th",
			Subject:  "Accountancy",
			Message:  "Want to join Commerce batch",
			Status:   models.InquiryStatusEnrolled,
			Priority: models.PriorityLow,
		},
		{
			Name:     "Vikash Singh",
			Phone:    "9876543214",
			Class:    "8th",
			Subject:  "General Inquiry",
			Message:  "Information about government school batch",
			Status:   models.InquiryStatusContacted,
			Priority: models.PriorityMedium,
			Source:   models.SourcePhone,
		},
	}

	for _, i := range inquiries {
		i.ApplyDefaults()
	}
	return inquiries
}
