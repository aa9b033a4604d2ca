package service

import (
	"time"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

var todaySchedule = []domain.ScheduleItem{
	{Time: "9:00 AM", Subject: "Data Structures", Room: "CS-201", Type: "Lecture"},
	{Time: "11:00 AM", Subject: "Digital Electronics", Room: "EE-105", Type: "Lab"},
	{Time: "2:30 PM", Subject: "Engineering Mathematics", Room: "GH-301", Type: "Tutorial"},
	{Time: "4:00 PM", Subject: "Programming Lab", Room: "CS-Lab-2", Type: "Practical"},
}

var quickActions = []domain.QuickAction{
	{Title: "View Full Schedule", Description: "Complete timetable"},
	{Title: "Campus Map", Description: "Navigate buildings"},
	{Title: "Digital Library", Description: "Access e-books"},
	{Title: "Study Groups", Description: "Find study partners"},
	{Title: "Emergency Contacts", Description: "Important numbers"},
	{Title: "Forms & Documents", Description: "Download forms"},
	{Title: "WiFi Access", Description: "Network credentials"},
	{Title: "Mess Menu", Description: "Today's meals"},
	{Title: "Transport", Description: "Bus schedules"},
	{Title: "Health Center", Description: "Medical services"},
	{Title: "Book Catalog", Description: "Search library"},
	{Title: "Maintenance", Description: "Report issues"},
}

// SupportDirectory returns the mental-health resource directory.
func SupportDirectory() domain.SupportDirectory {
	return domain.SupportDirectory{
		Resources: []domain.SupportResource{
			{
				Title:        "Campus Counselor",
				Description:  "Dr. Priya Sharma - Professional counseling services",
				Availability: "Mon-Fri, 10 AM - 4 PM",
				Contact:      "Extension: 2547",
				Type:         "professional",
			},
			{
				Title:        "24/7 Crisis Helpline",
				Description:  "Bihar Mental Health Helpline",
				Availability: "Available 24/7",
				Contact:      "1800-123-4567",
				Type:         "emergency",
				Urgent:       true,
			},
			{
				Title:        "Peer Support Group",
				Description:  "Student-led support meetings",
				Availability: "Wednesdays, 6 PM",
				Contact:      "Room 204, Student Center",
				Type:         "peer",
			},
			{
				Title:        "Online Counseling",
				Description:  "Video/chat sessions with licensed therapists",
				Availability: "Book online anytime",
				Contact:      "campus.counseling@mit.edu",
				Type:         "online",
			},
		},
		SelfCare: []domain.SelfCareActivity{
			{Title: "Mindfulness", Description: "5-minute guided meditation", Action: "Start Session"},
			{Title: "Breathing Exercise", Description: "4-7-8 relaxation technique", Action: "Begin Exercise"},
			{Title: "Mood Tracker", Description: "Track your daily emotions", Action: "Log Mood"},
			{Title: "Mental Health Tips", Description: "Daily wellness articles", Action: "Read More"},
		},
		EmergencyProtocol: []string{
			"If you're having thoughts of self-harm, please reach out immediately",
			"Call 1800-123-4567 (24/7 Crisis Helpline)",
			"Visit the campus medical center",
			"Contact a trusted friend, family member, or counselor",
			"Remember: You are not alone, and help is available",
		},
	}
}

// SeedAnnouncements returns the initial announcement board relative to now.
func SeedAnnouncements(now time.Time) []domain.Announcement {
	ago := func(d time.Duration) time.Time { return now.Add(-d).UTC() }
	return []domain.Announcement{
		{
			ID: 1, Title: "Mid-term Exam Schedule Released",
			Content:  "Check your dashboard for updated exam timetables",
			Priority: domain.PriorityHigh, Timestamp: "2 hours ago", Department: "Academic Office",
			PublishedAt: ago(2 * time.Hour),
		},
		{
			ID: 2, Title: "Library Extended Hours",
			Content:  "Library will remain open until 10 PM during exam week",
			Priority: domain.PriorityMedium, Timestamp: "5 hours ago", Department: "Library",
			PublishedAt: ago(5 * time.Hour),
		},
		{
			ID: 3, Title: "Technical Fest Registration Open",
			Content:  "Register for TechnoMIT 2024 - Bihar's largest tech fest",
			Priority: domain.PriorityLow, Timestamp: "1 day ago", Department: "Student Activities",
			PublishedAt: ago(24 * time.Hour),
		},
		{
			ID: 4, Title: "Placement Drive - TCS",
			Content:  "Tata Consultancy Services campus recruitment for final year students. Eligibility: 60% and above in all semesters.",
			Priority: domain.PriorityHigh, Timestamp: "3 hours ago", Department: "Placement Cell",
			Category: "placement", Location: "Auditorium", Deadline: "Tomorrow 5:00 PM",
			PublishedAt: ago(3 * time.Hour),
		},
		{
			ID: 5, Title: "Workshop: Machine Learning Fundamentals",
			Content:  "3-day intensive workshop on ML basics, Python programming, and hands-on projects. Limited seats available.",
			Priority: domain.PriorityMedium, Timestamp: "6 hours ago", Department: "Computer Science",
			Category: "workshop", Location: "CS Lab 1", Deadline: "Registration closes today",
			PublishedAt: ago(6 * time.Hour),
		},
		{
			ID: 6, Title: "Hostel Mess Menu Change",
			Content:  "New weekly menu introduced with more variety. Special diet options available on request.",
			Priority: domain.PriorityLow, Timestamp: "12 hours ago", Department: "Hostel Administration",
			Category:    "hostel",
			PublishedAt: ago(12 * time.Hour),
		},
		{
			ID: 7, Title: "Anti-Ragging Committee Meeting",
			Content:  "Monthly meeting to review campus safety. Students can submit anonymous feedback through the companion app.",
			Priority: domain.PriorityMedium, Timestamp: "1 day ago", Department: "Student Welfare",
			Category:    "safety",
			PublishedAt: ago(25 * time.Hour),
		},
		{
			ID: 8, Title: "Blood Donation Camp",
			Content:  "Annual blood donation drive in collaboration with AIIMS Patna. All healthy students welcome to participate.",
			Priority: domain.PriorityMedium, Timestamp: "2 days ago", Department: "NSS",
			Category: "social", Location: "Medical Center", Deadline: "This Friday",
			PublishedAt: ago(48 * time.Hour),
		},
	}
}

// SeedPosts returns the initial community board relative to now.
func SeedPosts(now time.Time) []domain.Post {
	return []domain.Post{
		{
			ID:        "1",
			Title:     "Looking for study group for Data Structures",
			Content:   "Hey everyone! I'm struggling with DSA concepts. Anyone interested in forming a study group? We can meet regularly and solve problems together.",
			Author:    domain.Author{Name: "Priya Sharma", Branch: "CSE", Semester: 3},
			Community: "academics",
			Tags:      []string{"DSA", "StudyGroup", "CSE"},
			Upvotes:   12, Downvotes: 1, Comments: 8,
			Timestamp: now.Add(-2 * time.Hour).UTC(),
		},
		{
			ID:        "2",
			Title:     "Internship opportunity at local startup",
			Content:   "Found this great internship opportunity for web development. They're looking for React developers. DM me if interested!",
			Author:    domain.Author{Name: "Rahul Kumar", Branch: "CSE", Semester: 6},
			Community: "internships",
			Tags:      []string{"Internship", "WebDev", "React"},
			Upvotes:   25, Comments: 15,
			Timestamp: now.Add(-4 * time.Hour).UTC(),
		},
		{
			ID:        "3",
			Title:     "Anyone working on IoT projects?",
			Content:   "I'm building a smart home automation system using Arduino. Would love to collaborate or get some advice from seniors.",
			Author:    domain.Author{Name: "Amit Singh", Branch: "ECE", Semester: 4},
			Community: "projects",
			Tags:      []string{"IoT", "Arduino", "Collaboration"},
			Upvotes:   8, Comments: 5,
			Timestamp: now.Add(-6 * time.Hour).UTC(),
		},
	}
}
