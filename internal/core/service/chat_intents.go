package service

import (
	"strings"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

type intentRule struct {
	intent   domain.Intent
	keywords []string
}

// intentRules are checked in order; the first rule with a matching keyword wins.
var intentRules = []intentRule{
	{domain.IntentSchedule, []string{"schedule", "class", "timetable"}},
	{domain.IntentLibrary, []string{"library", "where"}},
	{domain.IntentGrades, []string{"gpa", "marks", "grade"}},
	{domain.IntentWellbeing, []string{"stress", "anxiety", "help", "mental"}},
	{domain.IntentEvents, []string{"event", "fest", "activity"}},
	{domain.IntentSyllabus, []string{"syllabus", "course", "subject"}},
}

// ClassifyIntent maps a message to an intent by case-insensitive keyword containment.
func ClassifyIntent(message string) domain.Intent {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}
	return domain.IntentFallback
}

var cannedReplies = map[domain.Intent]string{
	domain.IntentSchedule: "Based on your current semester, your next class is Engineering Mathematics at 2:30 PM in room GH-301. Here's your schedule for today:\n\n" +
		"• 9:00 AM - Data Structures (CS-201)\n• 11:00 AM - Digital Electronics Lab (EE-105)\n• 2:30 PM - Engineering Mathematics (GH-301)\n• 4:00 PM - Programming Lab (CS-Lab-2)\n\n" +
		"Would you like me to set reminders for any of these classes?",

	domain.IntentLibrary: "The Central Library is located in the main academic block, Ground Floor, Section A. It's currently open from 8:00 AM to 8:00 PM (extended hours during exams). \n\n" +
		"Key facilities:\n• Study halls with 200+ seats\n• Computer lab with internet access\n• Digital library with e-books\n• Group study rooms (bookable)\n\n" +
		"Need directions to get there from your current location?",

	domain.IntentGrades: "To calculate your GPA at MIT Muzaffarpur:\n\n" +
		"1. Each subject has credit points (usually 3-4 credits)\n2. Grade points: A=10, B=8, C=6, D=4, F=0\n3. Formula: GPA = (Sum of Grade Points × Credits) / Total Credits\n\n" +
		"Example:\n• Math (4 credits, A grade): 4×10 = 40\n• Physics (3 credits, B grade): 3×8 = 24\n• Total: 64 points ÷ 7 credits = 9.14 GPA\n\n" +
		"Want help calculating your specific GPA?",

	domain.IntentWellbeing: "I understand you're going through a tough time. Your mental health matters, and it's okay to seek support. Here are some immediate resources:\n\n" +
		"🌟 Campus Counselor: Dr. Priya Sharma (Available Mon-Fri, 10 AM-4 PM)\n📞 24/7 Helpline: 1800-123-4567\n🧘 Relaxation techniques: Try the 4-7-8 breathing method\n\n" +
		"Immediate steps:\n1. Take slow, deep breaths\n2. Talk to a trusted friend or family member\n3. Consider scheduling a counseling session\n\n" +
		"Remember: You're not alone, and seeking help is a sign of strength. Would you like me to help you schedule a counseling appointment?",

	domain.IntentEvents: "Here are the upcoming events at MIT Muzaffarpur:\n\n" +
		"🎓 **This Week:**\n• TechnoMIT 2024 Registration (Deadline: Friday)\n• Inter-branch Cricket Tournament (Starts Monday)\n• Guest Lecture: AI in Engineering (Wednesday, 3 PM)\n\n" +
		"🎨 **Next Week:**\n• Cultural Night (Saturday, 7 PM)\n• Robotics Workshop (3-day workshop)\n• Career Fair (Multiple companies participating)\n\n" +
		"Would you like more details about any specific event or help with registration?",

	domain.IntentSyllabus: "I can help you with syllabus information! Which subject are you asking about? Here are some popular ones:\n\n" +
		"📚 **Current Semester Subjects:**\n• Data Structures & Algorithms\n• Digital Electronics\n• Engineering Mathematics-III\n• Computer Programming\n• Engineering Graphics\n\n" +
		"For detailed syllabus, previous year papers, and reference books, please specify the subject. I can also help you create a study plan!",

	domain.IntentFallback: "Thank you for your question! I'm here to help with all aspects of your college life at MIT Muzaffarpur. " +
		"I can assist with academic queries, campus navigation, event information, study support, and mental health resources. " +
		"Could you please provide more details about what you'd like to know?",
}

// CannedReply returns the fixed reply for intent.
func CannedReply(intent domain.Intent) string {
	if r, ok := cannedReplies[intent]; ok {
		return r
	}
	return cannedReplies[domain.IntentFallback]
}
