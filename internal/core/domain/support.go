package domain

// SupportResource is a professional or peer support channel.
type SupportResource struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Availability string `json:"availability"`
	Contact      string `json:"contact"`
	Type         string `json:"type"`
	Urgent       bool   `json:"urgent"`
}

// SelfCareActivity is a self-guided wellness exercise.
type SelfCareActivity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// SupportDirectory is the full mental-health view.
type SupportDirectory struct {
	Resources         []SupportResource  `json:"resources"`
	SelfCare          []SelfCareActivity `json:"selfCare"`
	EmergencyProtocol []string           `json:"emergencyProtocol"`
}

// ScheduleItem is one class in today's timetable.
type ScheduleItem struct {
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Room    string `json:"room"`
	Type    string `json:"type"`
}

// QuickStat is a headline number on the dashboard.
type QuickStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// QuickAction is a shortcut tile on the dashboard.
type QuickAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Dashboard is the landing view.
type Dashboard struct {
	QuickStats          []QuickStat    `json:"quickStats"`
	TodaySchedule       []ScheduleItem `json:"todaySchedule"`
	RecentAnnouncements []Announcement `json:"recentAnnouncements"`
	QuickActions        []QuickAction  `json:"quickActions"`
}

// ActivityEntry is a line in the admin recent-activity feed.
type ActivityEntry struct {
	User   string `json:"user"`
	Action string `json:"action"`
	Time   string `json:"time"`
}

// AdminOverview is the admin dashboard payload. Non-admins get AccessDenied set
// and nothing else.
type AdminOverview struct {
	AccessDenied   bool            `json:"accessDenied"`
	Message        string          `json:"message,omitempty"`
	Stats          []QuickStat     `json:"stats,omitempty"`
	RecentActivity []ActivityEntry `json:"recentActivity,omitempty"`
}
