package domain

// Section is a top-level application view.
type Section string

const (
	SectionDashboard     Section = "dashboard"
	SectionChat          Section = "chat"
	SectionAnnouncements Section = "announcements"
	SectionCommunity     Section = "community"
	SectionSupport       Section = "support"
	SectionReport        Section = "report"
	SectionAdmin         Section = "admin"
)

// NavItem is a navigation entry shown to the user.
type NavItem struct {
	ID    Section `json:"id"`
	Label string  `json:"label"`
}

var navOrder = []NavItem{
	{SectionDashboard, "Dashboard"},
	{SectionChat, "AI Assistant"},
	{SectionAnnouncements, "Announcements"},
	{SectionCommunity, "Community"},
	{SectionSupport, "Support"},
	{SectionReport, "Report"},
	{SectionAdmin, "Admin"},
}

// capabilities maps each role to the sections it may see. Built once.
var capabilities = buildCapabilities()

func buildCapabilities() map[Role][]NavItem {
	table := make(map[Role][]NavItem, 4)
	for _, role := range []Role{RoleStudent, RoleAdmin, RoleFaculty, RoleGuest} {
		items := make([]NavItem, 0, len(navOrder))
		for _, it := range navOrder {
			if it.ID == SectionAdmin && role != RoleAdmin {
				continue
			}
			items = append(items, it)
		}
		table[role] = items
	}
	return table
}

// VisibleSections returns the navigation items visible to role, in display order.
// Unknown roles see nothing.
func VisibleSections(role Role) []NavItem {
	items := capabilities[role]
	out := make([]NavItem, len(items))
	copy(out, items)
	return out
}

// CanView reports whether role has section in its navigation.
func CanView(role Role, section Section) bool {
	for _, it := range capabilities[role] {
		if it.ID == section {
			return true
		}
	}
	return false
}
