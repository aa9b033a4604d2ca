package domain

import (
	"strconv"
	"strings"
	"time"
)

// Communities lists the discussion boards a post can belong to.
var Communities = []string{
	"general",
	"coding",
	"placements",
	"academics",
	"projects",
	"internships",
	"doubts",
	"events",
}

// IsCommunity reports whether name is one of Communities.
func IsCommunity(name string) bool {
	for _, c := range Communities {
		if c == name {
			return true
		}
	}
	return false
}

// Author is the display identity attached to a post.
type Author struct {
	Name     string `json:"name" bson:"name"`
	Branch   string `json:"branch" bson:"branch"`
	Semester int    `json:"semester" bson:"semester"`
}

// Post is a community discussion item.
type Post struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	Author    Author    `json:"author" bson:"author"`
	Community string    `json:"community" bson:"community"`
	Tags      []string  `json:"tags" bson:"tags"`
	Upvotes   int       `json:"upvotes" bson:"upvotes"`
	Downvotes int       `json:"downvotes" bson:"downvotes"`
	Comments  int       `json:"comments" bson:"comments"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	UserVote  Vote      `json:"userVote" bson:"-"`
}

// Score is upvotes minus downvotes.
func (p Post) Score() int { return p.Upvotes - p.Downvotes }

// ParseTags splits a comma separated tag list, trimming blanks.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// FilterPosts keeps posts whose title, content or any tag contains term
// (case-insensitive) and which belong to community (FilterAll or "" for any).
func FilterPosts(items []Post, term, community string) []Post {
	needle := strings.ToLower(term)
	out := make([]Post, 0, len(items))
	for _, p := range items {
		matchesSearch := containsFold(p.Title, needle) || containsFold(p.Content, needle)
		if !matchesSearch {
			for _, tag := range p.Tags {
				if containsFold(tag, needle) {
					matchesSearch = true
					break
				}
			}
		}
		matchesCommunity := community == "" || community == FilterAll || p.Community == community
		if matchesSearch && matchesCommunity {
			out = append(out, p)
		}
	}
	return out
}

// TimeAgo renders a coarse relative age: "Just now", "5h ago", "2d ago".
func TimeAgo(ts, now time.Time) string {
	hours := int(now.Sub(ts).Hours())
	switch {
	case hours < 1:
		return "Just now"
	case hours < 24:
		return strconv.Itoa(hours) + "h ago"
	default:
		return strconv.Itoa(hours/24) + "d ago"
	}
}
