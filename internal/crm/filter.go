package crm

import "strings"

// FilterLeads keeps leads whose name or email contains query
// (case-insensitive) or whose phone contains it verbatim.
func FilterLeads(leads []Lead, query string) []Lead {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return leads
	}
	raw := strings.TrimSpace(query)
	return filter(leads, func(l Lead) bool {
		return containsFold(l.Name, q) ||
			strings.Contains(l.Phone, raw) ||
			containsFold(l.Email, q)
	})
}

// FilterProperties keeps properties whose title or location contains query.
func FilterProperties(props []Property, query string) []Property {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return props
	}
	return filter(props, func(p Property) bool {
		return containsFold(p.Title, q) || containsFold(p.Location, q)
	})
}

// FilterConversations keeps conversations matching the lead name, phone or
// last message.
func FilterConversations(convs []Conversation, query string) []Conversation {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return convs
	}
	raw := strings.TrimSpace(query)
	return filter(convs, func(c Conversation) bool {
		return containsFold(c.LeadName, q) ||
			strings.Contains(c.LeadPhone, raw) ||
			containsFold(c.LastMessage, q)
	})
}

// FilterReviews keeps reviews whose tenant message or AI response contains query.
func FilterReviews(reviews []Review, query string) []Review {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return reviews
	}
	return filter(reviews, func(r Review) bool {
		return containsFold(r.TenantMessage, q) || containsFold(r.AIResponse, q)
	})
}

// RemoveReview returns reviews without the one with id.
func RemoveReview(reviews []Review, id string) []Review {
	return filter(reviews, func(r Review) bool { return r.ID != id })
}

func containsFold(s, lowerQuery string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), lowerQuery)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
