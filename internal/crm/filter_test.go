package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func leadNames(leads []Lead) []string {
	names := make([]string, len(leads))
	for i, l := range leads {
		names[i] = l.Name
	}
	return names
}

func TestFilterLeads(t *testing.T) {
	leads := []Lead{
		{ID: "1", Name: "Priya Sharma", Phone: "+91 98765 43210", Email: "priya@example.com"},
		{ID: "2", Name: "Rahul Verma", Phone: "+91 91234 56789"},
		{ID: "3", Name: "Anita Desai", Phone: "+91 99887 76655", Email: "anita.d@mail.in"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps all", "", []string{"Priya Sharma", "Rahul Verma", "Anita Desai"}},
		{"whitespace query keeps all", "   ", []string{"Priya Sharma", "Rahul Verma", "Anita Desai"}},
		{"name case-insensitive", "rahul", []string{"Rahul Verma"}},
		{"partial name", "an", []string{"Anita Desai"}},
		{"phone substring", "91234", []string{"Rahul Verma"}},
		{"email", "MAIL.IN", []string{"Anita Desai"}},
		{"no match", "zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, leadNames(FilterLeads(leads, tt.query)))
		})
	}
}

func TestFilterProperties(t *testing.T) {
	props := []Property{
		{ID: "1", Title: "2BHK in Koramangala", Location: "Bangalore"},
		{ID: "2", Title: "Sea view villa", Location: "Goa"},
		{ID: "3", Title: "Studio near metro", Location: "Bangalore"},
	}

	got := FilterProperties(props, "bangalore")
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	got = FilterProperties(props, "VILLA")
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	assert.Len(t, FilterProperties(props, ""), 3)
}

func TestFilterConversations(t *testing.T) {
	convs := []Conversation{
		{ID: "1", LeadName: "Priya", LeadPhone: "98765", LastMessage: "Is the flat still available?"},
		{ID: "2", LeadName: "Rahul", LeadPhone: "91234", LastMessage: "Thanks"},
	}

	assert.Len(t, FilterConversations(convs, "available"), 1)
	assert.Len(t, FilterConversations(convs, "rahul"), 1)
	assert.Len(t, FilterConversations(convs, "912"), 1)
	assert.Len(t, FilterConversations(convs, ""), 2)
	assert.Empty(t, FilterConversations(convs, "villa"))
}

func TestFilterReviews(t *testing.T) {
	reviews := []Review{
		{ID: "a", TenantMessage: "Can I bring a dog?", AIResponse: "Pets are allowed."},
		{ID: "b", TenantMessage: "Is parking included?", AIResponse: "One covered spot."},
	}
	got := FilterReviews(reviews, "pets")
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestRemoveReview(t *testing.T) {
	reviews := []Review{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	got := RemoveReview(reviews, "b")
	assert.Equal(t, []Review{{ID: "a"}, {ID: "c"}}, got)
	assert.Len(t, reviews, 3, "input must not be modified")

	assert.Len(t, RemoveReview(reviews, "missing"), 3)
}
