// Package crm holds the rental CRM records shown by the dashboard and the
// client-side logic applied to them.
package crm

import "time"

// LeadStatus is the pipeline stage of a lead.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadHot       LeadStatus = "hot"
	LeadWarm      LeadStatus = "warm"
	LeadCold      LeadStatus = "cold"
	LeadConverted LeadStatus = "converted"
	LeadLost      LeadStatus = "lost"
)

// LeadStatuses lists statuses in display order.
var LeadStatuses = []LeadStatus{LeadNew, LeadHot, LeadWarm, LeadCold, LeadConverted, LeadLost}

// Lead is a prospective tenant.
type Lead struct {
	ID                     string     `json:"id"`
	Name                   string     `json:"name"`
	Phone                  string     `json:"phone"`
	Email                  string     `json:"email,omitempty"`
	Score                  int        `json:"lead_score"`
	Status                 LeadStatus `json:"status"`
	LocationPreference     string     `json:"location_preference,omitempty"`
	PropertyTypePreference string     `json:"property_type_preference,omitempty"`
	BudgetMin              int        `json:"budget_min,omitempty"`
	BudgetMax              int        `json:"budget_max,omitempty"`
	BedroomsPreference     int        `json:"bedrooms_preference,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
	LastContact            *time.Time `json:"last_contact,omitempty"`
	Notes                  string     `json:"notes,omitempty"`
}

// PropertyType is the kind of listing.
type PropertyType string

const (
	PropertyApartment  PropertyType = "apartment"
	PropertyHouse      PropertyType = "house"
	PropertyVilla      PropertyType = "villa"
	PropertyStudio     PropertyType = "studio"
	PropertyCommercial PropertyType = "commercial"
)

// PropertyTypes lists property types in display order.
var PropertyTypes = []PropertyType{PropertyApartment, PropertyHouse, PropertyVilla, PropertyStudio, PropertyCommercial}

// Availability is the occupancy state of a property.
type Availability string

const (
	Available   Availability = "available"
	Occupied    Availability = "occupied"
	Maintenance Availability = "maintenance"
)

// Property is a rental listing.
type Property struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Type          PropertyType `json:"property_type"`
	Location      string       `json:"location"`
	Address       string       `json:"address"`
	Rent          int          `json:"rent_amount"`
	Deposit       int          `json:"deposit_amount"`
	Bedrooms      int          `json:"bedrooms"`
	Bathrooms     int          `json:"bathrooms"`
	AreaSqft      int          `json:"area_sqft"`
	Amenities     []string     `json:"amenities"`
	Images        []string     `json:"images"`
	Availability  Availability `json:"availability_status"`
	AvailableFrom *time.Time   `json:"available_from,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// ConversationStatus is the state of a chat thread.
type ConversationStatus string

const (
	ConversationActive  ConversationStatus = "active"
	ConversationPending ConversationStatus = "pending"
	ConversationClosed  ConversationStatus = "closed"
)

// Conversation is a chat thread with a lead.
type Conversation struct {
	ID              string             `json:"id"`
	LeadID          string             `json:"lead_id"`
	LeadName        string             `json:"lead_name"`
	LeadPhone       string             `json:"lead_phone"`
	Status          ConversationStatus `json:"status"`
	LastMessage     string             `json:"last_message"`
	LastMessageTime time.Time          `json:"last_message_time"`
	UnreadCount     int                `json:"unread_count"`
	CreatedAt       time.Time          `json:"created_at"`
}

// Sender identifies who wrote a message.
type Sender string

const (
	SenderTenant Sender = "tenant"
	SenderAI     Sender = "ai"
	SenderBroker Sender = "broker"
)

// Message is one entry of a conversation.
type Message struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversation_id"`
	Sender         Sender     `json:"sender"`
	Content        string     `json:"content"`
	Timestamp      time.Time  `json:"timestamp"`
	Status         string     `json:"status"` // sent, delivered, read
	AIContext      *AIContext `json:"ai_context,omitempty"`
}

// AIContext is what the assistant extracted from a message.
type AIContext struct {
	Intent              string         `json:"intent"`
	Entities            map[string]any `json:"entities"`
	Sentiment           string         `json:"sentiment"`
	Confidence          float64        `json:"confidence"`
	SuggestedProperties []string       `json:"suggested_properties,omitempty"`
}

// ReviewStatus is the broker decision on an AI response.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewEdited   ReviewStatus = "edited"
	ReviewRejected ReviewStatus = "rejected"
)

// ReviewStatuses lists the review queue tabs in display order.
var ReviewStatuses = []ReviewStatus{ReviewPending, ReviewApproved, ReviewEdited, ReviewRejected}

// Review is an AI response held for broker approval.
type Review struct {
	ID              string       `json:"id"`
	ConversationID  string       `json:"conversation_id"`
	MessageID       string       `json:"message_id"`
	TenantMessage   string       `json:"tenant_message"`
	AIResponse      string       `json:"ai_response"`
	ComplexityScore int          `json:"complexity_score"`
	FlaggedReasons  []string     `json:"flagged_reasons"`
	Status          ReviewStatus `json:"status"`
	BrokerNotes     string       `json:"broker_notes,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	ReviewedAt      *time.Time   `json:"reviewed_at,omitempty"`
	ReviewedBy      string       `json:"reviewed_by,omitempty"`
}

// DashboardStats are the headline figures of the dashboard.
type DashboardStats struct {
	TotalLeads          int     `json:"total_leads"`
	HotLeads            int     `json:"hot_leads"`
	ActiveConversations int     `json:"active_conversations"`
	PendingReviews      int     `json:"pending_reviews"`
	ConversionRate      float64 `json:"conversion_rate"`
	AvgResponseTime     float64 `json:"avg_response_time"` // minutes
}

// Page is one page of a listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// HasNext reports whether a later page exists.
func (p *Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// LeadFilters narrows a lead listing server-side. Zero values are unset.
type LeadFilters struct {
	Status       LeadStatus
	MinScore     int
	MaxScore     int
	Location     string
	PropertyType PropertyType
	Search       string
}

// PropertyFilters narrows a property listing server-side. Zero values are unset.
type PropertyFilters struct {
	Type         PropertyType
	Location     string
	MinRent      int
	MaxRent      int
	Bedrooms     int
	Availability Availability
	Search       string
}
