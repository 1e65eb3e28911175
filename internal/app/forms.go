// internal/app/forms.go
package app

import (
	"github.com/llehouerou/rentflow/internal/api"
	"github.com/llehouerou/rentflow/internal/crm"
	"github.com/llehouerou/rentflow/internal/ui/form"
)

func propertyTypeChoices() []string {
	out := make([]string, len(crm.PropertyTypes))
	for i, t := range crm.PropertyTypes {
		out[i] = string(t)
	}
	return out
}

func leadFields() []form.Field {
	return []form.Field{
		{Key: "name", Label: "Full name", Required: true},
		{Key: "phone", Label: "Phone number", Placeholder: "+91 98765 43210", Required: true},
		{Key: "email", Label: "Email address"},
		{Key: "location", Label: "Preferred locality", Placeholder: "Andheri, Mumbai", Required: true},
		{Key: "type", Label: "Property type", Default: string(crm.PropertyApartment), Choices: propertyTypeChoices()},
		{Key: "bedrooms", Label: "Bedrooms", Default: "2", Numeric: true,
			Skip: func(v form.Values) bool { return v["type"] == string(crm.PropertyCommercial) }},
		{Key: "budget_min", Label: "Minimum budget (₹)", Required: true, Numeric: true},
		{Key: "budget_max", Label: "Maximum budget (₹)", Required: true, Numeric: true},
		{Key: "notes", Label: "Additional notes"},
	}
}

func newLead(v form.Values) api.NewLead {
	return api.NewLead{
		Name:                   v["name"],
		Phone:                  v["phone"],
		Email:                  v["email"],
		LocationPreference:     v["location"],
		PropertyTypePreference: crm.PropertyType(v["type"]),
		BedroomsPreference:     v.Int("bedrooms"),
		BudgetMin:              v.Int("budget_min"),
		BudgetMax:              v.Int("budget_max"),
		Notes:                  v["notes"],
	}
}

func propertyFields() []form.Field {
	noRooms := func(v form.Values) bool { return v["type"] == string(crm.PropertyCommercial) }
	return []form.Field{
		{Key: "title", Label: "Property title", Placeholder: "Spacious 2BHK in Bandra West", Required: true},
		{Key: "description", Label: "Description", Required: true},
		{Key: "type", Label: "Type", Default: string(crm.PropertyApartment), Choices: propertyTypeChoices()},
		{Key: "bedrooms", Label: "Bedrooms", Default: "2", Numeric: true, Skip: noRooms},
		{Key: "bathrooms", Label: "Bathrooms", Default: "2", Numeric: true, Skip: noRooms},
		{Key: "area", Label: "Carpet area (sq.ft)", Required: true, Numeric: true},
		{Key: "location", Label: "Locality", Placeholder: "Bandra West, Mumbai", Required: true},
		{Key: "address", Label: "Full address", Required: true},
		{Key: "rent", Label: "Monthly rent (₹)", Required: true, Numeric: true},
		{Key: "deposit", Label: "Security deposit (₹)", Required: true, Numeric: true},
		{Key: "availability", Label: "Status", Default: string(crm.Available),
			Choices: []string{string(crm.Available), string(crm.Occupied), string(crm.Maintenance)}},
	}
}

func newProperty(v form.Values) api.NewProperty {
	return api.NewProperty{
		Title:        v["title"],
		Description:  v["description"],
		Type:         crm.PropertyType(v["type"]),
		Location:     v["location"],
		Address:      v["address"],
		Rent:         v.Int("rent"),
		Deposit:      v.Int("deposit"),
		Bedrooms:     v.Int("bedrooms"),
		Bathrooms:    v.Int("bathrooms"),
		AreaSqft:     v.Int("area"),
		Availability: crm.Availability(v["availability"]),
	}
}
