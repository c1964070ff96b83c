package catalog

// FallbackRecords returns the built-in demo catalog used when no data
// source is reachable. Kept small but varied enough to exercise every
// filter on a fresh install.
func FallbackRecords() []ServiceRecord {
	records := []ServiceRecord{
		{
			Name:          "Lake Union Women's Shelter",
			Type:          "Shelter",
			Neighborhood:  "Downtown",
			Beds:          3,
			Hours:         "Intake 4-8pm",
			WalkIn:        true,
			LGBTQFriendly: true,
			AgeMin:        18,
			Phone:         "(206) 555-1212",
			Address:       "123 Pine St, Seattle, WA",
			Website:       "https://example.org/shelter",
			Notes:         "ID preferred; LGBTQ+ inclusive",
			Languages:     []string{"English", "Spanish"},
			Services:      []string{"shelter", "beds"},
		},
		{
			Name:             "Harbor Free Clinic",
			Type:             "Clinic",
			Neighborhood:     "Capitol Hill",
			Hours:            "Walk-ins Wed/Fri 1-5pm",
			WalkIn:           true,
			WheelchairAccess: true,
			Phone:            "(206) 555-4545",
			Address:          "500 Broadway E, Seattle, WA",
			Website:          "https://example.org/clinic",
			Notes:            "MAT referrals; naloxone on site",
			Languages:        []string{"English", "Spanish", "Vietnamese"},
			Services:         []string{"medical", "clinic", "mat", "naloxone"},
		},
		{
			Name:               "Vale Community Food Bank",
			Type:               "Food",
			Neighborhood:       "Rainier Valley",
			Hours:              "Mon-Sat 9am-3pm",
			WalkIn:             true,
			WheelchairAccess:   true,
			Phone:              "(206) 555-7890",
			Address:            "890 Rainier Ave S, Seattle, WA",
			Website:            "https://example.org/foodbank",
			Notes:              "No ID required; groceries and hot meals",
			Languages:          []string{"English", "Somali", "Spanish"},
			DisabilityServices: []string{"wheelchair ramp", "ASL on request"},
			Services:           []string{"food", "meals", "groceries"},
		},
		{
			Name:           "Cedar River Healing Lodge",
			Type:           "Detox",
			Neighborhood:   "Renton",
			Hours:          "24/7 intake line",
			TribalFriendly: true,
			TribeRun:       true,
			AgeMin:         18,
			Phone:          "(425) 555-3030",
			Address:        "77 Cedar River Rd, Renton, WA",
			Website:        "https://example.org/healing-lodge",
			Notes:          "Tribally operated; traditional medicine alongside withdrawal management",
			Languages:      []string{"English", "Lushootseed"},
			Services:       []string{"detox", "sobering", "counseling"},
		},
	}
	for i := range records {
		records[i].Slug = Slugify(records[i].Name)
	}
	return records
}
