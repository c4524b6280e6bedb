package models

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

// seed loads the static catalog. Package ids follow insertion order, so the
// testimonial PackageID references below line up with the catalog entries.
func (s *MemStore) seed() {
	seedPackages := []InsertPackage{
		{
			Title:       "Bali Paradise Escape",
			Slug:        "bali-paradise-escape",
			Description: "7 days of tropical bliss with pristine beaches, temple visits, and cultural experiences in the heart of Indonesia.",
			Duration:    7,
			Price:       89900,
			MaxPeople:   6,
			Category:    "tropical",
			Image:       "https://images.unsplash.com/photo-1537953773345-d172ccf13cf1?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Highlights: []string{
				"7 nights in luxury beachfront resort",
				"Daily breakfast and 3 dinners included",
				"Guided temple tours with local expert",
				"Traditional Balinese spa treatment",
				"Airport transfers and local transportation",
				"Rice terrace and volcano day trip",
			},
			Itinerary: []ItineraryDay{
				{Day: 1, Title: "Arrival & Beach Relaxation", Description: "Airport pickup, hotel check-in, beach time, welcome dinner"},
				{Day: 2, Title: "Beach & Spa Day", Description: "Free morning, traditional spa treatment, sunset dinner"},
				{Day: 3, Title: "Cultural Exploration", Description: "Ubud temples, traditional markets, cooking class"},
				{Day: 4, Title: "Cultural Immersion", Description: "Local village visit, art workshops, traditional dance show"},
				{Day: 5, Title: "Adventure & Nature", Description: "Volcano hike, rice terraces, hot springs"},
				{Day: 6, Title: "Relaxation & Shopping", Description: "Free morning, souvenir shopping, farewell dinner"},
				{Day: 7, Title: "Departure", Description: "Final breakfast, airport transfer"},
			},
			Includes: []string{
				"Round-trip flights from major cities",
				"5-star beachfront resort accommodation",
				"Daily breakfast and 3 dinners",
				"All tours and activities mentioned",
				"Local transportation and transfers",
				"English-speaking local guide",
			},
			Featured: boolPtr(true),
		},
		{
			Title:       "Paris Romance",
			Slug:        "paris-romance",
			Description: "5 magical days exploring the City of Love with guided tours, fine dining, and iconic landmarks.",
			Duration:    5,
			Price:       129900,
			MaxPeople:   2,
			Category:    "romantic",
			Image:       "https://images.unsplash.com/photo-1502602898536-47ad22581b52?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Highlights: []string{
				"4 nights in luxury hotel near Champs-Élysées",
				"Private Seine river cruise with dinner",
				"Skip-the-line tickets to Eiffel Tower and Louvre",
				"Wine tasting in Montmartre",
				"Romantic dinner at Michelin-starred restaurant",
				"Professional photoshoot at iconic locations",
			},
			Itinerary: []ItineraryDay{
				{Day: 1, Title: "Arrival & Evening Romance", Description: "Airport transfer, hotel check-in, Seine river dinner cruise"},
				{Day: 2, Title: "Iconic Paris", Description: "Eiffel Tower visit, Champs-Élysées walk, Louvre Museum"},
				{Day: 3, Title: "Art & Culture", Description: "Montmartre exploration, Sacré-Cœur, wine tasting"},
				{Day: 4, Title: "Royal Experience", Description: "Versailles day trip, Michelin-starred dinner"},
				{Day: 5, Title: "Farewell Paris", Description: "Professional photoshoot, souvenir shopping, departure"},
			},
			Includes: []string{
				"Round-trip flights",
				"4 nights luxury hotel accommodation",
				"Daily breakfast and 2 dinners",
				"All entrance fees and tours",
				"Private transportation",
				"Professional guide and photographer",
			},
			Featured: boolPtr(true),
		},
		{
			Title:       "Tokyo Adventure",
			Slug:        "tokyo-adventure",
			Description: "6 days immersing in Japanese culture, from ancient temples to modern technology and world-class cuisine.",
			Duration:    6,
			Price:       119900,
			MaxPeople:   4,
			Category:    "cultural",
			Image:       "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Highlights: []string{
				"5 nights in modern Tokyo hotel",
				"Traditional ryokan experience",
				"Sushi-making class with master chef",
				"Mt. Fuji day trip",
				"Tokyo Disneyland tickets included",
				"Traditional tea ceremony experience",
			},
			Itinerary: []ItineraryDay{
				{Day: 1, Title: "Tokyo Arrival", Description: "Airport transfer, hotel check-in, Shibuya and Harajuku exploration"},
				{Day: 2, Title: "Traditional Culture", Description: "Senso-ji Temple, tea ceremony, traditional lunch"},
				{Day: 3, Title: "Mt. Fuji Adventure", Description: "Full day Mt. Fuji tour, onsen experience"},
				{Day: 4, Title: "Modern Tokyo", Description: "Tokyo Skytree, Ginza shopping, sushi-making class"},
				{Day: 5, Title: "Disney Magic", Description: "Tokyo Disneyland full day experience"},
				{Day: 6, Title: "Farewell Japan", Description: "Last-minute shopping, airport departure"},
			},
			Includes: []string{
				"Round-trip flights",
				"5 nights hotel + 1 night ryokan",
				"Daily breakfast and 3 dinners",
				"All transportation and entrance fees",
				"Disney tickets included",
				"English-speaking guide",
			},
			Featured: boolPtr(false),
		},
		{
			Title:       "Swiss Alps Luxury",
			Slug:        "swiss-alps-luxury",
			Description: "8 days of alpine luxury with world-class skiing, spa treatments, and gourmet mountain cuisine.",
			Duration:    8,
			Price:       249900,
			MaxPeople:   4,
			Category:    "luxury",
			Image:       "https://images.unsplash.com/photo-1551524164-687a55dd1126?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Highlights: []string{
				"7 nights in 5-star alpine resort",
				"Daily spa treatments included",
				"Private ski lessons with instructor",
				"Helicopter tour of the Alps",
				"Michelin-starred dining experiences",
				"Private mountain cabin dinner",
			},
			Itinerary: []ItineraryDay{
				{Day: 1, Title: "Alpine Arrival", Description: "Airport transfer, luxury resort check-in, welcome dinner"},
				{Day: 2, Title: "Skiing & Spa", Description: "Ski lessons, afternoon spa treatment, gourmet dinner"},
				{Day: 3, Title: "Mountain Adventure", Description: "Helicopter Alps tour, mountain hiking, relaxation"},
				{Day: 4, Title: "Cultural Exploration", Description: "Local village visit, cheese making, wine tasting"},
				{Day: 5, Title: "Luxury Experience", Description: "Private cabin dinner, stargazing, hot springs"},
				{Day: 6, Title: "Adventure Activities", Description: "Snow activities, spa day, farewell dinner"},
				{Day: 7, Title: "Scenic Beauty", Description: "Cable car rides, photography, shopping"},
				{Day: 8, Title: "Departure", Description: "Final breakfast, airport transfer"},
			},
			Includes: []string{
				"Round-trip first-class flights",
				"7 nights 5-star resort",
				"All meals and beverages",
				"Ski equipment and lessons",
				"Spa treatments daily",
				"All activities and transfers",
			},
			Featured: boolPtr(true),
		},
		{
			Title:       "African Safari",
			Slug:        "african-safari",
			Description: "10 days of wildlife adventure in Kenya and Tanzania with game drives, luxury lodges, and cultural visits.",
			Duration:    10,
			Price:       329900,
			MaxPeople:   8,
			Category:    "adventure",
			Image:       "https://images.unsplash.com/photo-1516426122078-c23e76319801?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Highlights: []string{
				"9 nights in luxury safari lodges",
				"Big Five game drives daily",
				"Maasai village cultural experience",
				"Serengeti balloon safari",
				"Ngorongoro Crater exploration",
				"Professional wildlife photography guide",
			},
			Itinerary: []ItineraryDay{
				{Day: 1, Title: "Nairobi Arrival", Description: "Airport transfer, city hotel, orientation dinner"},
				{Day: 2, Title: "Maasai Mara", Description: "Fly to Maasai Mara, first game drive, lodge check-in"},
				{Day: 3, Title: "Maasai Mara Safari", Description: "Full day game drives, Big Five spotting"},
				{Day: 4, Title: "Cultural Experience", Description: "Maasai village visit, traditional activities"},
				{Day: 5, Title: "Serengeti Adventure", Description: "Fly to Serengeti, game drives, luxury camp"},
				{Day: 6, Title: "Balloon Safari", Description: "Hot air balloon ride, champagne breakfast, game drives"},
				{Day: 7, Title: "Ngorongoro Crater", Description: "Crater game drive, lodge accommodation"},
				{Day: 8, Title: "Lake Manyara", Description: "Lake Manyara National Park, tree-climbing lions"},
				{Day: 9, Title: "Arusha Relaxation", Description: "Spa day, souvenir shopping, farewell dinner"},
				{Day: 10, Title: "Departure", Description: "Final breakfast, airport transfer, departure"},
			},
			Includes: []string{
				"Round-trip international flights",
				"9 nights luxury safari lodges",
				"All meals and beverages",
				"Daily game drives in 4WD vehicles",
				"Professional guide and photographer",
				"All park fees and activities",
			},
			Featured: boolPtr(false),
		},
		{
			Title:       "Maldives Luxury",
			Slug:        "maldives-luxury",
			Description: "5 days in paradise with overwater villas, private beaches, and world-class spa treatments.",
			Duration:    5,
			Price:       499900,
			MaxPeople:   2,
			Category:    "luxury",
			Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			Highlights: []string{
				"4 nights overwater villa",
				"Private beach and butler service",
				"Daily spa treatments",
				"Underwater restaurant dining",
				"Private yacht excursions",
				"Sunset dolphin watching",
			},
			Itinerary: []ItineraryDay{
				{Day: 1, Title: "Paradise Arrival", Description: "Seaplane transfer, villa check-in, sunset dinner"},
				{Day: 2, Title: "Ocean Adventures", Description: "Snorkeling, spa treatment, underwater restaurant"},
				{Day: 3, Title: "Private Yacht", Description: "Full day yacht excursion, dolphin watching"},
				{Day: 4, Title: "Relaxation", Description: "Beach day, couples spa, private dinner"},
				{Day: 5, Title: "Farewell Paradise", Description: "Final breakfast, seaplane departure"},
			},
			Includes: []string{
				"Round-trip flights and seaplane",
				"4 nights overwater villa",
				"All meals and premium beverages",
				"Daily spa treatments",
				"Private yacht and activities",
				"Butler and concierge services",
			},
			Featured: boolPtr(true),
		},
	}

	for _, p := range seedPackages {
		s.CreatePackage(p)
	}

	seedTestimonials := []Testimonial{
		{
			Name:      "Sarah & Mike Johnson",
			Email:     "sarah.johnson@email.com",
			Rating:    5,
			Message:   "Our Bali trip was absolutely magical! The attention to detail and personalized service made our honeymoon unforgettable. Every recommendation was perfect.",
			PackageID: intPtr(1),
			Approved:  true,
		},
		{
			Name:      "David Martinez",
			Email:     "david.martinez@email.com",
			Rating:    5,
			Message:   "The African safari exceeded all expectations! Our guide was knowledgeable, and we saw the Big Five. It was the adventure of a lifetime!",
			PackageID: intPtr(5),
			Approved:  true,
		},
		{
			Name:      "Emily Chen",
			Email:     "emily.chen@email.com",
			Rating:    5,
			Message:   "Family trip to Tokyo was perfectly organized. The kids loved the cultural experiences, and we appreciated the flexibility in the itinerary.",
			PackageID: intPtr(3),
			Approved:  true,
		},
		{
			Name:      "Alexandra Dubois",
			Email:     "alex.dubois@email.com",
			Rating:    5,
			Message:   "The luxury Swiss Alps package was worth every penny. The hotels were stunning, and the alpine activities were world-class.",
			PackageID: intPtr(4),
			Approved:  true,
		},
	}

	for _, t := range seedTestimonials {
		s.seedTestimonial(t)
	}
}
