package domain

type Service struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
	Icon     string  `json:"icon"`
}

type ServiceInput struct {
	ID       string
	Name     string
	Price    float64
	Duration int
	Icon     string
}

type ServicePatch struct {
	Name     *string
	Price    *float64
	Duration *int
	Icon     *string
}

func (p ServicePatch) Apply(s *Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Icon != nil {
		s.Icon = *p.Icon
	}
}

// DefaultServices is the catalog seeded into an empty store.
func DefaultServices() []Service {
	return []Service{
		{ID: "consultation", Name: "General consultation", Price: 150, Duration: 30, Icon: "fa-comments"},
		{ID: "technical", Name: "Technical consultation", Price: 250, Duration: 60, Icon: "fa-laptop-code"},
		{ID: "business", Name: "Business consultation", Price: 350, Duration: 90, Icon: "fa-briefcase"},
		{ID: "training", Name: "Personal training", Price: 500, Duration: 120, Icon: "fa-chalkboard-teacher"},
	}
}
