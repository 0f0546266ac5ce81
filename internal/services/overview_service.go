package services

import (
	"context"

	"reeyo/internal/domain/entities"
)

// StatCard is one headline figure on the overview page.
type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

// SalesPoint is one day of the sales chart.
type SalesPoint struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

// CategoryShare is one slice of the category chart. Share is a percentage.
type CategoryShare struct {
	Name     string `json:"name"`
	Share    int    `json:"share"`
	Amount   int64  `json:"amount"`
	Products int    `json:"products"`
}

// TopProduct is one row of the best sellers table.
type TopProduct struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Vendor    string `json:"vendor"`
	ProductID string `json:"product_id"`
	Price     int64  `json:"price"`
	Stock     string `json:"stock"`
	Sold      int    `json:"sold"`
	Revenue   int64  `json:"revenue"`
}

// Overview is the landing page payload.
type Overview struct {
	Stats        []StatCard                       `json:"stats"`
	Sales        []SalesPoint                     `json:"sales"`
	Categories   []CategoryShare                  `json:"categories"`
	TotalRevenue int64                            `json:"total_revenue"`
	TopProducts  []TopProduct                     `json:"top_products"`
	StatusCounts map[entities.Kind]map[string]int `json:"status_counts"`
}

// StatusCounter reports live status counts for one collection.
type StatusCounter interface {
	Kind() entities.Kind
	StatusCounts(ctx context.Context) map[string]int
}

// OverviewService assembles the overview page. Sales figures are static
// sample data; status counts come from the live stores.
type OverviewService struct {
	counters []StatusCounter
}

func NewOverviewService(counters ...StatusCounter) *OverviewService {
	return &OverviewService{counters: counters}
}

func (s *OverviewService) Overview(ctx context.Context) Overview {
	categories := sampleCategories()
	var total int64
	for _, c := range categories {
		total += c.Amount
	}

	counts := make(map[entities.Kind]map[string]int, len(s.counters))
	for _, c := range s.counters {
		counts[c.Kind()] = c.StatusCounts(ctx)
	}

	return Overview{
		Stats: []StatCard{
			{Title: "Today Revenue", Value: "XAF 2,579,000", Change: "+12%", Trend: "up"},
			{Title: "Today Visitors", Value: "312", Change: "+4%", Trend: "up"},
			{Title: "Today Transactions", Value: "525", Change: "-0.69%", Trend: "down"},
			{Title: "Total Products", Value: "168", Change: "+2%", Trend: "up"},
		},
		Sales: []SalesPoint{
			{"Mar 12", 3200}, {"Mar 13", 4100}, {"Mar 14", 3800}, {"Mar 15", 5350},
			{"Mar 16", 4900}, {"Mar 17", 5200}, {"Mar 18", 4800},
		},
		Categories:   categories,
		TotalRevenue: total,
		TopProducts: []TopProduct{
			{1, "Poulet DG Special", "Chez Marie", "SKU890", 3500, "In Stock", 342, 1197000},
			{2, "Ndole with Plantains", "Mama Kitchen", "SKU124", 2500, "Low Stock", 289, 722500},
			{3, "Koki Beans Bundle", "Traditional Foods", "SKU567", 1500, "In Stock", 425, 637500},
			{4, "Fresh Pepper Soup", "Spice Corner", "SKU901", 2000, "In Stock", 318, 636000},
		},
		StatusCounts: counts,
	}
}

func sampleCategories() []CategoryShare {
	return []CategoryShare{
		{"Fast Food", 25, 3020000, 1234},
		{"African Cuisine", 35, 4228000, 1491},
		{"Drinks", 18, 2172000, 658},
		{"Pastries", 15, 1810000, 498},
		{"Others", 7, 845000, 348},
	}
}
