package models

// AdminStats сводная статистика для административной панели.
// Счётчики приблизительные (estimated count), выручка суммируется
// по всем платежам, 0 при пустой коллекции.
type AdminStats struct {
	Users        int64   `json:"users"`
	MenuItems    int64   `json:"menu_items"`
	Orders       int64   `json:"orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

// CategorySales строка отчёта по продажам в разрезе категории меню.
type CategorySales struct {
	Category     string  `bson:"category" json:"category"`
	Quantity     int64   `bson:"quantity" json:"quantity"`
	TotalRevenue float64 `bson:"totalRevenue" json:"total_revenue"`
}
