package catalog

// Default is the showcase shipped on the demo page.
func Default() Catalog {
	return MustNew(
		Card{ID: "rustic-bean", Title: "The Rustic Bean", Category: "Café Story", Duration: "2:34", Source: "rustic-bean.mp4"},
		Card{ID: "olive-and-thyme", Title: "Olive & Thyme", Category: "Fine Dining", Duration: "1:45", Source: "olive-and-thyme.mp4"},
		Card{ID: "sakura-cafe", Title: "Sakura Café", Category: "Japanese Fusion", Duration: "2:12", Source: "sakura-cafe.mp4"},
		Card{ID: "bean-counter", Title: "Bean Counter", Category: "Coffee Shop", Duration: "1:58", Source: "bean-counter.mp4"},
	)
}
