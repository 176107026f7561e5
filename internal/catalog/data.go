package catalog

import "github.com/shopspring/decimal"

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// Categories in display order. The first and last entries are the virtual
// "all" and "promo" tabs.
var Categories = []Category{
	{ID: "all", Name: "Tous les produits", Icon: "🛒", Description: "Parcourez l'ensemble de notre catalogue."},
	{ID: "technology", Name: "Technologie", Icon: "💻", Description: "Gadgets, informatique et accessoires high-tech."},
	{ID: "beauty", Name: "Beauté", Icon: "💄", Description: "Soins, maquillage et parfums."},
	{ID: "automobile", Name: "Automobile", Icon: "🚗", Description: "Accessoires et entretien pour votre véhicule."},
	{ID: "maison", Name: "Maison", Icon: "🏠", Description: "Décoration, ameublement et jardin."},
	{ID: "cuisine", Name: "Cuisine", Icon: "🍳", Description: "Ustensiles, robots et accessoires de cuisine."},
	{ID: "bureautique", Name: "Bureautique", Icon: "📎", Description: "Fournitures de bureau et organisation."},
	{ID: "promo", Name: "Promotions", Icon: "🏷️", Description: "Nos meilleures offres et réductions du moment."},
}

// Products in catalog order. Catalog order is the tie-break order for every
// stable sort and the result order for search.
var Products = []Product{
	{
		ID:            "laptop-pro-x1",
		Name:          "Laptop Ultra Pro X1",
		Brand:         "EAF Tech",
		Category:      "technology",
		Price:         dec("8999.00"),
		OriginalPrice: decp("9500.00"),
		Stock:         5,
		Rating:        4.8,
		ReviewCount:   12,
		IsNew:         true,
		IsPromo:       true,
		CodeBar:       "TECH-001",
		Image:         "/static/images/products/tech1.jpg",
		Specs:         []string{"16GB RAM", "512GB SSD", "Écran 14\" 4K"},
		Description:   "Un ordinateur puissant pour les professionnels exigeants.",
		Type:          "Ordinateur Portable",
	},
	{
		ID:          "wireless-buds",
		Name:        "Écouteurs Sans Fil Pro",
		Brand:       "SoundMaster",
		Category:    "technology",
		Price:       dec("249.99"),
		Stock:       25,
		Rating:      4.5,
		ReviewCount: 89,
		CodeBar:     "TECH-002",
		Image:       "/static/images/products/tech2.jpg",
		Specs:       []string{"Réduction de bruit", "24h Autonomie", "Bluetooth 5.2"},
		Description: "Qualité sonore exceptionnelle et confort longue durée.",
		Type:        "Audio",
	},
	{
		ID:          "serum-glow",
		Name:        "Sérum Éclat Vitamine C",
		Brand:       "Lumière",
		Category:    "beauty",
		Price:       dec("189.00"),
		Stock:       30,
		Rating:      4.9,
		ReviewCount: 45,
		IsNew:       true,
		CodeBar:     "BEA-001",
		Image:       "/static/images/products/beauty1.jpg",
		Specs:       []string{"Végétalien", "Sans paraben", "30ml"},
		Description: "Illuminez votre teint avec notre sérum riche en vitamine C.",
		Type:        "Soin Visage",
	},
	{
		ID:          "castrol-edge-5w30-ll",
		Name:        "Castrol EDGE 5W-30 LL",
		Brand:       "Castrol",
		Category:    "automobile",
		Price:       dec("549.99"),
		Stock:       15,
		Rating:      4.8,
		ReviewCount: 42,
		IsNew:       true,
		CodeBar:     "3374650021613",
		Image:       "/static/images/products/01.jpg",
		Specs:       []string{"SAE 5W-30", "ACEA C3", "VW 504.00/507.00"},
		Description: "Castrol EDGE 5W-30 LL convient aux véhicules essence, diesel et hybride.",
		Type:        "Huile Synthétique",
	},
	{
		ID:            "dashcam-4k",
		Name:          "Dashcam Ultra 4K",
		Brand:         "SafeDrive",
		Category:      "automobile",
		Price:         dec("649.00"),
		OriginalPrice: decp("799.00"),
		Stock:         12,
		Rating:        4.7,
		ReviewCount:   34,
		IsPromo:       true,
		CodeBar:       "AUTO-001",
		Image:         "/static/images/products/auto1.jpg",
		Specs:         []string{"Vision nocturne", "GPS intégré", "WiFi"},
		Description:   "Enregistrez vos trajets avec une clarté exceptionnelle.",
		Type:          "Électronique Auto",
	},
	{
		ID:          "lamp-design",
		Name:        "Lampe de Table Moderne",
		Brand:       "DecoHome",
		Category:    "maison",
		Price:       dec("349.00"),
		Stock:       15,
		Rating:      4.6,
		ReviewCount: 22,
		IsNew:       true,
		CodeBar:     "MAI-001",
		Image:       "/static/images/products/maison1.jpg",
		Specs:       []string{"LED", "Variation d'intensité", "Chêne massif"},
		Description: "Une touche d'élégance pour votre salon.",
		Type:        "Luminaire",
	},
	{
		ID:            "air-fryer-v2",
		Name:          "Friteuse Sans Huile Pro",
		Brand:         "KitchenMax",
		Category:      "cuisine",
		Price:         dec("1299.00"),
		OriginalPrice: decp("1499.00"),
		Stock:         8,
		Rating:        4.8,
		ReviewCount:   156,
		IsPromo:       true,
		CodeBar:       "CUI-001",
		Image:         "/static/images/products/cuisine1.jpg",
		Specs:         []string{"5.5 Litres", "1700W", "Écran Tactile"},
		Description:   "Cuisinez sainement avec moins de 85% de matières grasses.",
		Type:          "Petit Électroménager",
	},
	{
		ID:          "ergonomic-chair",
		Name:        "Chaise de Bureau Ergonomique",
		Brand:       "OfficeFlow",
		Category:    "bureautique",
		Price:       dec("2450.00"),
		Stock:       3,
		Rating:      4.9,
		ReviewCount: 18,
		IsNew:       true,
		CodeBar:     "BUR-001",
		Image:       "/static/images/products/bureau1.jpg",
		Specs:       []string{"Soutien lombaire", "Accoudoirs 3D", "Appui-tête"},
		Description: "Le confort ultime pour vos longues journées de travail.",
		Type:        "Mobilier de Bureau",
	},
}

// ProductByID looks a product up in catalog order.
func ProductByID(id string) (Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
