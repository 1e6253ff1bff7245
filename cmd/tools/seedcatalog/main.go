// Seeds a demo sleep-shop catalog: products with size/color variants,
// swatches, compare-at discounts and a few out-of-stock combinations.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"lunarest.com/app/internal/modules/catalog"
	"lunarest.com/app/internal/shared/slug"
)

type seedVariant struct {
	SKU            string
	Options        map[string]string
	PriceCents     int64
	CompareAtCents int64
	Stock          int
	ImageURL       string
}

type seedProduct struct {
	Name           string
	Description    string
	PriceCents     int64
	CompareAtCents int64
	Featured       bool
	Stock          int
	Options        []catalog.OptionDef
	Images         []string
	Variants       []seedVariant
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := catalog.NewRepo(db)
	ctx := context.Background()

	for _, sp := range seedProducts() {
		optionsJSON, err := json.Marshal(sp.Options)
		if err != nil {
			log.Fatalf("marshal options for %q: %v", sp.Name, err)
		}

		p, err := repo.CreateProduct(ctx, catalog.Product{
			Name:           sp.Name,
			Slug:           slug.FromName(sp.Name),
			Description:    sp.Description,
			Status:         "active",
			PriceCents:     sp.PriceCents,
			CompareAtCents: sp.CompareAtCents,
			Currency:       "EUR",
			Featured:       sp.Featured,
			Stock:          sp.Stock,
			OptionsJSON:    optionsJSON,
		})
		if err != nil {
			if catalog.IsDuplicateKey(err) {
				log.Printf("skip %q: already seeded", sp.Name)
				continue
			}
			log.Fatalf("create product %q: %v", sp.Name, err)
		}

		for i, url := range sp.Images {
			if _, err := repo.AddImage(ctx, p.ID, url, i); err != nil {
				log.Fatalf("add image for %q: %v", sp.Name, err)
			}
		}

		for _, sv := range sp.Variants {
			vOptions, err := json.Marshal(sv.Options)
			if err != nil {
				log.Fatalf("marshal variant options for %q: %v", sv.SKU, err)
			}
			_, err = repo.AddVariant(ctx, catalog.Variant{
				ProductID:      p.ID,
				SKU:            sv.SKU,
				OptionsJSON:    vOptions,
				PriceCents:     sv.PriceCents,
				CompareAtCents: sv.CompareAtCents,
				Currency:       "EUR",
				Stock:          sv.Stock,
				ImageURL:       sv.ImageURL,
			})
			if err != nil {
				log.Fatalf("add variant %q: %v", sv.SKU, err)
			}
		}

		log.Printf("✓ seeded %q (%d variants)", sp.Name, len(sp.Variants))
	}
}

func seedProducts() []seedProduct {
	return []seedProduct{
		{
			Name:           "Cooling Pillow",
			Description:    "Gel-infused memory foam that stays cool through the night.",
			PriceCents:     7900,
			CompareAtCents: 9900,
			Featured:       true,
			Options: []catalog.OptionDef{
				{Name: "Size", Values: []string{"Standard", "King"}},
			},
			Images: []string{"https://cdn.lunarest.com/img/cooling-pillow.jpg"},
			Variants: []seedVariant{
				{SKU: "PILLOW-STD", Options: map[string]string{"Size": "Standard"}, PriceCents: 7900, CompareAtCents: 9900, Stock: 25},
				{SKU: "PILLOW-KING", Options: map[string]string{"Size": "King"}, PriceCents: 9900, Stock: 0},
			},
		},
		{
			Name:        "Weighted Blanket",
			Description: "Evenly distributed glass beads for deeper, calmer sleep.",
			PriceCents:  12900,
			Featured:    true,
			Options: []catalog.OptionDef{
				{Name: "Size", Values: []string{"Twin", "Queen", "King"}},
				{Name: "Color", Values: []string{"Cloud White", "Midnight Blue", "Sage"}, Swatches: map[string]string{
					"Cloud White":   "#f5f3ef",
					"Midnight Blue": "#2c4a7a",
					"Sage":          "#9caf88",
				}},
			},
			Images: []string{"https://cdn.lunarest.com/img/weighted-blanket.jpg"},
			Variants: []seedVariant{
				{SKU: "BLANKET-TW-WHT", Options: map[string]string{"Size": "Twin", "Color": "Cloud White"}, PriceCents: 12900, Stock: 12},
				{SKU: "BLANKET-TW-BLU", Options: map[string]string{"Size": "Twin", "Color": "Midnight Blue"}, PriceCents: 12900, Stock: 8},
				{SKU: "BLANKET-QN-WHT", Options: map[string]string{"Size": "Queen", "Color": "Cloud White"}, PriceCents: 15900, CompareAtCents: 17900, Stock: 5},
				{SKU: "BLANKET-QN-SGE", Options: map[string]string{"Size": "Queen", "Color": "Sage"}, PriceCents: 15900, Stock: 0},
				{SKU: "BLANKET-KG-BLU", Options: map[string]string{"Size": "King", "Color": "Midnight Blue"}, PriceCents: 18900, Stock: 3},
			},
		},
		{
			Name:        "Silk Sleep Mask",
			Description: "Mulberry silk, fully light-blocking.",
			PriceCents:  2500,
			Stock:       40,
			Images:      []string{"https://cdn.lunarest.com/img/sleep-mask.jpg"},
		},
		{
			Name:           "Bamboo Sheet Set",
			Description:    "Breathable, moisture-wicking bamboo lyocell sheets.",
			PriceCents:     9900,
			CompareAtCents: 13200,
			Options: []catalog.OptionDef{
				{Name: "Size", Values: []string{"Queen", "King"}},
				{Name: "Color", Values: []string{"Ivory", "Slate"}, Swatches: map[string]string{
					"Ivory": "#fffff0",
					"Slate": "#708090",
				}},
			},
			Images: []string{"https://cdn.lunarest.com/img/bamboo-sheets.jpg"},
			Variants: []seedVariant{
				{SKU: "SHEETS-QN-IVY", Options: map[string]string{"Size": "Queen", "Color": "Ivory"}, PriceCents: 9900, CompareAtCents: 13200, Stock: 15},
				{SKU: "SHEETS-QN-SLT", Options: map[string]string{"Size": "Queen", "Color": "Slate"}, PriceCents: 9900, CompareAtCents: 13200, Stock: 9},
				{SKU: "SHEETS-KG-IVY", Options: map[string]string{"Size": "King", "Color": "Ivory"}, PriceCents: 11900, Stock: 0},
				{SKU: "SHEETS-KG-SLT", Options: map[string]string{"Size": "King", "Color": "Slate"}, PriceCents: 11900, Stock: 2},
			},
		},
	}
}
