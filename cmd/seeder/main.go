package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/pasvio/vitrina"
	"github.com/pasvio/vitrina/core"
	"github.com/pasvio/vitrina/ingestion"
)

// catalog is a small demo inventory for local development.
var catalog = []*ingestion.CatalogItem{
	{
		Product: &core.Product{
			Title:       "Ghete de iarnă Alpine",
			Description: "Ghete impermeabile pentru sezonul rece. Fabricate din piele naturală premium. Talpă aderentă pe zăpadă și gheață.",
			Price:       349.50,
			Rating:      4.6,
			Stock:       8,
			Category:    "Boots",
		},
		FAQs: []*core.FAQEntry{
			{Question: "Cât durează livrarea?", Answer: "Livrarea durează 2-4 zile lucrătoare."},
			{Question: "Sunt impermeabile?", Answer: "Da, membrana exterioară este complet impermeabilă."},
			{Question: "Ce mărimi sunt disponibile?", Answer: "Mărimile 36-46 sunt disponibile în stoc."},
		},
	},
	{
		Product: &core.Product{
			Title:       "Pantofi sport Vento",
			Description: "Pantofi de alergare cu amortizare excelentă. Material textil respirabil. Ideali pentru antrenamente zilnice.",
			Price:       199.99,
			Rating:      4.3,
			Stock:       24,
			Category:    "Running Shoes",
		},
		FAQs: []*core.FAQEntry{
			{Question: "Au garanție?", Answer: "Da, toate produsele beneficiază de garanție de 2 ani."},
			{Question: "Pot fi returnați?", Answer: "Da, în termen de 30 de zile de la livrare."},
		},
	},
	{
		Product: &core.Product{
			Title:       "Sandale Riviera",
			Description: "Sandale ușoare de vară cu barete reglabile. Branț moale din spumă cu memorie.",
			Price:       89.99,
			Rating:      4.1,
			Stock:       40,
			Category:    "Sandals",
		},
		FAQs: []*core.FAQEntry{
			{Question: "Sunt potrivite pentru plajă?", Answer: "Da, materialul rezistă la apă și nisip."},
		},
	},
	{
		Product: &core.Product{
			Title:       "Mocasini Torino",
			Description: "Mocasini eleganți din piele întoarsă. Cusături realizate manual. Potriviți pentru ținute office.",
			Price:       279.00,
			Rating:      4.8,
			Stock:       12,
			Category:    "Loafers",
		},
	},
	{
		Product: &core.Product{
			Title:       "Teniși urbani Corso",
			Description: "Teniși casual din pânză cu talpă vulcanizată. Design minimalist disponibil în trei culori.",
			Price:       149.50,
			Rating:      4.0,
			Stock:       31,
			Category:    "Sneakers",
		},
		FAQs: []*core.FAQEntry{
			{Question: "Se pot spăla la mașină?", Answer: "Recomandăm spălarea manuală cu apă rece."},
			{Question: "Cât durează livrarea?", Answer: "Livrarea durează 2-4 zile lucrătoare."},
		},
	},
}

var dbPath = flag.String("db", "./catalog_db", "path to the catalog database directory")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	store, err := vitrina.NewStore(*dbPath)
	if err != nil {
		panic(err)
	}
	defer store.Close()

	pipeline, err := store.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer pipeline.Close()

	ctx := context.Background()

	tracker := ingestion.NewProgressTracker(os.Stderr, len(catalog), 1)
	tracker.Start()
	if err := pipeline.Ingest(ctx, catalog, tracker); err != nil {
		panic(err)
	}
	tracker.Finish()

	slog.Info("catalog seeded", "products", len(catalog), "elapsed", tracker.Elapsed())
}
