package main

import (
	"context"
	"log"
	"os"

	"agri-solve-be/internal/entity"
	"agri-solve-be/internal/repository/implementation"
	"agri-solve-be/internal/repository/specification"
	"agri-solve-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	shopRepo := implementation.NewShopRepository(db)
	ctx := context.Background()

	color.Cyan("🌱 Seeding Agri-Shop Directory\n")

	shops := []entity.Shop{
		{
			Name:               "Kisan Agro Center",
			Address:            strPtr("12 Mandi Road, Karnal, Haryana"),
			Latitude:           29.685693,
			Longitude:          76.990547,
			Phone:              strPtr("+91-9812045670"),
			PesticideStockList: []string{"Mancozeb 75% WP", "Carbendazim 50% WP", "Imidacloprid 17.8% SL"},
			OrganicProducts:    []string{"Neem Oil", "Trichoderma viride"},
			Rating:             floatPtr(4.5),
		},
		{
			Name:               "Green Harvest Agri Mart",
			Address:            strPtr("45 GT Road, Ludhiana, Punjab"),
			Latitude:           30.900965,
			Longitude:          75.857277,
			Phone:              strPtr("+91-9876501234"),
			PesticideStockList: []string{"Chlorpyrifos 20% EC", "Propiconazole 25% EC"},
			OrganicProducts:    []string{"Vermicompost", "Panchagavya", "Beauveria bassiana"},
			Rating:             floatPtr(4.2),
		},
		{
			Name:               "Annadata Krishi Kendra",
			Address:            strPtr("8 Bazaar Street, Thanjavur, Tamil Nadu"),
			Latitude:           10.786999,
			Longitude:          79.137825,
			Phone:              strPtr("+91-9443322110"),
			PesticideStockList: []string{"Tricyclazole 75% WP", "Hexaconazole 5% SC", "Cartap Hydrochloride 4% G"},
			OrganicProducts:    []string{"Neem Cake", "Pseudomonas fluorescens"},
			Rating:             floatPtr(4.7),
		},
		{
			Name:               "Deccan Farm Supplies",
			Address:            strPtr("23 Market Yard, Warangal, Telangana"),
			Latitude:           17.978436,
			Longitude:          79.594055,
			Phone:              strPtr("+91-9909087654"),
			PesticideStockList: []string{"Profenofos 50% EC", "Emamectin Benzoate 5% SG"},
			OrganicProducts:    []string{"Jeevamrut Concentrate"},
			Rating:             floatPtr(3.9),
		},
		{
			Name:               "Sahyadri Agro Traders",
			Address:            strPtr("67 APMC Complex, Nashik, Maharashtra"),
			Latitude:           19.997454,
			Longitude:          73.789803,
			Phone:              strPtr("+91-9822011223"),
			PesticideStockList: []string{"Copper Oxychloride 50% WP", "Metalaxyl 8% + Mancozeb 64% WP", "Spinosad 45% SC"},
			OrganicProducts:    []string{"Karanj Oil", "Metarhizium anisopliae", "Bio NPK"},
			Rating:             floatPtr(4.8),
		},
	}

	for _, shop := range shops {
		// Name-based idempotency so re-running the seeder is safe
		existing, err := shopRepo.FindOne(ctx, specification.ByName{Name: shop.Name})
		if err != nil {
			color.Red("Failed to look up shop '%s': %v", shop.Name, err)
			continue
		}
		if existing != nil {
			color.Yellow("Shop '%s' already exists, skipping...", shop.Name)
			continue
		}

		shop.Id = uuid.New()
		if err := shopRepo.Create(ctx, &shop); err != nil {
			color.Red("Failed to create shop '%s': %v", shop.Name, err)
		} else {
			color.Green("Created shop: %s", shop.Name)
		}
	}

	color.Cyan("\n✅ Shop seeding completed!")
}
