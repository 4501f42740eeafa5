package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/ratewise/ratewise-backend/config"
	"github.com/ratewise/ratewise-backend/internal/app/model"
	"github.com/ratewise/ratewise-backend/internal/app/repository"
	"github.com/ratewise/ratewise-backend/internal/db"
	"github.com/ratewise/ratewise-backend/pkg/util"
)

// Seeds an admin account and, with -demo, a handful of store owners,
// stores, and ratings for local development.
func main() {
	adminEmail := flag.String("admin-email", "admin@ratewise.local", "admin account email")
	adminPassword := flag.String("admin-password", "Admin@123", "admin account password")
	demo := flag.Bool("demo", false, "also seed demo owners, stores, and ratings")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	userRepo := repository.NewUserRepository(db.GetDB())
	storeRepo := repository.NewStoreRepository(db.GetDB())
	ratingRepo := repository.NewRatingRepository(db.GetDB())

	admin, err := seedUser(userRepo, "System Administrator Account", *adminEmail, *adminPassword, "1 Admin Plaza", model.RoleAdmin)
	if err != nil {
		log.Fatal("Failed to seed admin account:", err)
	}
	fmt.Printf("Admin account ready: %s (id=%d)\n", admin.Email, admin.ID)

	if !*demo {
		return
	}

	owners := []struct {
		name, email, address string
	}{
		{"Jane Holloway Store Owner One", "jane@stores.local", "12 Market Street"},
		{"Marcus Webb Store Owner Two!", "marcus@stores.local", "48 Harbor Road"},
	}

	var ownerIDs []uint
	for _, o := range owners {
		owner, err := seedUser(userRepo, o.name, o.email, "Owner@Pass1", o.address, model.RoleStoreOwner)
		if err != nil {
			log.Fatal("Failed to seed store owner:", err)
		}
		ownerIDs = append(ownerIDs, owner.ID)
	}

	stores := []model.Store{
		{Name: "Corner Grocery", Email: "grocery@stores.local", Address: "12 Market Street", OwnerID: ownerIDs[0]},
		{Name: "Harbor Books", Email: "books@stores.local", Address: "48 Harbor Road", OwnerID: ownerIDs[1]},
	}
	for i := range stores {
		if err := storeRepo.Create(&stores[i]); err != nil {
			log.Printf("Skipping store %s: %v", stores[i].Name, err)
		}
	}

	customer, err := seedUser(userRepo, "Demo Customer Account Holder", "customer@ratewise.local", "Customer@1", "7 Main Street", model.RoleUser)
	if err != nil {
		log.Fatal("Failed to seed customer:", err)
	}

	for i := range stores {
		if stores[i].ID == 0 {
			continue
		}
		if _, err := ratingRepo.Upsert(customer.ID, stores[i].ID, 4+i%2); err != nil {
			log.Printf("Skipping rating for store %d: %v", stores[i].ID, err)
		}
	}

	fmt.Println("Demo data seeded")
}

func seedUser(userRepo repository.UserRepository, name, email, password, address string, role model.UserRole) (*model.User, error) {
	if existing, err := userRepo.FindByEmail(email); err == nil {
		return existing, nil
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Address:      address,
		Role:         role,
	}
	if err := userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
