package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/content-studio-team/content-studio/internal/domain/entities"
	"github.com/content-studio-team/content-studio/internal/infrastructure/database"
	"github.com/content-studio-team/content-studio/pkg/config"
)

// Seeds a handful of test accounts plus a sample program with a text asset.
// Intended for local development only.
func main() {
	log.Println("🚀 Starting test data creation...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("✅ Database connected successfully")

	testUsers := []struct {
		Email    string
		Name     string
		Password string
	}{
		{Email: "alice@test.local", Name: "Alice", Password: "password-alice"},
		{Email: "bob@test.local", Name: "Bob", Password: "password-bob"},
		{Email: "charlie@test.local", Name: "Charlie", Password: "password-charlie"},
	}

	log.Println("🗑️  Cleaning up existing test data...")
	db.Exec("DELETE FROM programs WHERE owner_id IN (SELECT id FROM users WHERE email LIKE ?)", "%@test.local")
	db.Where("email LIKE ?", "%@test.local").Delete(&entities.User{})

	log.Println("🔑 Creating test users...")
	var firstUser *entities.User
	for _, tu := range testUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(tu.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		user := entities.NewUser(tu.Email, tu.Name, string(hash))
		if err := db.Create(user).Error; err != nil {
			log.Printf("❌ Failed to create user %s: %v", tu.Email, err)
			continue
		}
		if firstUser == nil {
			firstUser = user
		}
		log.Printf("   👤 %s (%s / %s)", tu.Name, tu.Email, tu.Password)
	}

	if firstUser != nil {
		log.Println("📚 Creating sample program...")
		program := entities.NewProgram(firstUser.ID, "Intro to Distributed Systems", "Seeded sample program", []string{"systems"}, []string{"en", "es"})
		program.AttachAsset(entities.NewTextAsset(
			"Consensus basics",
			"Consensus protocols let a cluster of machines agree on a single value despite failures. Paxos and Raft are the best known examples.",
		))
		if err := db.Create(program).Error; err != nil {
			log.Printf("❌ Failed to create sample program: %v", err)
		} else {
			log.Printf("   📘 %s (%s)", program.Title, program.ID)
		}
	}

	log.Println("✅ Done")
}
