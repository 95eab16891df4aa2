package seeders

import (
	"log"

	"github.com/pup-picks/pawmatch_api/model"
	"gorm.io/gorm"
)

// ToySeeder fills the toy catalog
type ToySeeder struct {
	db *gorm.DB
}

// NewToySeeder creates a new toy seeder
func NewToySeeder(db *gorm.DB) *ToySeeder {
	return &ToySeeder{db: db}
}

// SeedToys seeds the starter catalog. An already-populated table is left
// untouched so edits survive restarts.
func (s *ToySeeder) SeedToys() error {
	var count int64
	if err := s.db.Model(&model.Toy{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Toy catalog already has %d toys, skipping seed", count)
		return nil
	}

	for _, seed := range s.getToys() {
		toy := model.Toy{
			Name:        seed.name,
			Description: seed.description,
			ImageURL:    seed.imageURL,
			Price:       seed.price,
			Rating:      seed.rating,
			ReviewCount: seed.reviewCount,
			Category:    seed.category,
			Durability:  seed.durability,
		}
		if err := toy.SetSizes(seed.sizes); err != nil {
			return err
		}
		if err := toy.SetPlayStyles(seed.playStyles); err != nil {
			return err
		}

		if err := s.db.Create(&toy).Error; err != nil {
			log.Printf("Error creating toy %s: %v", seed.name, err)
			return err
		}
		log.Printf("Created toy: %s", seed.name)
	}

	log.Println("Toy seeding completed successfully")
	return nil
}

type toySeed struct {
	name        string
	description string
	imageURL    string
	price       float64
	rating      float64
	reviewCount int
	category    string
	durability  string
	sizes       []string
	playStyles  []string
}

func (s *ToySeeder) getToys() []toySeed {
	return []toySeed{
		{
			name:        "Squeaky Bone",
			description: "Classic squeaky bone that dogs love! Durable rubber construction.",
			imageURL:    "https://images.unsplash.com/photo-1535294435445-d7249524ef2e?w=400&h=300&fit=crop",
			price:       12.99,
			rating:      4.6,
			reviewCount: 214,
			category:    "bones",
			durability:  "aggressive",
			sizes:       []string{"small", "medium", "large"},
			playStyles:  []string{"fetch", "tug"},
		},
		{
			name:        "Rope Tug Toy",
			description: "Perfect for tug-of-war games. Made with natural cotton fibers.",
			imageURL:    "https://images.unsplash.com/photo-1576201836106-db1758fd1c97?w=400&h=300&fit=crop",
			price:       9.99,
			rating:      4.4,
			reviewCount: 162,
			category:    "ropes",
			durability:  "moderate",
			sizes:       []string{"medium", "large", "giant"},
			playStyles:  []string{"tug"},
		},
		{
			name:        "Tennis Ball Pack",
			description: "Pack of 6 tennis balls. High-bounce and extra durable.",
			imageURL:    "https://images.unsplash.com/photo-1545249390-6bdfa286032f?w=400&h=300&fit=crop",
			price:       14.99,
			rating:      4.8,
			reviewCount: 531,
			category:    "balls",
			durability:  "moderate",
			sizes:       []string{"small", "medium", "large"},
			playStyles:  []string{"fetch"},
		},
		{
			name:        "Plush Duck",
			description: "Soft plush duck with squeaker. Great for gentle chewers.",
			imageURL:    "https://images.unsplash.com/photo-1591946614720-90a587da4a36?w=400&h=300&fit=crop",
			price:       16.99,
			rating:      4.2,
			reviewCount: 98,
			category:    "plush",
			durability:  "gentle",
			sizes:       []string{"small", "medium"},
			playStyles:  []string{"cuddle"},
		},
		{
			name:        "Treat Puzzle Ball",
			description: "Interactive puzzle toy that dispenses treats. Keeps dogs entertained!",
			imageURL:    "https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=400&h=300&fit=crop",
			price:       19.99,
			rating:      4.7,
			reviewCount: 347,
			category:    "puzzle",
			durability:  "aggressive",
			sizes:       []string{"small", "medium", "large"},
			playStyles:  []string{"puzzle"},
		},
		{
			name:        "Rubber Frisbee",
			description: "Soft rubber frisbee, safe for catching. Floats in water!",
			imageURL:    "https://images.unsplash.com/photo-1601758228041-f3b2795255f1?w=400&h=300&fit=crop",
			price:       11.99,
			rating:      4.5,
			reviewCount: 189,
			category:    "balls",
			durability:  "moderate",
			sizes:       []string{"medium", "large", "giant"},
			playStyles:  []string{"fetch"},
		},
		{
			name:        "Bacon Chew Toy",
			description: "Bacon-scented chew toy. Irresistible to dogs!",
			imageURL:    "https://images.unsplash.com/photo-1583337130417-3346a1be7dee?w=400&h=300&fit=crop",
			price:       8.99,
			rating:      4.3,
			reviewCount: 276,
			category:    "bones",
			durability:  "destroyer",
			sizes:       []string{"medium", "large", "giant"},
			playStyles:  []string{"tug"},
		},
		{
			name:        "Crinkle Fox",
			description: "Adorable fox plush with crinkle sound. Multiple textures.",
			imageURL:    "https://images.unsplash.com/photo-1560807707-8cc77767d783?w=400&h=300&fit=crop",
			price:       13.99,
			rating:      4.1,
			reviewCount: 74,
			category:    "plush",
			durability:  "gentle",
			sizes:       []string{"small"},
			playStyles:  []string{"cuddle", "fetch"},
		},
		{
			name:        "Kong Classic",
			description: "The original Kong! Stuff with treats for hours of fun.",
			imageURL:    "https://images.unsplash.com/photo-1596492784531-6e6eb5ea9993?w=400&h=300&fit=crop",
			price:       15.99,
			rating:      4.9,
			reviewCount: 842,
			category:    "puzzle",
			durability:  "destroyer",
			sizes:       []string{"small", "medium", "large", "giant"},
			playStyles:  []string{"puzzle", "fetch"},
		},
		{
			name:        "Snuffle Mat",
			description: "Hide treats in the fabric strips. Great mental stimulation.",
			imageURL:    "https://images.unsplash.com/photo-1587764379873-97837921fd44?w=400&h=300&fit=crop",
			price:       24.99,
			rating:      4.6,
			reviewCount: 203,
			category:    "puzzle",
			durability:  "gentle",
			sizes:       []string{"small", "medium", "large"},
			playStyles:  []string{"puzzle"},
		},
	}
}
