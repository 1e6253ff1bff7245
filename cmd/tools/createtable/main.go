package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

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

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get DB: %v", err)
	}

	sql := `
	CREATE TABLE IF NOT EXISTS products (
	  id CHAR(36) NOT NULL,
	  name VARCHAR(255) NOT NULL,
	  slug VARCHAR(191) NOT NULL,
	  description TEXT,
	  status VARCHAR(16) NOT NULL DEFAULT 'active',
	  price_cents BIGINT NOT NULL DEFAULT 0,
	  compare_at_cents BIGINT NOT NULL DEFAULT 0,
	  currency CHAR(3) NOT NULL DEFAULT 'EUR',
	  featured TINYINT(1) NOT NULL DEFAULT 0,
	  stock INT NOT NULL DEFAULT 0,
	  options_json JSON NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_products_slug (slug),
	  KEY ix_products_status (status)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS product_variants (
	  id CHAR(36) NOT NULL,
	  product_id CHAR(36) NOT NULL,
	  sku VARCHAR(64) NOT NULL,
	  options_json JSON NULL,
	  price_cents BIGINT NOT NULL DEFAULT 0,
	  compare_at_cents BIGINT NOT NULL DEFAULT 0,
	  currency CHAR(3) NOT NULL DEFAULT 'EUR',
	  stock INT NOT NULL DEFAULT 0,
	  image_url VARCHAR(512) NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_variants_sku (sku),
	  KEY ix_variants_product_id (product_id),
	  CONSTRAINT fk_variants_product FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS product_images (
	  id CHAR(36) NOT NULL,
	  product_id CHAR(36) NOT NULL,
	  storage_key VARCHAR(512) NULL,
	  url VARCHAR(512) NOT NULL,
	  position INT NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_images_product_id (product_id),
	  CONSTRAINT fk_images_product FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS carts (
	  id CHAR(36) NOT NULL,
	  status VARCHAR(16) NOT NULL DEFAULT 'open',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_carts_status (status)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS cart_items (
	  id CHAR(36) NOT NULL,
	  cart_id CHAR(36) NOT NULL,
	  product_id CHAR(36) NOT NULL,
	  variant_id CHAR(36) NOT NULL DEFAULT '',
	  options_json JSON NULL,
	  quantity INT NOT NULL DEFAULT 1,
	  price_cents BIGINT NOT NULL DEFAULT 0,
	  currency CHAR(3) NOT NULL DEFAULT 'EUR',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_cart_items_cart_id (cart_id),
	  KEY ix_cart_items_variant_id (variant_id),
	  CONSTRAINT fk_cart_items_cart FOREIGN KEY (cart_id) REFERENCES carts(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	if _, err := sqlDB.Exec(sql); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("✓ catalog and cart tables created successfully")
}
