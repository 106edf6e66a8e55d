// seed_biller crea o actualiza el cajero (biller) inicial del punto de venta.
// Las credenciales se leen de variables de entorno para no dejarlas en el
// historial de la shell.
//
// Uso:
//
//	BILLER_USERNAME=admin BILLER_PASSWORD=secreto BILLER_FULL_NAME="Dueño" go run ./cmd/seed_biller
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/infrastructure/postgres"
	"github.com/kiranapos/pos-api/pkg/config"
)

func main() {
	username := os.Getenv("BILLER_USERNAME")
	password := os.Getenv("BILLER_PASSWORD")
	fullName := os.Getenv("BILLER_FULL_NAME")
	if username == "" || password == "" {
		fmt.Fprintln(os.Stderr, "BILLER_USERNAME y BILLER_PASSWORD son requeridos")
		os.Exit(1)
	}
	if fullName == "" {
		fullName = username
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash de contraseña: %v\n", err)
		os.Exit(1)
	}

	repo := postgres.NewBillerRepository(pool)
	biller, err := repo.Upsert(&entity.Biller{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		FullName:     fullName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Upsert de biller: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Biller listo: %s (%s)\n", biller.Username, biller.ID)
}
