package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/infrastructure/auth"
	"skytrak-service/internal/infrastructure/config"
	"skytrak-service/internal/infrastructure/persistence"
	"skytrak-service/internal/interface/repository"
)

// Mints a development token for an existing user and registers its session,
// so the token passes the active-session check.
func main() {
	userID := flag.Uint("user", 1, "user id")
	perfil := flag.String("perfil", entity.ProfileAdmin, "profile claim")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := persistence.NewPostgres(ctx, cfg.PostgresDSN, repository.Models()...)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	token, jti, err := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL).Issue(*userID, *perfil)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	agent := "get_token"
	session := &entity.Session{UsuarioID: *userID, JTI: jti, UserAgent: &agent, Ativa: true}
	if err := repository.NewGormSessionRepository(db).Create(ctx, session); err != nil {
		log.Fatalf("Failed to register session: %v", err)
	}

	fmt.Printf("Session %d (jti %s), valid for %s\n", session.ID, jti, cfg.JWTTTL)
	fmt.Printf("Authorization: Bearer %s\n", token)
}
