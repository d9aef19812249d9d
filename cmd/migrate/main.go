package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/josevesidio/university-backend-dev-project/pkg/config"
)

// Aplica os arquivos migrations/NNN_*.up.sql (ou .down.sql em ordem inversa)
// contra o banco configurado. Sem tabela de controle: os arquivos são
// idempotentes (IF NOT EXISTS / IF EXISTS).
func main() {
	if len(os.Args) < 2 {
		log.Fatal("uso: migrate [up|down]")
	}

	direction := os.Args[1]
	if direction != "up" && direction != "down" {
		log.Fatal("direção deve ser 'up' ou 'down'")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("carregar configuração: %v", err)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatalf("conectar ao banco: %v", err)
	}
	defer conn.Close(ctx)

	migrationDir := "migrations"
	files, err := os.ReadDir(migrationDir)
	if err != nil {
		log.Fatalf("ler diretório de migrations: %v", err)
	}

	var migrationFiles []string
	for _, file := range files {
		if !file.IsDir() && strings.HasSuffix(file.Name(), fmt.Sprintf(".%s.sql", direction)) {
			migrationFiles = append(migrationFiles, file.Name())
		}
	}

	sort.Strings(migrationFiles)
	if direction == "down" {
		for i, j := 0, len(migrationFiles)-1; i < j; i, j = i+1, j-1 {
			migrationFiles[i], migrationFiles[j] = migrationFiles[j], migrationFiles[i]
		}
	}

	for _, filename := range migrationFiles {
		content, err := os.ReadFile(filepath.Join(migrationDir, filename))
		if err != nil {
			log.Fatalf("ler migration %s: %v", filename, err)
		}

		log.Printf("aplicando migration: %s", filename)
		if _, err := conn.Exec(ctx, string(content)); err != nil {
			log.Fatalf("executar migration %s: %v", filename, err)
		}
	}

	log.Printf("%d migration(s) %s aplicadas com sucesso", len(migrationFiles), direction)
}
