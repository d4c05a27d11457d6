// cmd/seeduser/main.go — Crea una cuenta de finca con su tarifa inicial.
// Uso: go run ./cmd/seeduser -username finca1 -password secreto123
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"finca/internal/config"
	"finca/internal/dto"
	"finca/internal/infra"
	"finca/internal/repository"
	"finca/internal/service"

	"github.com/shopspring/decimal"
)

func main() {
	username := flag.String("username", "finca", "usuario (también es el owner de los registros)")
	password := flag.String("password", "", "contraseña, mínimo 8 caracteres")
	nombre := flag.String("nombre", "Administración", "nombre visible")
	email := flag.String("email", "", "correo opcional")
	pagoDia := flag.String("pago-dia", "0", "tarifa inicial por día")
	pagoExtra := flag.String("pago-hora-extra", "0", "tarifa inicial por hora extra")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password es obligatorio")
	}
	dia, err := decimal.NewFromString(*pagoDia)
	if err != nil {
		log.Fatalf("pago-dia inválido: %v", err)
	}
	extra, err := decimal.NewFromString(*pagoExtra)
	if err != nil {
		log.Fatalf("pago-hora-extra inválido: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL, cfg.MigrationsPath)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	ctx := context.Background()
	var correo *string
	if *email != "" {
		correo = email
	}

	auth := service.NewAuthService(repository.NewUsuarioRepository(db), cfg)
	user, err := auth.CrearUsuario(ctx, *username, *nombre, *password, correo)
	if err != nil {
		log.Fatalf("crear usuario: %v", err)
	}

	tarifas := service.NewTarifaService(repository.NewTarifaRepository(db))
	if _, err := tarifas.Guardar(ctx, user.Username, dto.TarifaRequest{PagoDia: dia, PagoHoraExtra: extra}); err != nil {
		log.Fatalf("guardar tarifa: %v", err)
	}

	fmt.Printf("Usuario '%s' creado (id %d), tarifa %s/día %s/hora extra\n", user.Username, user.ID, dia, extra)
}
