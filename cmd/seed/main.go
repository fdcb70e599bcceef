// seed carga el catálogo inicial (productos con su saldo de apertura y terceros) desde CSV.
//
// Uso:
//
//	go run ./cmd/seed -products productos.csv [-parties terceros.csv] [-encoding latin1]
//
// productos.csv: sku,nombre,categoria,precio,impuesto,reorden[,stock]
// terceros.csv:  tipo,nombre,nit,telefono,email,direccion
// La primera fila es encabezado. Los archivos exportados desde Excel suelen venir en ISO-8859-1.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Ordenes-api/internal/application/catalog"
	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/application/inventory"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/infrastructure/storage"
	"github.com/jhoicas/Ordenes-api/pkg/config"
	"github.com/jhoicas/Ordenes-api/pkg/logger"
)

const seedUser = "seed"

func main() {
	productsPath := flag.String("products", "", "CSV de productos")
	partiesPath := flag.String("parties", "", "CSV de terceros")
	encoding := flag.String("encoding", "utf8", "codificación de los CSV: utf8 | latin1")
	flag.Parse()

	if *productsPath == "" && *partiesPath == "" {
		fmt.Fprintln(os.Stderr, "indique -products y/o -parties")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos")
	}
	defer store.Close()

	catalogUC := catalog.NewUseCase(store.Products, store.Parties)
	stockUC := inventory.NewStockUseCase(store.Tx, store.Stock, store.Movements, nil, false, log)

	if *productsPath != "" {
		rows, err := readCSV(*productsPath, *encoding)
		if err != nil {
			log.Fatal().Err(err).Str("file", *productsPath).Msg("leer productos")
		}
		n, skipped := seedProducts(ctx, catalogUC, stockUC, rows, log)
		log.Info().Int("creados", n).Int("omitidos", skipped).Msg("productos cargados")
	}
	if *partiesPath != "" {
		rows, err := readCSV(*partiesPath, *encoding)
		if err != nil {
			log.Fatal().Err(err).Str("file", *partiesPath).Msg("leer terceros")
		}
		n, skipped := seedParties(ctx, catalogUC, rows, log)
		log.Info().Int("creados", n).Int("omitidos", skipped).Msg("terceros cargados")
	}
}

func readCSV(path, encoding string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(encoding) {
	case "latin1", "iso-8859-1", "iso8859-1":
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	case "utf8", "utf-8", "":
	default:
		return nil, fmt.Errorf("codificación %q no soportada", encoding)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		rows = rows[1:] // encabezado
	}
	return rows, nil
}

func col(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// seedProducts crea cada producto; los SKU existentes se omiten para poder re-ejecutar la carga.
func seedProducts(ctx context.Context, uc *catalog.UseCase, stock *inventory.StockUseCase, rows [][]string, log *logger.Logger) (created, skipped int) {
	for i, row := range rows {
		p, err := uc.CreateProduct(ctx, dto.CreateProductRequest{
			SKU:          col(row, 0),
			Name:         col(row, 1),
			Category:     col(row, 2),
			UnitPrice:    dto.Numeric(col(row, 3)),
			TaxRate:      dto.Numeric(col(row, 4)),
			ReorderLevel: dto.Numeric(col(row, 5)),
		})
		if err != nil {
			if !errors.Is(err, domain.ErrDuplicateIdentifier) {
				log.Warn().Err(err).Int("fila", i+2).Msg("producto omitido")
			}
			skipped++
			continue
		}
		created++
		if qty := col(row, 6); qty != "" && qty != "0" {
			if _, err := stock.Adjust(ctx, seedUser, dto.StockAdjustmentRequest{
				ProductID: p.ID, Quantity: dto.Numeric(qty), Reason: "saldo inicial",
			}); err != nil {
				log.Warn().Err(err).Str("sku", p.SKU).Msg("saldo inicial no registrado")
			}
		}
	}
	return created, skipped
}

func seedParties(ctx context.Context, uc *catalog.UseCase, rows [][]string, log *logger.Logger) (created, skipped int) {
	for i, row := range rows {
		_, err := uc.CreateParty(ctx, dto.CreatePartyRequest{
			Kind:    col(row, 0),
			Name:    col(row, 1),
			TaxID:   col(row, 2),
			Phone:   col(row, 3),
			Email:   col(row, 4),
			Address: col(row, 5),
		})
		if err != nil {
			log.Warn().Err(err).Int("fila", i+2).Msg("tercero omitido")
			skipped++
			continue
		}
		created++
	}
	return created, skipped
}
