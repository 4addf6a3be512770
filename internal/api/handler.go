// Package api exposes the analysis pipeline over HTTP: upload a
// transcript, get back the parsed ledger as JSON.
package api

import (
	"bytes"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sahaltools/sahal-ledger/internal/extractor"
	"github.com/sahaltools/sahal-ledger/internal/ledger"
	"github.com/sahaltools/sahal-ledger/internal/models"
	"github.com/sahaltools/sahal-ledger/internal/parser"
	"github.com/sahaltools/sahal-ledger/internal/writer"
)

// Version is reported by the health endpoint and in analysis responses.
const Version = "1.0.0"

// AnalyzeResponse is the JSON response from POST /api/analyze.
type AnalyzeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	// RunID identifies this analysis in logs.
	RunID        string                 `json:"runId,omitempty"`
	Transactions []models.Transaction   `json:"transactions"`
	Unmatched    []string               `json:"unmatched"`
	Summary      *ledger.Summary        `json:"summary,omitempty"`
	Contacts     []*ledger.ContactStats `json:"contacts,omitempty"`
	// ContactsCSV is the per-counterparty table rendered as CSV, ready
	// to save client-side.
	ContactsCSV string `json:"contactsCsv,omitempty"`
	BlockCount  int    `json:"blockCount"`
	Count       int    `json:"count"`
	Version     string `json:"version,omitempty"`
}

var log = zerolog.Nop()

// SetLogger installs the logger used by the handlers.
func SetLogger(l zerolog.Logger) {
	log = l
}

// Register sets up the API routes on a fiber app.
func Register(app *fiber.App) {
	app.Get("/api/health", HandleHealth)
	app.Post("/api/analyze", HandleAnalyze)
}

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
		"engine":  "fiber",
	})
}

// HandleAnalyze accepts a multipart transcript upload (form field "file",
// .txt or .pdf) and returns the full analysis. Optional form fields:
// "top_n" bounds the ranked views, "include_raw" keeps original block
// text on each transaction.
func HandleAnalyze(c *fiber.Ctx) error {
	runID := uuid.NewString()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".txt" && ext != ".pdf" && ext != "" {
		return writeError(c, fiber.StatusBadRequest, "Only .txt and .pdf transcripts are supported.")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "Could not read uploaded file.")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "Could not read uploaded file.")
	}

	text, err := extractor.FromUpload(fileHeader.Filename, data)
	if err != nil {
		return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	topN := ledger.DefaultTopN
	if v := c.FormValue("top_n"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < 1 {
			return writeError(c, fiber.StatusBadRequest, "top_n must be a positive integer.")
		}
		topN = n
	}
	includeRaw := c.FormValue("include_raw") == "true"

	result := parser.Parse(text)
	book := ledger.Aggregate(result.Transactions)
	summary := ledger.BuildSummary(book, result.DateRange, topN)

	log.Info().
		Str("run_id", runID).
		Str("file", fileHeader.Filename).
		Int("blocks", result.BlockCount).
		Int("transactions", len(result.Transactions)).
		Int("unmatched", len(result.Unmatched)).
		Msg("transcript analyzed")

	contacts := book.Contacts()
	var csvBuf bytes.Buffer
	cw := &writer.CSVWriter{IncludeRaw: includeRaw}
	if err := cw.WriteContacts(&csvBuf, contacts); err != nil {
		return writeError(c, fiber.StatusInternalServerError, "CSV generation failed.")
	}

	txns := result.Transactions
	if txns == nil {
		txns = []models.Transaction{}
	}
	if !includeRaw {
		for i := range txns {
			txns[i].RawBlock = ""
		}
	}
	unmatched := result.Unmatched
	if unmatched == nil {
		unmatched = []string{}
	}

	return c.JSON(AnalyzeResponse{
		Success:      true,
		RunID:        runID,
		Transactions: txns,
		Unmatched:    unmatched,
		Summary:      summary,
		Contacts:     contacts,
		ContactsCSV:  csvBuf.String(),
		BlockCount:   result.BlockCount,
		Count:        len(txns),
		Version:      Version,
	})
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(AnalyzeResponse{
		Success:      false,
		Error:        msg,
		Transactions: []models.Transaction{},
		Unmatched:    []string{},
	})
}
