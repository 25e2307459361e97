package document

import (
	"errors"
	"fmt"

	"lpaflow/internal/models"
)

// Service errors
var (
	ErrDocumentNotFound = errors.New("LPA document not found")
	ErrNoPdf            = errors.New("no PDF file found for this LPA document")
)

// WrongStatusError rejects postal submission before a PDF has been generated.
type WrongStatusError struct {
	Current string
}

func (e *WrongStatusError) Error() string {
	return fmt.Sprintf("LPA document must have status '%s'. Current status: '%s'",
		models.LpaStatusPdfGenerated, e.Current)
}
