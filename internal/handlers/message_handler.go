package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"sms-ledger/internal/dto"
	"sms-ledger/internal/errors"
	"sms-ledger/internal/parser"
	"sms-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// MessageHandler exposes the extraction engine and message ingestion
type MessageHandler struct {
	parser           services.MessageParserInterface
	ingestionService services.IngestionServiceInterface
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageParser services.MessageParserInterface, ingestionService services.IngestionServiceInterface) *MessageHandler {
	return &MessageHandler{
		parser:           messageParser,
		ingestionService: ingestionService,
	}
}

// Parse runs the extraction engine on one message without storing anything
// @Summary Parse a message
// @Description Extract amount, type, merchant, references and a confidence score from one SMS or notification
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ParseMessageRequest true "Message text"
// @Success 200 {object} dto.ParseMessageResponse "Parse result"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or PARSE_001"
// @Router /messages/parse [post]
func (h *MessageHandler) Parse(c echo.Context) error {
	var req dto.ParseMessageRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if strings.TrimSpace(req.Message) == "" {
		return SendError(c, errors.ParseEmptyMessage)
	}

	result := h.parser.Parse(req.Message)

	return c.JSON(http.StatusOK, dto.ParseMessageResponse{
		Result:          result,
		ConfidenceLevel: parser.ConfidenceLevel(result.Confidence),
		IsTransaction:   h.parser.IsTransactionMessage(req.Message),
	})
}

// Check runs only the transaction keyword gate
// @Summary Check a message
// @Description Report whether a message carries enough transaction keywords to be parsed
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ParseMessageRequest true "Message text"
// @Success 200 {object} dto.CheckMessageResponse "Gate result"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Router /messages/check [post]
func (h *MessageHandler) Check(c echo.Context) error {
	var req dto.ParseMessageRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.CheckMessageResponse{
		IsTransaction: h.parser.IsTransactionMessage(req.Message),
	})
}

// Ingest parses messages and records the transactions in the ledger
// @Summary Ingest messages
// @Description Parse one message or a batch and store every transaction found. A single stored message answers 201.
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.IngestBatchRequest true "One message or a batch"
// @Success 200 {object} dto.IngestBatchResponse "Batch outcome, or single duplicate/skip"
// @Success 201 {object} dto.IngestResult "Single message stored"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or PARSE_004"
// @Failure 503 {object} errors.ErrorResponse "Storage unavailable - STORAGE_002"
// @Router /messages/ingest [post]
func (h *MessageHandler) Ingest(c echo.Context) error {
	var req dto.IngestBatchRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	// checked before validation so an oversized batch is not walked element by element
	if len(req.Messages) > dto.MaxBatchSize {
		return SendError(c, errors.ParseBatchTooLarge, errors.WithDetails(services.ErrBatchTooLarge.Error()))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	items := req.Items()
	if len(items) == 0 {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("message or messages is required"))
	}

	ctx := c.Request().Context()

	if len(req.Messages) == 0 {
		result, err := h.ingestionService.Ingest(ctx, items[0])
		if err != nil {
			return sendIngestError(c, err)
		}
		status := http.StatusOK
		if result.Outcome == dto.IngestOutcomeStored {
			status = http.StatusCreated
		}
		return c.JSON(status, result)
	}

	results, err := h.ingestionService.IngestBatch(ctx, items)
	if err != nil {
		return sendIngestError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewIngestBatchResponse(results))
}

func sendIngestError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrBatchTooLarge):
		return SendError(c, errors.ParseBatchTooLarge, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidSource):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return sendStorageError(c, err)
	}
}
