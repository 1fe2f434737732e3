package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"book-library-api/internal/models"
	"book-library-api/internal/services"
	"book-library-api/pkg/lambda"
)

// Response bodies of the book detail handler
const (
	NoBookIDBody     = "No book id found"
	BookNotFoundBody = "Book not found"
)

// Query parameters of the book list handler
const (
	FilterParam = "filter"
	ValueParam  = "value"
)

// BookHandler handles book-related requests
type BookHandler struct {
	bookService services.BookService
	logger      *logrus.Logger
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookService services.BookService, logger *logrus.Logger) *BookHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &BookHandler{
		bookService: bookService,
		logger:      logger,
	}
}

// HandleGet resolves one book from the bookId path parameter.
// A returned error is a dependency failure the trigger should see as a failed invocation.
func (h *BookHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	bookID := req.PathParam("bookId")
	if bookID == "" {
		return lambda.Text(http.StatusNotFound, NoBookIDBody), nil
	}

	log := h.logger.WithField("book_id", bookID)

	book, err := h.bookService.GetBook(ctx, bookID)
	switch {
	case err == nil:
	case isValidationError(err):
		return lambda.Text(http.StatusNotFound, NoBookIDBody), nil
	case isNotFoundError(err):
		log.Debug("Book not found")
		return lambda.Text(http.StatusNotFound, BookNotFoundBody), nil
	case isIntegrityError(err):
		log.WithError(err).Error("Stored book is incomplete")
		return lambda.InternalError(), nil
	default:
		log.WithError(err).Error("Failed to get book")
		return nil, err
	}

	if book == nil {
		return lambda.JSON(http.StatusOK, struct{}{}), nil
	}

	log.Info("Retrieved book")
	return lambda.JSON(http.StatusOK, book), nil
}

// HandleList lists every book, or the books whose filter attribute equals value
func (h *BookHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	query := models.BookQuery{
		FilterAttribute: req.QueryParam(FilterParam),
		FilterValue:     req.QueryParam(ValueParam),
	}

	log := h.logger.WithFields(logrus.Fields{
		"filter": query.FilterAttribute,
		"value":  query.FilterValue,
	})

	collection, err := h.bookService.ListBooks(ctx, query)
	switch {
	case err == nil:
	case isValidationError(err):
		log.WithError(err).Info("Rejected book filter")
		return lambda.Error(http.StatusBadRequest, "Invalid filter", err.Error()), nil
	case isIntegrityError(err):
		log.WithError(err).Error("Stored book is incomplete")
		return lambda.InternalError(), nil
	default:
		log.WithError(err).Error("Failed to list books")
		return nil, err
	}

	log.WithField("count", len(collection.Books)).Info("Listed books")
	return lambda.JSON(http.StatusOK, collection), nil
}

// @Summary Get a book
// @Description Get a single book by id
// @Tags books
// @Produce json
// @Produce plain
// @Param bookId path string true "Book ID"
// @Success 200 {object} models.Book
// @Failure 404 {string} string "No book id found | Book not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /books/{bookId} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	req := &lambda.Request{
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		PathParams: map[string]string{"bookId": c.Param("bookId")},
	}

	resp, err := h.HandleGet(c.Request.Context(), req)
	writeResponse(c, resp, err)
}

// @Summary List books
// @Description List all books, or filter them by an indexed attribute
// @Tags books
// @Produce json
// @Param filter query string false "Indexed attribute to filter on" example(Author)
// @Param value query string false "Value the attribute must equal"
// @Success 200 {object} models.BookCollection
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	req := &lambda.Request{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		QueryParams: map[string]string{
			FilterParam: c.Query(FilterParam),
			ValueParam:  c.Query(ValueParam),
		},
	}

	resp, err := h.HandleList(c.Request.Context(), req)
	writeResponse(c, resp, err)
}
