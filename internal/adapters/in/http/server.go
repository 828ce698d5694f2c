// Package http exposes the storefront order API over echo.
// It coordinates between HTTP handlers and application use cases: every call
// resolves the caller's session token into an identity first, and domain
// error kinds map onto HTTP status codes in one place.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Server handles the order API HTTP requests.
type Server struct {
	resolver ports.IdentityResolver

	// Command handlers
	placeOrderHandler      commands.PlaceOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	postMessageHandler     commands.PostMessageCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	listOrdersHandler   queries.ListOrdersQueryHandler
	listMessagesHandler queries.ListMessagesQueryHandler
}

// NewServer creates a new HTTP server with the required resolver and handlers.
func NewServer(
	resolver ports.IdentityResolver,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	postMessageHandler commands.PostMessageCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	listMessagesHandler queries.ListMessagesQueryHandler,
) *Server {
	return &Server{
		resolver:               resolver,
		placeOrderHandler:      placeOrderHandler,
		transitionOrderHandler: transitionOrderHandler,
		postMessageHandler:     postMessageHandler,
		getOrderHandler:        getOrderHandler,
		listOrdersHandler:      listOrdersHandler,
		listMessagesHandler:    listMessagesHandler,
	}
}

// RegisterRoutes wires the API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/status", s.TransitionOrder)
	api.GET("/orders/:orderId/messages", s.ListMessages)
	api.POST("/orders/:orderId/messages", s.PostMessage)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders - places a new order for the caller.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	var req PlaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, commands.OrderLine{
			ProductName: line.ProductName,
			FabricName:  line.FabricName,
			FabricGrade: line.FabricGrade,
			Quantity:    line.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, actor.ID(), actor.Email(), lines)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(response))
}

// ListOrders handles GET /api/v1/orders - lists orders visible to the caller.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	limit := defaultPageLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return s.writeError(ctx, http.StatusBadRequest, "Invalid limit")
		}
		if limit > maxPageLimit {
			limit = maxPageLimit
		}
	}

	offset := 0
	if raw := ctx.QueryParam("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return s.writeError(ctx, http.StatusBadRequest, "Invalid offset")
		}
	}

	query, err := queries.NewListOrdersQuery(actor, ctx.QueryParam("filter"), limit, offset)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	page, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	response := OrderPageResponse{
		Orders: make([]OrderSummary, 0, len(page.Orders)),
		Total:  page.Total,
	}
	for _, summary := range page.Orders {
		response.Orders = append(response.Orders, OrderSummary{
			ID:            summary.ID.String(),
			Code:          summary.Code,
			Status:        summary.Status,
			CustomerEmail: summary.CustomerEmail,
			CreatedAt:     summary.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrder handles POST /api/v1/orders/:orderId/status - moves an
// order to a new lifecycle status.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, actor, req.Note)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListMessages handles GET /api/v1/orders/:orderId/messages - retrieves the
// order's thread.
func (s *Server) ListMessages(ctx echo.Context) error {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewListMessagesQuery(orderID, actor)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	thread, err := s.listMessagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	response := make([]MessageResponse, 0, len(thread))
	for _, msg := range thread {
		response = append(response, MessageResponse{
			ID:         msg.ID.String(),
			AuthorID:   msg.AuthorID.String(),
			AuthorRole: msg.AuthorRole,
			Body:       msg.Body,
			At:         msg.At,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// PostMessage handles POST /api/v1/orders/:orderId/messages - appends a
// message to the order's thread.
func (s *Server) PostMessage(ctx echo.Context) error {
	actor, err := s.resolveActor(ctx)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req PostMessageRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	messageID := kernel.NewUUID()
	cmd, err := commands.NewPostMessageCommand(messageID, orderID, actor, req.Body)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.postMessageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PostMessageResponse{ID: messageID.String()})
}

// resolveActor turns the bearer token into the calling user.
// Role claims never come from the client; the identity service is asked on
// every call.
func (s *Server) resolveActor(ctx echo.Context) (user.User, error) {
	header := ctx.Request().Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return user.User{}, errs.NewUnauthorizedError("missing bearer token")
	}

	return s.resolver.Resolve(ctx.Request().Context(), token)
}

func (s *Server) writeDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return s.writeError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return s.writeError(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrInvalidTransition):
		return s.writeError(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return s.writeError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return s.writeError(ctx, http.StatusBadRequest, err.Error())
	default:
		return s.writeError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func (s *Server) writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func orderFromQuery(response queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItem, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, OrderItem{
			ID:          item.ID.String(),
			ProductName: item.ProductName,
			FabricName:  item.FabricName,
			FabricGrade: item.FabricGrade,
			Quantity:    item.Quantity,
		})
	}

	history := make([]HistoryEntry, 0, len(response.History))
	for _, entry := range response.History {
		var actorID *string
		if entry.ActorID != nil {
			raw := entry.ActorID.String()
			actorID = &raw
		}
		history = append(history, HistoryEntry{
			Status:  entry.Status,
			ActorID: actorID,
			Note:    entry.Note,
			At:      entry.At,
		})
	}

	return OrderResponse{
		ID:            response.ID.String(),
		Code:          response.Code,
		Status:        response.Status,
		CustomerID:    response.CustomerID.String(),
		CustomerEmail: response.CustomerEmail,
		CreatedAt:     response.CreatedAt,
		Items:         items,
		History:       history,
	}
}

// ErrorResponse is the error body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /orders.
type PlaceOrderRequest struct {
	Lines []OrderLineRequest `json:"lines"`
}

// OrderLineRequest is one requested furniture line.
type OrderLineRequest struct {
	ProductName string `json:"product_name"`
	FabricName  string `json:"fabric_name"`
	FabricGrade string `json:"fabric_grade"`
	Quantity    int    `json:"quantity"`
}

// PlaceOrderResponse acknowledges a placed order.
type PlaceOrderResponse struct {
	ID string `json:"id"`
}

// TransitionRequest is the body of POST /orders/:orderId/status.
type TransitionRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// PostMessageRequest is the body of POST /orders/:orderId/messages.
type PostMessageRequest struct {
	Body string `json:"body"`
}

// PostMessageResponse acknowledges a posted message.
type PostMessageResponse struct {
	ID string `json:"id"`
}

// OrderResponse is the detail view of one order.
type OrderResponse struct {
	ID            string         `json:"id"`
	Code          string         `json:"code"`
	Status        string         `json:"status"`
	CustomerID    string         `json:"customer_id"`
	CustomerEmail string         `json:"customer_email"`
	CreatedAt     time.Time      `json:"created_at"`
	Items         []OrderItem    `json:"items"`
	History       []HistoryEntry `json:"history"`
}

// OrderItem is one furniture line of an order.
type OrderItem struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	FabricName  string `json:"fabric_name"`
	FabricGrade string `json:"fabric_grade"`
	Quantity    int    `json:"quantity"`
}

// HistoryEntry is one recorded status change.
type HistoryEntry struct {
	Status  string    `json:"status"`
	ActorID *string   `json:"actor_id"`
	Note    string    `json:"note"`
	At      time.Time `json:"at"`
}

// OrderPageResponse is one page of the order listing.
type OrderPageResponse struct {
	Orders []OrderSummary `json:"orders"`
	Total  int64          `json:"total"`
}

// OrderSummary is one row of the order listing.
type OrderSummary struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Status        string    `json:"status"`
	CustomerEmail string    `json:"customer_email"`
	CreatedAt     time.Time `json:"created_at"`
}

// MessageResponse is one thread message.
type MessageResponse struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorRole string    `json:"author_role"`
	Body       string    `json:"body"`
	At         time.Time `json:"at"`
}
