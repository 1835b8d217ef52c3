// Package http is the inbound HTTP adapter. It translates echo requests into
// commands and queries and maps application errors onto HTTP statuses; no
// business rules live here.
package http

import (
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler commands.RegisterUserCommandHandler
	loginUserHandler    commands.LoginUserCommandHandler
	createOrderHandler  commands.CreateOrderCommandHandler
	updateOrderHandler  commands.UpdateOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	loginUserHandler commands.LoginUserCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		registerUserHandler: registerUserHandler,
		loginUserHandler:    loginUserHandler,
		createOrderHandler:  createOrderHandler,
		updateOrderHandler:  updateOrderHandler,
		cancelOrderHandler:  cancelOrderHandler,
		getOrderHandler:     getOrderHandler,
		listOrdersHandler:   listOrdersHandler,
	}
}

// RegisterRoutes wires all routes into the echo instance. The orders group is
// protected by the given authorization middleware; auth and health are open.
func (s *Server) RegisterRoutes(e *echo.Echo, authGuard echo.MiddlewareFunc) {
	e.GET("/", s.Health)

	authGroup := e.Group("/auth")
	authGroup.POST("/register", s.Register)
	authGroup.POST("/login", s.Login)

	ordersGroup := e.Group("/orders", authGuard)
	ordersGroup.POST("", s.CreateOrder)
	ordersGroup.GET("", s.ListOrders)
	ordersGroup.GET("/:id", s.GetOrder)
	ordersGroup.PATCH("/:id", s.UpdateOrder)
	ordersGroup.DELETE("/:id/cancel", s.CancelOrder)
}

// Health handles GET / - liveness probe, no auth.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "API is running",
	})
}

// Register handles POST /auth/register - creates a new user account.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(req.Name, email, req.Password)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	created, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, UserResponse{
		ID:        created.ID().String(),
		Name:      created.Name(),
		Email:     created.Email().String(),
		CreatedAt: created.CreatedAt(),
	})
}

// Login handles POST /auth/login - exchanges credentials for a bearer token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	cmd, err := commands.NewLoginUserCommand(email, req.Password)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	token, err := s.loginUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// CreateOrder handles POST /orders - places a new order for the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return writeUnauthenticated(ctx)
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), userID, req.ItemName, req.Quantity, req.Price)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// ListOrders handles GET /orders - lists the caller's orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return writeUnauthenticated(ctx)
	}

	query, err := queries.NewListOrdersQuery(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderFromReadModel(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/:id - retrieves one of the caller's orders.
func (s *Server) GetOrder(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return writeUnauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(resp))
}

// UpdateOrder handles PATCH /orders/:id - partially updates one of the
// caller's orders. Absent fields stay untouched; a supplied status must
// follow the order lifecycle graph.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return writeUnauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var status *order.Status
	if req.Status != nil {
		parsed, statusErr := order.StatusFromString(*req.Status)
		if statusErr != nil {
			return writeBadRequest(ctx, statusErr)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, userID, req.ItemName, req.Quantity, req.Price, status)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// CancelOrder handles DELETE /orders/:id/cancel - cancels one of the
// caller's orders.
func (s *Server) CancelOrder(ctx echo.Context) error {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return writeUnauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(cancelled))
}
